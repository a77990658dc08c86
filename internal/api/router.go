package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordscore/internal/api/handler"
	"github.com/mcoot/wordscore/internal/api/middleware"
	"github.com/mcoot/wordscore/internal/services/board"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	BoardService *board.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	boardHandler := handler.NewBoardHandler(cfg.BoardService)
	scoreHandler := handler.NewScoreHandler(cfg.BoardService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Stateless scoring
	api.HandleFunc("/score", scoreHandler.Score).Methods(http.MethodPost)

	// Stored boards
	boards := api.PathPrefix("/boards").Subrouter()
	boards.HandleFunc("", boardHandler.Create).Methods(http.MethodPost)
	boards.HandleFunc("/{id}", boardHandler.Get).Methods(http.MethodGet)
	boards.HandleFunc("/{id}", boardHandler.Delete).Methods(http.MethodDelete)
	boards.HandleFunc("/{id}/score", boardHandler.Score).Methods(http.MethodPost)
	boards.HandleFunc("/{id}/play", boardHandler.Play).Methods(http.MethodPost)
	boards.HandleFunc("/{id}/history", boardHandler.History).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

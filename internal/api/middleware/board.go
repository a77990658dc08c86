package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// boardLogger tags logger with the board id when the matched route carries one
func boardLogger(logger *slog.Logger, r *http.Request) *slog.Logger {
	if id := mux.Vars(r)["id"]; id != "" {
		return logger.With(slog.String("board_id", id))
	}
	return logger
}

// perBoard builds the wrapped handler per request so mw logs with the board id
func perBoard(logger *slog.Logger, mw func(*slog.Logger) func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mw(boardLogger(logger, r))(next).ServeHTTP(w, r)
		})
	}
}

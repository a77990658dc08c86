package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordscore/internal/middleware"
)

// Logging logs each API request, tagged with the board id on board routes
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return perBoard(logger, middleware.Logging)
}

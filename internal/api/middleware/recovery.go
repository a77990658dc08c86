package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordscore/internal/api/apierr"
	"github.com/mcoot/wordscore/internal/middleware"
)

// Recovery turns a panic in an API handler into a JSON INTERNAL_ERROR response.
// The panic is logged with the board id when the route has one.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return perBoard(logger, func(l *slog.Logger) func(http.Handler) http.Handler {
		return middleware.Recovery(l, writeInternalError)
	})
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

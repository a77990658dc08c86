package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordscore/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidDirection = "INVALID_DIRECTION"
	CodeInvalidLetter    = "INVALID_LETTER"
	CodeEmptyMove        = "EMPTY_MOVE"
	CodeOutOfBounds      = "OUT_OF_BOUNDS"
	CodeMalformedBoard   = "MALFORMED_BOARD"
	CodeBoardNotFound    = "BOARD_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Input-shape errors carry their detail (axis, counts) in the message
	switch {
	case errors.Is(err, model.ErrBoardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeBoardNotFound, "Board not found"}}
	case errors.Is(err, model.ErrInvalidDirection):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDirection, err.Error()}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, err.Error()}}
	case errors.Is(err, model.ErrEmptyMove):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyMove, "Move must place at least one tile"}}
	case errors.Is(err, model.ErrOutOfBounds):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeOutOfBounds, err.Error()}}
	case errors.Is(err, model.ErrMalformedBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeMalformedBoard, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

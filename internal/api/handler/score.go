package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/wordscore/internal/api/request"
	"github.com/mcoot/wordscore/internal/api/response"
	"github.com/mcoot/wordscore/internal/model"
	"github.com/mcoot/wordscore/internal/services/board"
)

// ScoreHandler scores moves against boards sent with the request
type ScoreHandler struct {
	boardService *board.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(boardService *board.Service) *ScoreHandler {
	return &ScoreHandler{
		boardService: boardService,
	}
}

// Score handles POST /api/v1/score
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	b := model.NewBoard()
	if len(req.Rows) > 0 {
		parsed, err := model.ParseBoard(request.BoardText(req.Rows))
		if err != nil {
			WriteError(w, err)
			return
		}
		b = parsed
	}

	move, err := req.Move.ToModel()
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.boardService.Evaluate(b, move)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreResultFromModel(result))
}

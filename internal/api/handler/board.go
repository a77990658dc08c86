package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordscore/internal/api/request"
	"github.com/mcoot/wordscore/internal/api/response"
	"github.com/mcoot/wordscore/internal/model"
	"github.com/mcoot/wordscore/internal/services/board"
)

// BoardHandler handles board-related endpoints
type BoardHandler struct {
	boardService *board.Service
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService *board.Service) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// Create handles POST /api/v1/boards
func (h *BoardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	var (
		b   *model.Board
		err error
	)
	if len(req.Rows) > 0 {
		b, err = h.boardService.ImportBoard(r.Context(), request.BoardText(req.Rows))
	} else {
		b, err = h.boardService.CreateBoard(r.Context())
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.BoardFromModel(b))
}

// Get handles GET /api/v1/boards/{id}.
// With ?format=text the board is returned in its text form.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.BoardID(mux.Vars(r)["id"])

	b, err := h.boardService.GetBoard(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		response.Text(w, http.StatusOK, b.String())
		return
	}
	response.JSON(w, http.StatusOK, response.BoardFromModel(b))
}

// Delete handles DELETE /api/v1/boards/{id}
func (h *BoardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.BoardID(mux.Vars(r)["id"])

	if err := h.boardService.DeleteBoard(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Score handles POST /api/v1/boards/{id}/score
func (h *BoardHandler) Score(w http.ResponseWriter, r *http.Request) {
	id := model.BoardID(mux.Vars(r)["id"])

	move, ok := decodeMove(w, r)
	if !ok {
		return
	}

	result, err := h.boardService.ScoreMove(r.Context(), id, move)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreResultFromModel(result))
}

// Play handles POST /api/v1/boards/{id}/play
func (h *BoardHandler) Play(w http.ResponseWriter, r *http.Request) {
	id := model.BoardID(mux.Vars(r)["id"])

	move, ok := decodeMove(w, r)
	if !ok {
		return
	}

	outcome, err := h.boardService.PlayMove(r.Context(), id, move)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayResponseFromOutcome(outcome))
}

// History handles GET /api/v1/boards/{id}/history
func (h *BoardHandler) History(w http.ResponseWriter, r *http.Request) {
	id := model.BoardID(mux.Vars(r)["id"])

	plays, err := h.boardService.History(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HistoryFromModel(id, plays))
}

// decodeMove reads a MoveRequest body, writing the error response itself on failure
func decodeMove(w http.ResponseWriter, r *http.Request) (model.Move, bool) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return model.Move{}, false
	}

	move, err := req.ToModel()
	if err != nil {
		WriteError(w, err)
		return model.Move{}, false
	}
	return move, true
}

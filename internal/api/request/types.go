package request

import (
	"strings"

	"github.com/mcoot/wordscore/internal/model"
)

// MoveRequest describes a run of tiles to lay on a board
type MoveRequest struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction string `json:"direction"`
	Tiles     string `json:"tiles"`
}

// ToModel validates the direction and converts to a model.Move
func (r MoveRequest) ToModel() (model.Move, error) {
	dir, err := model.ParseDirection(r.Direction)
	if err != nil {
		return model.Move{}, err
	}
	return model.Move{X: r.X, Y: r.Y, Direction: dir, Tiles: r.Tiles}, nil
}

// CreateBoardRequest is the request body for creating a board.
// Rows are optional; without them the board starts empty.
type CreateBoardRequest struct {
	Rows []string `json:"rows,omitempty"`
}

// ScoreRequest scores a move against a board supplied inline
type ScoreRequest struct {
	Rows []string    `json:"rows"`
	Move MoveRequest `json:"move"`
}

// BoardText joins rows into the text form accepted by model.ParseBoard
func BoardText(rows []string) string {
	return "\n" + strings.Join(rows, "\n")
}

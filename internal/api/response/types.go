package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordscore/internal/model"
	"github.com/mcoot/wordscore/internal/services/board"
	"github.com/mcoot/wordscore/internal/services/placement"
)

// Board represents a board in API responses
type Board struct {
	ID        string   `json:"id,omitempty"`
	Rows      []string `json:"rows"`
	TileCount int      `json:"tile_count"`
}

// BoardFromModel converts a model.Board to a response Board
func BoardFromModel(b *model.Board) Board {
	return Board{
		ID:        string(b.ID),
		Rows:      b.Rows(),
		TileCount: b.TileCount(),
	}
}

// PlacedTile is one new tile laid by a move
type PlacedTile struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Letter     string `json:"letter"`
	Multiplier string `json:"multiplier,omitempty"`
}

// ScoreResult is the breakdown of a scored move
type ScoreResult struct {
	Score          int          `json:"score"`
	WordScore      int          `json:"word_score"`
	WordMultiplier int          `json:"word_multiplier"`
	CrossScore     int          `json:"cross_score"`
	CrossWords     int          `json:"cross_words"`
	Attached       bool         `json:"attached"`
	Tiles          []PlacedTile `json:"tiles"`
}

// ScoreResultFromModel converts a placement.Result
func ScoreResultFromModel(r placement.Result) ScoreResult {
	return ScoreResult{
		Score:          r.Score,
		WordScore:      r.WordScore,
		WordMultiplier: r.WordMultiplier,
		CrossScore:     r.CrossScore,
		CrossWords:     r.CrossWords,
		Attached:       r.Attached,
		Tiles: lo.Map(r.Tiles, func(t placement.PlacedTile, _ int) PlacedTile {
			pt := PlacedTile{X: t.X, Y: t.Y, Letter: string(t.Letter)}
			if t.Multiplier.LetterFactor() > 1 || t.Multiplier.WordFactor() > 1 {
				pt.Multiplier = t.Multiplier.String()
			}
			return pt
		}),
	}
}

// Play is a recorded move
type Play struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Direction string    `json:"direction"`
	Tiles     string    `json:"tiles"`
	Score     int       `json:"score"`
	PlayedAt  time.Time `json:"played_at"`
}

// PlayFromModel converts a model.PlayRecord
func PlayFromModel(r model.PlayRecord) Play {
	return Play{
		X:         r.X,
		Y:         r.Y,
		Direction: string(r.Direction),
		Tiles:     r.Tiles,
		Score:     r.Score,
		PlayedAt:  r.PlayedAt,
	}
}

// PlayResponse is the response for committing a move
type PlayResponse struct {
	Board  Board       `json:"board"`
	Result ScoreResult `json:"result"`
	Play   Play        `json:"play"`
}

// PlayResponseFromOutcome converts a board.PlayOutcome
func PlayResponseFromOutcome(o *board.PlayOutcome) PlayResponse {
	return PlayResponse{
		Board:  BoardFromModel(o.Board),
		Result: ScoreResultFromModel(o.Result),
		Play:   PlayFromModel(o.Record),
	}
}

// History is the list of plays made on a board
type History struct {
	BoardID    string `json:"board_id"`
	Plays      []Play `json:"plays"`
	TotalScore int    `json:"total_score"`
}

// HistoryFromModel converts a board's play records
func HistoryFromModel(id model.BoardID, plays []model.PlayRecord) History {
	return History{
		BoardID:    string(id),
		Plays:      lo.Map(plays, func(p model.PlayRecord, _ int) Play { return PlayFromModel(p) }),
		TotalScore: lo.SumBy(plays, func(p model.PlayRecord) int { return p.Score }),
	}
}

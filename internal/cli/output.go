package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Board mirrors the API board representation
type Board struct {
	ID        string   `json:"id,omitempty"`
	Rows      []string `json:"rows"`
	TileCount int      `json:"tile_count"`
}

// PlacedTile mirrors a tile laid by a move
type PlacedTile struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Letter     string `json:"letter"`
	Multiplier string `json:"multiplier,omitempty"`
}

// ScoreResult mirrors the score breakdown of a move
type ScoreResult struct {
	Score          int          `json:"score"`
	WordScore      int          `json:"word_score"`
	WordMultiplier int          `json:"word_multiplier"`
	CrossScore     int          `json:"cross_score"`
	CrossWords     int          `json:"cross_words"`
	Attached       bool         `json:"attached"`
	Tiles          []PlacedTile `json:"tiles"`
}

// Play mirrors a recorded move
type Play struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Direction string    `json:"direction"`
	Tiles     string    `json:"tiles"`
	Score     int       `json:"score"`
	PlayedAt  time.Time `json:"played_at"`
}

// PlayResponse mirrors the response to a committed move
type PlayResponse struct {
	Board  Board       `json:"board"`
	Result ScoreResult `json:"result"`
	Play   Play        `json:"play"`
}

// History mirrors a board's play history
type History struct {
	BoardID    string `json:"board_id"`
	Plays      []Play `json:"plays"`
	TotalScore int    `json:"total_score"`
}

// HealthResult is the health check response plus the server it came from
type HealthResult struct {
	Server string `json:"server,omitempty"`
	Status string `json:"status"`
}

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Board:
		o.printBoardSummary(v)
	case ScoreResult:
		o.printScoreResult(v)
	case PlayResponse:
		o.printPlayResponse(v)
	case History:
		o.printHistory(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printBoardSummary(b Board) {
	if b.ID != "" {
		o.printf("Board: %s\n", b.ID)
	}
	o.printf("Tiles: %d\n\n", b.TileCount)
	o.printBoard(b.Rows)
}

func (o *Output) printScoreResult(r ScoreResult) {
	o.printf("Score: %d\n", r.Score)
	o.printf("  Main word: %d x%d\n", r.WordScore, r.WordMultiplier)
	if r.CrossWords > 0 {
		o.printf("  Cross words: %d (%d)\n", r.CrossScore, r.CrossWords)
	}
	if !r.Attached {
		o.printf("  Not connected to existing tiles\n")
	}
	if len(r.Tiles) > 0 {
		placed := make([]string, 0, len(r.Tiles))
		for _, t := range r.Tiles {
			s := fmt.Sprintf("%s@(%d,%d)", t.Letter, t.X, t.Y)
			if t.Multiplier != "" {
				s += " " + t.Multiplier
			}
			placed = append(placed, s)
		}
		o.printf("  Tiles: %s\n", strings.Join(placed, ", "))
	}
}

func (o *Output) printPlayResponse(p PlayResponse) {
	o.printf("Played %s at (%d,%d) %s\n", p.Play.Tiles, p.Play.X, p.Play.Y, p.Play.Direction)
	o.printScoreResult(p.Result)
	o.printf("\n")
	o.printBoard(p.Board.Rows)
}

func (o *Output) printHistory(h History) {
	o.printf("Board: %s\n", h.BoardID)
	if len(h.Plays) == 0 {
		o.printf("No plays yet\n")
		return
	}
	for i, p := range h.Plays {
		o.printf("%3d. %-15s (%2d,%2d) %-6s %4d\n", i+1, p.Tiles, p.X, p.Y, p.Direction, p.Score)
	}
	o.printf("Total: %d\n", h.TotalScore)
}

func (o *Output) printHealthResult(h HealthResult) {
	o.printf("Server: %s\n", h.Server)
	o.printf("Status: %s\n", h.Status)
}

func (o *Output) printBoard(rows []string) {
	if len(rows) == 0 {
		return
	}

	size := len(rows)

	// Print column headers
	o.printf("    ")
	for col := 0; col < size; col++ {
		o.printf("%2d ", col)
	}
	o.printf("\n")

	// Print top border
	o.printf("   +")
	for col := 0; col < size; col++ {
		o.printf("---")
	}
	o.printf("+\n")

	// Print rows
	for row, line := range rows {
		o.printf("%2d |", row)
		for _, cell := range line {
			o.printf(" %c ", cell)
		}
		o.printf("|\n")
	}

	// Print bottom border
	o.printf("   +")
	for col := 0; col < size; col++ {
		o.printf("---")
	}
	o.printf("+\n")
}

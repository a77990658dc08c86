package placement

import (
	"fmt"
	"unicode"

	"github.com/mcoot/wordscore/internal/model"
	"github.com/mcoot/wordscore/internal/rules"
)

// ScoreMode says whether a walk is scoring the main word of a move or a
// word formed across it by a single new tile
type ScoreMode int

const (
	Primary ScoreMode = iota
	Perpendicular
)

func (m ScoreMode) String() string {
	if m == Perpendicular {
		return "perpendicular"
	}
	return "primary"
}

// PlacedTile is a new tile written (or that would be written) by a move
type PlacedTile struct {
	X          int
	Y          int
	Letter     rune
	Multiplier rules.Multiplier
}

// Result is the breakdown of a scored move
type Result struct {
	Score          int // WordScore*WordMultiplier + CrossScore
	WordScore      int // letter values of the main word, letter bonuses applied
	WordMultiplier int
	CrossScore     int // sum of perpendicular words formed by new tiles
	CrossWords     int
	Attached       bool // touches at least one letter already on the board
	Tiles          []PlacedTile
}

// perpResult is the outcome of scoring across a single new tile. A word worth
// zero is still a word, so presence is tracked separately from the score.
type perpResult struct {
	found bool
	score int
}

var noPerpendicularWord = perpResult{}

// tally accumulates one walk along an axis
type tally struct {
	letters    int
	wordMult   int
	cross      int
	crossWords int
	attached   bool
	tiles      []PlacedTile
}

func (t *tally) total() int {
	return t.letters*t.wordMult + t.cross
}

// Engine scores and commits tile placements
type Engine struct{}

// New creates a placement Engine
func New() *Engine {
	return &Engine{}
}

// PlayTiles scores laying m.Tiles from (m.X, m.Y) along m.Direction, counting
// every perpendicular word the new tiles form. Unless onlyScore is set the
// tiles are written to the board.
//
// Tiles are validated before the board is touched. A failure later in the
// walk (running off the board) leaves any tiles already written in place;
// callers that need atomicity should play against a Clone.
func (e *Engine) PlayTiles(b *model.Board, m model.Move, onlyScore bool) (int, error) {
	res, err := e.run(b, m, onlyScore)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// Score returns what the move would earn without changing the board
func (e *Engine) Score(b *model.Board, m model.Move) (int, error) {
	return e.PlayTiles(b, m, true)
}

// Evaluate returns the full breakdown of a move without changing the board
func (e *Engine) Evaluate(b *model.Board, m model.Move) (Result, error) {
	return e.run(b, m, true)
}

// Play writes the move to the board and returns its breakdown
func (e *Engine) Play(b *model.Board, m model.Move) (Result, error) {
	return e.run(b, m, false)
}

func (e *Engine) run(b *model.Board, m model.Move, onlyScore bool) (Result, error) {
	if !m.Direction.Valid() {
		return Result{}, fmt.Errorf("%w: expected %q or %q, got %q",
			model.ErrInvalidDirection, model.Across, model.Down, m.Direction)
	}
	tiles, err := normalizeTiles(m.Tiles)
	if err != nil {
		return Result{}, err
	}

	t, err := e.walk(b, m.X, m.Y, m.Direction, tiles, onlyScore, Primary)
	if err != nil {
		return Result{}, err
	}

	// An unattached primary placement is scored as-is; connectivity is not
	// enforced here.
	return Result{
		Score:          t.total(),
		WordScore:      t.letters,
		WordMultiplier: t.wordMult,
		CrossScore:     t.cross,
		CrossWords:     t.crossWords,
		Attached:       t.attached,
		Tiles:          t.tiles,
	}, nil
}

// walk scores the word running through (x, y) along dir with the given new
// tiles laid into its empty squares in order. Only Primary walks look across
// each new tile, so recursion is at most one level deep.
func (e *Engine) walk(b *model.Board, x, y int, dir model.Direction, tiles []rune, onlyScore bool, mode ScoreMode) (tally, error) {
	dx, dy := dir.Step()
	t := tally{wordMult: 1}

	// Back up to the start of the word so letters already on the board count
	for b.PeekTile(x-dx, y-dy) != 0 {
		x -= dx
		y -= dy
	}

	// Letters already on the board score face value; their bonus squares
	// were used up when they were first played.
	scoreExisting := func() {
		for {
			existing := b.PeekTile(x, y)
			if existing == 0 {
				return
			}
			t.attached = true
			t.letters += rules.LetterScore(existing)
			x += dx
			y += dy
		}
	}

	for _, tile := range tiles {
		scoreExisting()

		if _, err := b.GetTile(x, y); err != nil {
			return t, err
		}

		mult := rules.MultiplierAt(x, y)
		t.letters += rules.LetterScore(tile) * mult.LetterFactor()
		t.wordMult *= mult.WordFactor()

		if mode == Primary {
			perp, err := e.scorePerpendicular(b, x, y, dir.Perpendicular(), tile)
			if err != nil {
				return t, err
			}
			if perp.found {
				t.attached = true
				t.cross += perp.score
				t.crossWords++
			}
		}

		if !onlyScore {
			b.SetTile(x, y, tile)
		}
		t.tiles = append(t.tiles, PlacedTile{X: x, Y: y, Letter: tile, Multiplier: mult})

		x += dx
		y += dy
	}

	scoreExisting()

	return t, nil
}

// scorePerpendicular scores the word a single new tile at (x, y) would form
// along dir. It never writes to the board.
func (e *Engine) scorePerpendicular(b *model.Board, x, y int, dir model.Direction, tile rune) (perpResult, error) {
	t, err := e.walk(b, x, y, dir, []rune{tile}, true, Perpendicular)
	if err != nil {
		return noPerpendicularWord, err
	}
	if !t.attached {
		return noPerpendicularWord, nil
	}
	return perpResult{found: true, score: t.total()}, nil
}

func normalizeTiles(s string) ([]rune, error) {
	if s == "" {
		return nil, model.ErrEmptyMove
	}
	tiles := make([]rune, 0, len(s))
	for _, r := range s {
		if !rules.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidLetter, r)
		}
		tiles = append(tiles, unicode.ToUpper(r))
	}
	return tiles, nil
}

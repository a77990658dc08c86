package model

import (
	"fmt"
	"strings"
	"unicode"
)

// BoardSize is the fixed side length of every board
const BoardSize = 15

// EmptyCell is the character used for an empty square in the text form
const EmptyCell = '.'

const (
	serialPrefix = "Board(`"
	serialSuffix = "`)"
)

// BoardID identifies a stored board
type BoardID string

// Board is a 15x15 grid of placed letters. The zero value is an empty board.
//
// A Board is not safe for concurrent use: a placement writes tiles one at a
// time, so partially placed state is visible mid-call.
type Board struct {
	ID    BoardID
	cells [BoardSize][BoardSize]rune // [y][x], 0 means empty
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// GetTile returns the letter at column x, row y, or 0 if the square is empty.
// Coordinates outside the board fail with a *BoundsError.
func (b *Board) GetTile(x, y int) (rune, error) {
	if x < 0 || x >= BoardSize {
		return 0, &BoundsError{Axis: "x", Value: x}
	}
	if y < 0 || y >= BoardSize {
		return 0, &BoundsError{Axis: "y", Value: y}
	}
	return b.cells[y][x], nil
}

// PeekTile is GetTile without bounds checking: anything off the board reads
// as empty.
func (b *Board) PeekTile(x, y int) rune {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return 0
	}
	return b.cells[y][x]
}

// SetTile writes a letter at column x, row y.
//
// Precondition: (x, y) is on the board. There is no bounds check here; callers
// only write squares they have already read successfully. Out-of-range
// coordinates panic.
func (b *Board) SetTile(x, y int, letter rune) {
	b.cells[y][x] = letter
}

// IsEmpty returns true if the square holds no letter (off-board squares are empty)
func (b *Board) IsEmpty(x, y int) bool {
	return b.PeekTile(x, y) == 0
}

// TileCount returns the number of squares holding a letter
func (b *Board) TileCount() int {
	count := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if b.cells[y][x] != 0 {
				count++
			}
		}
	}
	return count
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Equal reports whether both boards hold the same letters
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.cells == other.cells
}

// Rows returns each row as a 15 character string using EmptyCell for gaps
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	for y := 0; y < BoardSize; y++ {
		var sb strings.Builder
		for x := 0; x < BoardSize; x++ {
			if c := b.cells[y][x]; c != 0 {
				sb.WriteRune(c)
			} else {
				sb.WriteRune(EmptyCell)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the board in the debug/fixture text form accepted by ParseBoard
func (b *Board) String() string {
	return serialPrefix + "\n" + strings.Join(b.Rows(), "\n") + "\n" + serialSuffix
}

// ParseBoard reads a board from its text form: a discarded first line followed
// by exactly 15 rows of 15 characters, each a letter or EmptyCell. A closing
// "`)" line, as written by String, is ignored.
func ParseBoard(text string) (*Board, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && lines[n-1] == serialSuffix {
		lines = lines[:n-1]
	}

	if len(lines) != BoardSize {
		return nil, fmt.Errorf("%w: incorrect number of rows: expected %d, got %d",
			ErrMalformedBoard, BoardSize, len(lines))
	}

	board := NewBoard()
	for y, line := range lines {
		row := []rune(line)
		if len(row) != BoardSize {
			return nil, fmt.Errorf("%w: incorrect number of columns in row %d: expected %d, got %d",
				ErrMalformedBoard, y, BoardSize, len(row))
		}
		for x, c := range row {
			switch {
			case c == EmptyCell:
			case unicode.IsLetter(c) && c < unicode.MaxASCII:
				board.cells[y][x] = unicode.ToUpper(c)
			default:
				return nil, fmt.Errorf("%w: unexpected character %q at row %d col %d",
					ErrMalformedBoard, c, y, x)
			}
		}
	}
	return board, nil
}

// ParseRows builds a board from 15 rows without the leading header line
func ParseRows(rows []string) (*Board, error) {
	return ParseBoard("\n" + strings.Join(rows, "\n"))
}

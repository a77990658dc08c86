package rules

import (
	"fmt"
	"strings"
)

// Multiplier is the bonus carried by a board square
type Multiplier int

const (
	None Multiplier = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// String returns the short code used on printed boards
func (m Multiplier) String() string {
	switch m {
	case DoubleLetter:
		return "DL"
	case TripleLetter:
		return "TL"
	case DoubleWord:
		return "DW"
	case TripleWord:
		return "TW"
	default:
		return "none"
	}
}

// LetterFactor is the factor applied to the tile placed on the square
func (m Multiplier) LetterFactor() int {
	switch m {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	default:
		return 1
	}
}

// WordFactor is the factor applied to the whole word crossing the square
func (m Multiplier) WordFactor() int {
	switch m {
	case DoubleWord:
		return 2
	case TripleWord:
		return 3
	default:
		return 1
	}
}

// LayoutSize is the side length of the bonus square layout
const LayoutSize = 15

// Glyphs used in the textual layout below.
const (
	glyphTripleWord   = '='
	glyphDoubleWord   = '-'
	glyphTripleLetter = '"'
	glyphDoubleLetter = '\''
	glyphNone         = ' '
)

// standardLayout is the classic crossword game board, one string per row.
var standardLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   -   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// layout is parsed once and never modified afterwards
var layout = mustParseLayout(standardLayout)

// MultiplierAt returns the bonus of the square at column x, row y.
// Squares outside the board have no bonus.
func MultiplierAt(x, y int) Multiplier {
	if x < 0 || x >= LayoutSize || y < 0 || y >= LayoutSize {
		return None
	}
	return layout[y][x]
}

// Layout returns a copy of the bonus square grid, indexed [row][col]
func Layout() [LayoutSize][LayoutSize]Multiplier {
	return layout
}

func mustParseLayout(rows []string) [LayoutSize][LayoutSize]Multiplier {
	grid, err := parseLayout(rows)
	if err != nil {
		panic(err)
	}
	return grid
}

func parseLayout(rows []string) ([LayoutSize][LayoutSize]Multiplier, error) {
	var grid [LayoutSize][LayoutSize]Multiplier
	if len(rows) != LayoutSize {
		return grid, fmt.Errorf("layout has %d rows, expected %d", len(rows), LayoutSize)
	}
	for y, row := range rows {
		if len(row) != LayoutSize {
			return grid, fmt.Errorf("layout row %d has %d columns, expected %d", y, len(row), LayoutSize)
		}
		for x, glyph := range row {
			switch glyph {
			case glyphTripleWord:
				grid[y][x] = TripleWord
			case glyphDoubleWord:
				grid[y][x] = DoubleWord
			case glyphTripleLetter:
				grid[y][x] = TripleLetter
			case glyphDoubleLetter:
				grid[y][x] = DoubleLetter
			case glyphNone:
				grid[y][x] = None
			default:
				return grid, fmt.Errorf("unknown layout glyph %q at row %d col %d", glyph, y, x)
			}
		}
	}
	return grid, nil
}

// FormatLayout renders the layout using the two-letter codes, one row per line
func FormatLayout() string {
	var sb strings.Builder
	for y := 0; y < LayoutSize; y++ {
		cells := make([]string, LayoutSize)
		for x := 0; x < LayoutSize; x++ {
			m := layout[y][x]
			if m == None {
				cells[x] = "  "
			} else {
				cells[x] = m.String()
			}
		}
		sb.WriteString(strings.Join(cells, ","))
		if y < LayoutSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

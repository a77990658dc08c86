package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyRows() []string {
	rows := make([]string, BoardSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", BoardSize)
	}
	return rows
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 0, b.TileCount())
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			tile, err := b.GetTile(x, y)
			require.NoError(t, err)
			assert.Equal(t, rune(0), tile)
		}
	}
}

func TestSetAndGetTile(t *testing.T) {
	b := NewBoard()
	b.SetTile(3, 7, 'Q')

	tile, err := b.GetTile(3, 7)
	require.NoError(t, err)
	assert.Equal(t, 'Q', tile)
	assert.False(t, b.IsEmpty(3, 7))
	assert.True(t, b.IsEmpty(7, 3), "x is column, y is row")
}

func TestGetTileOutOfBounds(t *testing.T) {
	b := NewBoard()

	_, err := b.GetTile(15, 0)
	require.ErrorIs(t, err, ErrOutOfBounds)
	var be *BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "x", be.Axis)
	assert.Equal(t, 15, be.Value)

	_, err = b.GetTile(0, -1)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "y", be.Axis)
	assert.Equal(t, -1, be.Value)
	assert.Contains(t, err.Error(), "y = -1")
}

func TestPeekTileOffBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	b.SetTile(0, 0, 'A')

	assert.Equal(t, 'A', b.PeekTile(0, 0))
	assert.Equal(t, rune(0), b.PeekTile(-1, 0))
	assert.Equal(t, rune(0), b.PeekTile(0, BoardSize))
}

func TestSetTileOffBoardPanics(t *testing.T) {
	b := NewBoard()
	assert.Panics(t, func() { b.SetTile(BoardSize, 0, 'A') })
}

func TestStringFormat(t *testing.T) {
	b := NewBoard()
	b.SetTile(0, 0, 'C')
	b.SetTile(1, 0, 'A')
	b.SetTile(2, 0, 'T')

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, BoardSize+2)
	assert.Equal(t, "Board(`", lines[0])
	assert.Equal(t, "CAT............", lines[1])
	assert.Equal(t, "`)", lines[len(lines)-1])
}

func TestRoundTrip(t *testing.T) {
	b := NewBoard()
	b.SetTile(7, 7, 'H')
	b.SetTile(8, 7, 'I')
	b.SetTile(14, 14, 'Z')
	b.SetTile(0, 14, 'Q')

	parsed, err := ParseBoard(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(parsed))
	assert.Equal(t, b.String(), parsed.String())
}

func TestParseBoardWithHeaderLine(t *testing.T) {
	rows := emptyRows()
	rows[4] = ".....cat......."

	b, err := ParseBoard("\n" + strings.Join(rows, "\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, b.TileCount())
	assert.Equal(t, 'C', b.PeekTile(5, 4), "letters are upper-cased")
}

func TestParseBoardFourteenRows(t *testing.T) {
	rows := emptyRows()[:14]

	_, err := ParseBoard("\n" + strings.Join(rows, "\n"))
	require.ErrorIs(t, err, ErrMalformedBoard)
	assert.Contains(t, err.Error(), "expected 15, got 14")
}

func TestParseBoardShortRow(t *testing.T) {
	rows := emptyRows()
	rows[9] = "......"

	_, err := ParseRows(rows)
	require.ErrorIs(t, err, ErrMalformedBoard)
	assert.Contains(t, err.Error(), "columns")
}

func TestParseBoardBadCharacter(t *testing.T) {
	rows := emptyRows()
	rows[2] = "..#............"

	_, err := ParseRows(rows)
	assert.ErrorIs(t, err, ErrMalformedBoard)
}

func TestParseBoardEmptyText(t *testing.T) {
	_, err := ParseBoard("")
	assert.ErrorIs(t, err, ErrMalformedBoard)
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.ID = "board-1"
	b.SetTile(1, 1, 'A')

	clone := b.Clone()
	clone.SetTile(2, 2, 'B')

	assert.Equal(t, BoardID("board-1"), clone.ID)
	assert.True(t, b.IsEmpty(2, 2))
	assert.False(t, b.Equal(clone))
	assert.False(t, b.Equal(nil))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("across")
	require.NoError(t, err)
	assert.Equal(t, Across, d)

	d, err = ParseDirection("D")
	require.NoError(t, err)
	assert.Equal(t, Down, d)

	d, err = ParseDirection("r")
	require.NoError(t, err)
	assert.Equal(t, Across, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestDirectionStep(t *testing.T) {
	dx, dy := Across.Step()
	assert.Equal(t, [2]int{1, 0}, [2]int{dx, dy})
	dx, dy = Down.Step()
	assert.Equal(t, [2]int{0, 1}, [2]int{dx, dy})
	assert.Equal(t, Down, Across.Perpendicular())
	assert.Equal(t, Across, Down.Perpendicular())
	assert.False(t, Direction("up").Valid())
}

package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterScore(t *testing.T) {
	cases := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
		'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
	}
	for letter, want := range cases {
		assert.Equal(t, want, LetterScore(letter), "letter %c", letter)
	}
}

func TestLetterScoreLowercase(t *testing.T) {
	assert.Equal(t, 10, LetterScore('q'))
	assert.Equal(t, 1, LetterScore('a'))
}

func TestLetterScoreNonLetter(t *testing.T) {
	assert.Equal(t, 0, LetterScore('.'))
	assert.Equal(t, 0, LetterScore('1'))
	assert.Equal(t, 0, LetterScore(0))
}

func TestIsLetter(t *testing.T) {
	assert.True(t, IsLetter('A'))
	assert.True(t, IsLetter('z'))
	assert.False(t, IsLetter('.'))
	assert.False(t, IsLetter('*'))
}

func TestMultiplierAtKnownSquares(t *testing.T) {
	assert.Equal(t, TripleWord, MultiplierAt(0, 0))
	assert.Equal(t, TripleWord, MultiplierAt(7, 0))
	assert.Equal(t, DoubleWord, MultiplierAt(7, 7), "center square is double word")
	assert.Equal(t, DoubleWord, MultiplierAt(1, 1))
	assert.Equal(t, TripleLetter, MultiplierAt(5, 1))
	assert.Equal(t, DoubleLetter, MultiplierAt(3, 0))
	assert.Equal(t, None, MultiplierAt(1, 0))
}

func TestMultiplierAtOutOfRange(t *testing.T) {
	assert.Equal(t, None, MultiplierAt(-1, 0))
	assert.Equal(t, None, MultiplierAt(0, 15))
}

func TestLayoutIsSymmetric(t *testing.T) {
	grid := Layout()
	last := LayoutSize - 1
	for y := 0; y < LayoutSize; y++ {
		for x := 0; x < LayoutSize; x++ {
			m := grid[y][x]
			assert.Equal(t, m, grid[x][y], "diagonal (%d,%d)", x, y)
			assert.Equal(t, m, grid[y][last-x], "horizontal (%d,%d)", x, y)
			assert.Equal(t, m, grid[last-y][x], "vertical (%d,%d)", x, y)
		}
	}
}

func TestLayoutCounts(t *testing.T) {
	counts := map[Multiplier]int{}
	grid := Layout()
	for y := range grid {
		for x := range grid[y] {
			counts[grid[y][x]]++
		}
	}
	assert.Equal(t, 8, counts[TripleWord])
	assert.Equal(t, 17, counts[DoubleWord])
	assert.Equal(t, 12, counts[TripleLetter])
	assert.Equal(t, 24, counts[DoubleLetter])
}

func TestMultiplierFactors(t *testing.T) {
	assert.Equal(t, 2, DoubleLetter.LetterFactor())
	assert.Equal(t, 3, TripleLetter.LetterFactor())
	assert.Equal(t, 1, DoubleWord.LetterFactor())
	assert.Equal(t, 2, DoubleWord.WordFactor())
	assert.Equal(t, 3, TripleWord.WordFactor())
	assert.Equal(t, 1, TripleLetter.WordFactor())
	assert.Equal(t, 1, None.LetterFactor())
	assert.Equal(t, 1, None.WordFactor())
}

func TestParseLayoutRejectsBadShape(t *testing.T) {
	_, err := parseLayout(standardLayout[:14])
	require.Error(t, err)

	rows := append([]string{}, standardLayout...)
	rows[3] = "short"
	_, err = parseLayout(rows)
	require.Error(t, err)

	rows = append([]string{}, standardLayout...)
	rows[0] = "X" + rows[0][1:]
	_, err = parseLayout(rows)
	require.Error(t, err)
}

func TestFormatLayout(t *testing.T) {
	lines := strings.Split(FormatLayout(), "\n")
	require.Len(t, lines, LayoutSize)
	assert.True(t, strings.HasPrefix(lines[0], "TW,  ,  ,DL"))
	assert.Equal(t, "DW", strings.Split(lines[7], ",")[7])
}

package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordscore/internal/model"
)

// Board builds a board from sparse rows: row i of the result is rows[i]
// padded with empty squares, and missing rows are empty.
func Board(t *testing.T, rows ...string) *model.Board {
	t.Helper()
	require.LessOrEqual(t, len(rows), model.BoardSize)

	full := make([]string, model.BoardSize)
	for i := range full {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		require.LessOrEqual(t, len(row), model.BoardSize, "row %d too long", i)
		full[i] = row + strings.Repeat(string(model.EmptyCell), model.BoardSize-len(row))
	}

	b, err := model.ParseRows(full)
	require.NoError(t, err)
	return b
}

// BoardText is Board rendered in its text form
func BoardText(t *testing.T, rows ...string) string {
	t.Helper()
	return Board(t, rows...).String()
}

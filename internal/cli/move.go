package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordscore/internal/model"
)

// moveFlags are the flags shared by every command that takes a move
type moveFlags struct {
	x         int
	y         int
	direction string
	tiles     string
}

func addMoveFlags(cmd *cobra.Command, f *moveFlags) {
	cmd.Flags().IntVarP(&f.x, "x", "x", 0, "Column of the first tile")
	cmd.Flags().IntVarP(&f.y, "y", "y", 0, "Row of the first tile")
	cmd.Flags().StringVarP(&f.direction, "dir", "d", string(model.Across), "Direction: across (r) or down (d)")
	cmd.Flags().StringVarP(&f.tiles, "tiles", "t", "", "Letters to place, in order")
	_ = cmd.MarkFlagRequired("tiles")
}

// request returns the body sent to the move endpoints
func (f *moveFlags) request() map[string]any {
	return map[string]any{
		"x":         f.x,
		"y":         f.y,
		"direction": f.direction,
		"tiles":     f.tiles,
	}
}

func (f *moveFlags) move() (model.Move, error) {
	dir, err := model.ParseDirection(f.direction)
	if err != nil {
		return model.Move{}, err
	}
	return model.Move{X: f.x, Y: f.y, Direction: dir, Tiles: f.tiles}, nil
}

// readBoardFile loads a board from path, or stdin when path is "-".
// Both the Board(`...`) text form and bare rows are accepted.
func readBoardFile(cmd *cobra.Command, path string) (*model.Board, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open board file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}
	return parseBoardText(string(data))
}

func parseBoardText(text string) (*model.Board, error) {
	text = strings.TrimRight(text, "\r\n")
	if strings.HasPrefix(text, "Board(") {
		return model.ParseBoard(text)
	}
	return model.ParseRows(boardRows(text))
}

// boardRows splits bare board text into rows, dropping blank lines
func boardRows(text string) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

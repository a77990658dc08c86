package cli

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordscore/internal/model"
	"github.com/mcoot/wordscore/internal/rules"
	"github.com/mcoot/wordscore/internal/services/placement"
)

func newScoreCmd() *cobra.Command {
	var (
		flags moveFlags
		file  string
		show  bool
		write bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a move against a local board file",
		Long: `Score a move against a board read from a file, or an empty board when
no file is given. Nothing is sent to a server.

  wordscore score --file board.txt -x 7 -y 7 -d across -t HORN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && (file == "" || file == "-") {
				return fmt.Errorf("--write needs a board file")
			}

			move, err := flags.move()
			if err != nil {
				return err
			}

			b := model.NewBoard()
			if file != "" {
				if b, err = readBoardFile(cmd, file); err != nil {
					return err
				}
			}

			engine := placement.New()
			var result placement.Result
			if show || write {
				result, err = engine.Play(b, move)
			} else {
				result, err = engine.Evaluate(b, move)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			if show {
				out.Print(PlayResponse{
					Board:  Board{Rows: b.Rows(), TileCount: b.TileCount()},
					Result: scoreResultFromEngine(result),
					Play: Play{
						X:         move.X,
						Y:         move.Y,
						Direction: string(move.Direction),
						Tiles:     move.Tiles,
						Score:     result.Score,
					},
				})
			} else {
				out.Print(scoreResultFromEngine(result))
			}

			if write {
				if err := os.WriteFile(file, []byte(b.String()+"\n"), 0o644); err != nil {
					return fmt.Errorf("failed to write board file: %w", err)
				}
			}
			return nil
		},
	}

	addMoveFlags(cmd, &flags)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Board file (- for stdin)")
	cmd.Flags().BoolVar(&show, "show", false, "Print the board with the move applied")
	cmd.Flags().BoolVar(&write, "write", false, "Write the board with the move applied back to the file")

	return cmd
}

func scoreResultFromEngine(r placement.Result) ScoreResult {
	return ScoreResult{
		Score:          r.Score,
		WordScore:      r.WordScore,
		WordMultiplier: r.WordMultiplier,
		CrossScore:     r.CrossScore,
		CrossWords:     r.CrossWords,
		Attached:       r.Attached,
		Tiles: lo.Map(r.Tiles, func(t placement.PlacedTile, _ int) PlacedTile {
			pt := PlacedTile{X: t.X, Y: t.Y, Letter: string(t.Letter)}
			if t.Multiplier != rules.None {
				pt.Multiplier = t.Multiplier.String()
			}
			return pt
		}),
	}
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the bonus square layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), rules.FormatLayout())
			return err
		},
	}
}

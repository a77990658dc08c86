package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards stored on the server",
	}

	cmd.AddCommand(newBoardCreateCmd())
	cmd.AddCommand(newBoardGetCmd())
	cmd.AddCommand(newBoardScoreCmd())
	cmd.AddCommand(newBoardPlayCmd())
	cmd.AddCommand(newBoardHistoryCmd())
	cmd.AddCommand(newBoardDeleteCmd())

	return cmd
}

func newBoardCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board, empty or imported from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if file != "" {
				b, err := readBoardFile(cmd, file)
				if err != nil {
					return err
				}
				body["rows"] = b.Rows()
			}

			var result Board
			if err := client.Post("/api/v1/boards", body, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Board file to import (- for stdin)")

	return cmd
}

func newBoardGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <board-id>",
		Short: "Show a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board
			if err := client.Get(fmt.Sprintf("/api/v1/boards/%s", args[0]), &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newBoardScoreCmd() *cobra.Command {
	var flags moveFlags

	cmd := &cobra.Command{
		Use:   "score <board-id>",
		Short: "Score a move without changing the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ScoreResult
			path := fmt.Sprintf("/api/v1/boards/%s/score", args[0])
			if err := client.Post(path, flags.request(), &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	addMoveFlags(cmd, &flags)

	return cmd
}

func newBoardPlayCmd() *cobra.Command {
	var flags moveFlags

	cmd := &cobra.Command{
		Use:   "play <board-id>",
		Short: "Play a move onto the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayResponse
			path := fmt.Sprintf("/api/v1/boards/%s/play", args[0])
			if err := client.Post(path, flags.request(), &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	addMoveFlags(cmd, &flags)

	return cmd
}

func newBoardHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <board-id>",
		Short: "List the moves played on a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result History
			if err := client.Get(fmt.Sprintf("/api/v1/boards/%s/history", args[0]), &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newBoardDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/boards/%s", args[0])); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).PrintMessage(fmt.Sprintf("Deleted board %s", args[0]))
			return nil
		},
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"pathfinder/internal/cli/formatter"
	"pathfinder/internal/llm"
)

func newAskCmd(app *App) *cobra.Command {
	var threadID string

	cmd := &cobra.Command{
		Use:   `ask "<message>"`,
		Short: "Run one turn and print the reply",
		Long: "Send a single message through the assistant. Use --thread to\n" +
			"continue an existing conversation; without it a fresh thread is used.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if threadID == "" {
				threadID = uuid.NewString()
			}

			result, err := app.Controller.HandleTurn(context.Background(), threadID, args[0])
			if err != nil {
				if errors.Is(err, llm.ErrTimeout) {
					return fmt.Errorf("turn failed: %w (set PATHFINDER_LLM_PLAN_TIMEOUT_MS, e.g. 60000)", err)
				}
				return fmt.Errorf("turn failed: %w", err)
			}

			fmt.Print(formatter.FormatTurnReply(result.Reply, result.Plan, result.Diagram))
			if result.Quiz != nil {
				fmt.Print(formatter.FormatQuizIntro(result.Quiz))
			}
			fmt.Println(formatter.Dim("thread: " + result.ThreadID))
			return nil
		},
	}

	cmd.Flags().StringVar(&threadID, "thread", "", "thread id to continue")
	return cmd
}

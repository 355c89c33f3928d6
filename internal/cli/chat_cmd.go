package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var threadID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal; use `pathfinder ask` instead")
			}
			if threadID == "" {
				threadID = uuid.NewString()
			}

			p := tea.NewProgram(newChatModel(app, threadID))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&threadID, "thread", "", "thread id to continue")
	return cmd
}

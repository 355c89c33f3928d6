package cli

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pathfinder/internal/dialogue"
	"pathfinder/internal/strategy"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	Controller *dialogue.Controller
	Provider   strategy.Provider
	Log        *zap.Logger

	// APIHandler and Addr are used by the serve command.
	APIHandler http.Handler
	Addr       string

	// IsInteractive reports whether stdin is a terminal; the chat REPL
	// and the interactive quiz refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pathfinder" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pathfinder",
		Short: "Conversational learning-path assistant",
		Long: "PathFinder builds multi-week learning roadmaps in conversation:\n" +
			"describe a goal, refine the plan with feedback, quiz yourself, and\n" +
			"render the plan as a diagram.",
	}

	root.AddCommand(
		newServeCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newQuizCmd(app),
	)

	return root
}

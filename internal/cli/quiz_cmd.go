package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"pathfinder/internal/cli/formatter"
	"pathfinder/internal/domain"
)

func newQuizCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `quiz "<topic>"`,
		Short: "Generate a quiz and answer it interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiz, err := app.Provider.GenerateQuiz(context.Background(), args[0], "")
			if err != nil {
				return fmt.Errorf("generating quiz: %w", err)
			}

			fmt.Println(formatter.FormatQuizIntro(quiz))

			if app.IsInteractive != nil && !app.IsInteractive() {
				// No terminal to answer in; print the questions and stop.
				for i, q := range quiz.Questions {
					fmt.Printf("%d. %s\n", i+1, q.Text)
					for j, opt := range q.Options {
						fmt.Printf("   %c) %s\n", 'A'+j, opt)
					}
				}
				return nil
			}

			answers, err := runQuizForm(quiz)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatQuizResult(quiz, answers))
			return nil
		},
	}
	return cmd
}

// runQuizForm presents each question as a select field and collects answers.
func runQuizForm(quiz *domain.Quiz) ([]string, error) {
	answers := make([]string, len(quiz.Questions))
	fields := make([]huh.Field, 0, len(quiz.Questions))

	for i, q := range quiz.Questions {
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title(fmt.Sprintf("%d. %s", i+1, q.Text)).
			Options(options...).
			Value(&answers[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running quiz form: %w", err)
	}
	return answers, nil
}

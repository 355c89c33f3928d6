package formatter

import (
	"fmt"
	"strings"

	"pathfinder/internal/domain"
)

// FormatQuizIntro renders the quiz heading.
func FormatQuizIntro(quiz *domain.Quiz) string {
	return Header(fmt.Sprintf("Quiz: %s", quiz.Topic)) +
		"\n" + Dim(fmt.Sprintf("%d questions\n", len(quiz.Questions)))
}

// FormatQuizResult renders the per-question verdicts and the final score.
func FormatQuizResult(quiz *domain.Quiz, answers []string) string {
	var b strings.Builder
	correct := 0

	for i, q := range quiz.Questions {
		given := ""
		if i < len(answers) {
			given = answers[i]
		}
		if given == q.CorrectAnswer {
			correct++
			b.WriteString(fmt.Sprintf("%s %d. %s\n", StyleGreen.Render("✓"), i+1, q.Text))
		} else {
			b.WriteString(fmt.Sprintf("%s %d. %s\n", StyleRed.Render("✗"), i+1, q.Text))
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("answer:"), q.CorrectAnswer))
		}
		if q.Explanation != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(q.Explanation)))
		}
	}

	b.WriteString("\n")
	score := fmt.Sprintf("Score: %d/%d", correct, len(quiz.Questions))
	if correct == len(quiz.Questions) {
		b.WriteString(StyleGreen.Render(score))
	} else {
		b.WriteString(StyleYellow.Render(score))
	}
	b.WriteString("\n")
	return b.String()
}

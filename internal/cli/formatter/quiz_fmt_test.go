package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pathfinder/internal/domain"
)

func twoQuestionQuiz() *domain.Quiz {
	return &domain.Quiz{
		Topic: "Go",
		Questions: []domain.Question{
			{
				Text:          "Which keyword starts a goroutine?",
				Options:       []string{"go", "run", "async", "spawn"},
				CorrectAnswer: "go",
				Explanation:   "The go statement starts a new goroutine.",
			},
			{
				Text:          "What does := do?",
				Options:       []string{"compares", "declares and assigns", "dereferences", "casts"},
				CorrectAnswer: "declares and assigns",
			},
		},
	}
}

func TestFormatQuizIntro(t *testing.T) {
	out := FormatQuizIntro(twoQuestionQuiz())
	assert.Contains(t, out, "QUIZ: GO")
	assert.Contains(t, out, "2 questions")
}

func TestFormatQuizResult_AllCorrect(t *testing.T) {
	out := FormatQuizResult(twoQuestionQuiz(), []string{"go", "declares and assigns"})
	assert.Contains(t, out, "Score: 2/2")
	assert.NotContains(t, out, "answer:")
}

func TestFormatQuizResult_PartiallyWrong(t *testing.T) {
	out := FormatQuizResult(twoQuestionQuiz(), []string{"go", "casts"})
	assert.Contains(t, out, "Score: 1/2")
	assert.Contains(t, out, "answer: declares and assigns")
	assert.Contains(t, out, "The go statement starts a new goroutine.")
}

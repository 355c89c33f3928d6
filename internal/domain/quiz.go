package domain

import "fmt"

// QuestionOptionCount is the fixed number of answer options per question.
const QuestionOptionCount = 4

// Quiz is a multiple-choice quiz about a topic. Quizzes are transient
// artifacts: they are returned to the caller and recorded in the turn
// history, but never merged into a session's plan.
type Quiz struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks the quiz invariants: at least one question, exactly four
// options each, and a correct answer that is one of the options.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz must contain at least one question")
	}
	for i, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("questions[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks a single question's invariants.
func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is required")
	}
	if len(q.Options) != QuestionOptionCount {
		return fmt.Errorf("expected %d options, got %d", QuestionOptionCount, len(q.Options))
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return fmt.Errorf("correct_answer %q is not one of the options", q.CorrectAnswer)
}

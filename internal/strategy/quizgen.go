package strategy

import (
	"context"
	"fmt"
	"strings"

	"pathfinder/internal/domain"
	"pathfinder/internal/llm"
)

func (p *llmProvider) GenerateQuiz(ctx context.Context, topic, contextHint string) (*domain.Quiz, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a quiz about: %s", topic)
	if contextHint != "" {
		fmt.Fprintf(&b, "\n\nContext:\n%s", contextHint)
	}

	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuiz,
		SystemPrompt: quizSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("llm quiz generation failed: %w", err)
	}

	quiz, err := llm.ExtractJSON[domain.Quiz](resp.Text, validateQuiz)
	if err != nil {
		return nil, fmt.Errorf("extracting quiz: %w", err)
	}

	// Models occasionally drop the topic field; fall back to the request topic.
	if quiz.Topic == "" {
		quiz.Topic = topic
	}

	return &quiz, nil
}

// validateQuiz rejects structurally invalid quizzes, including any question
// whose correct answer is not one of its options.
func validateQuiz(q domain.Quiz) error {
	return q.Validate()
}

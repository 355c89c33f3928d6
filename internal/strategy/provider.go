// Package strategy implements the generation strategies behind a dialogue
// turn: plan creation, plan adaptation, quiz generation, free chat, and
// diagram rendering. Each strategy is one bounded LLM call whose output is
// coerced into a validated domain value.
package strategy

import (
	"context"

	"pathfinder/internal/domain"
	"pathfinder/internal/llm"
)

// Provider is the single injection point for all generation strategies.
// The dialogue controller depends on this interface only, so tests can
// substitute deterministic fakes.
type Provider interface {
	// GeneratePlan builds a fresh roadmap from a free-text learning goal.
	GeneratePlan(ctx context.Context, goal string) (*domain.Roadmap, error)

	// AdaptPlan rewrites an existing roadmap based on user feedback.
	// The result is always a complete roadmap, never a partial patch.
	AdaptPlan(ctx context.Context, plan *domain.Roadmap, feedback string) (*domain.Roadmap, error)

	// GenerateQuiz produces a multiple-choice quiz about a topic.
	// contextHint may carry retrieved context and may be empty.
	GenerateQuiz(ctx context.Context, topic, contextHint string) (*domain.Quiz, error)

	// GenerateChatReply produces a conversational answer.
	GenerateChatReply(ctx context.Context, message, contextHint string) (string, error)

	// GenerateDiagram renders a roadmap as Mermaid flowchart source.
	GenerateDiagram(ctx context.Context, plan *domain.Roadmap) (string, error)
}

// llmProvider implements Provider with one LLM call per strategy.
type llmProvider struct {
	client llm.Client
}

// NewProvider creates a Provider backed by the given LLM client.
func NewProvider(client llm.Client) Provider {
	return &llmProvider{client: client}
}

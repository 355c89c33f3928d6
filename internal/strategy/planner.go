package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"pathfinder/internal/domain"
	"pathfinder/internal/llm"
)

func (p *llmProvider) GeneratePlan(ctx context.Context, goal string) (*domain.Roadmap, error) {
	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: plannerSystemPrompt,
		UserPrompt:   goal,
	})
	if err != nil {
		return nil, fmt.Errorf("llm plan generation failed: %w", err)
	}

	roadmap, err := llm.ExtractJSON[domain.Roadmap](resp.Text, validateRoadmap)
	if err != nil {
		return nil, fmt.Errorf("extracting roadmap: %w", err)
	}

	roadmap.Normalize()
	return &roadmap, nil
}

func (p *llmProvider) AdaptPlan(ctx context.Context, plan *domain.Roadmap, feedback string) (*domain.Roadmap, error) {
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling current plan: %w", err)
	}

	prompt := fmt.Sprintf("Current roadmap:\n%s\n\nUser feedback: %s", planJSON, feedback)
	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdapt,
		SystemPrompt: adapterSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("llm plan adaptation failed: %w", err)
	}

	adapted, err := llm.ExtractJSON[domain.Roadmap](resp.Text, validateRoadmap)
	if err != nil {
		return nil, fmt.Errorf("extracting adapted roadmap: %w", err)
	}

	adapted.Normalize()
	return &adapted, nil
}

// validateRoadmap is the schema validator applied to extracted roadmaps.
// A roadmap with an empty schedule counts as a generation failure.
func validateRoadmap(r domain.Roadmap) error {
	return r.Validate()
}

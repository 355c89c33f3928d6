package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pathfinder/internal/domain"
	"pathfinder/internal/llm"
)

func (p *llmProvider) GenerateDiagram(ctx context.Context, plan *domain.Roadmap) (string, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("marshaling plan: %w", err)
	}

	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDiagram,
		SystemPrompt: diagramSystemPrompt,
		UserPrompt:   string(planJSON),
	})
	if err != nil {
		// A diagram is derivable without a model; fall back to the
		// deterministic renderer instead of failing the turn.
		return RenderMermaid(plan), nil
	}

	src := strings.TrimSpace(stripMermaidFence(resp.Text))
	if !strings.HasPrefix(src, "flowchart") && !strings.HasPrefix(src, "graph") {
		return RenderMermaid(plan), nil
	}
	return src, nil
}

// RenderMermaid builds Mermaid flowchart source directly from a roadmap.
// Used as the LLM-free fallback and by the CLI.
func RenderMermaid(plan *domain.Roadmap) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	fmt.Fprintf(&b, "    start([%s])\n", mermaidEscape(plan.Topic))

	prev := "start"
	for i, week := range plan.Schedule {
		id := fmt.Sprintf("w%d", i+1)
		fmt.Fprintf(&b, "    %s[\"Week %d: %s\"]\n", id, week.WeekNumber, mermaidEscape(week.TopicDescription))
		fmt.Fprintf(&b, "    %s --> %s\n", prev, id)
		prev = id
	}
	return strings.TrimRight(b.String(), "\n")
}

// stripMermaidFence removes a ```mermaid ... ``` fence if the model added one.
func stripMermaidFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```mermaid")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return s
}

func mermaidEscape(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	return s
}

package strategy

import (
	"context"
	"fmt"
	"strings"

	"pathfinder/internal/llm"
)

func (p *llmProvider) GenerateChatReply(ctx context.Context, message, contextHint string) (string, error) {
	prompt := message
	if contextHint != "" {
		prompt = fmt.Sprintf("Context:\n%s\n\nUser: %s", contextHint, message)
	}

	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: chatSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return "", fmt.Errorf("llm chat reply failed: %w", err)
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return "", fmt.Errorf("%w: empty chat reply", llm.ErrInvalidOutput)
	}
	return reply, nil
}

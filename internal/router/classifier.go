package router

import (
	"context"
	"fmt"

	"pathfinder/internal/llm"
)

const intentSystemPrompt = `You are the intent classifier for PathFinder, a learning assistant.
The user already has a learning plan. Decide whether their message is
feedback about that plan (dissatisfaction, progress updates, schedule
problems) or ordinary conversation.

Examples:
- "this is too hard" -> modify_plan
- "I finished week 1" -> modify_plan
- "I missed a week, I'm behind" -> modify_plan
- "this week was great" -> chat
- "what's a good practice amp?" -> chat
- "thanks!" -> chat

Output ONLY a JSON object: {"decision": "modify_plan"} or {"decision": "chat"}.
No markdown fences. No text outside the JSON.`

// intentResponse is the JSON shape the classifier model outputs.
type intentResponse struct {
	Decision string `json:"decision"`
}

// llmClassifier implements IntentClassifier with one short, cold LLM call.
type llmClassifier struct {
	client llm.Client
}

// NewLLMClassifier creates an IntentClassifier backed by an LLM client.
func NewLLMClassifier(client llm.Client) IntentClassifier {
	return &llmClassifier{client: client}
}

func (c *llmClassifier) Classify(ctx context.Context, message string) (Decision, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRoute,
		SystemPrompt: intentSystemPrompt,
		UserPrompt:   message,
	})
	if err != nil {
		return "", fmt.Errorf("llm intent classification failed: %w", err)
	}

	parsed, err := llm.ExtractJSON[intentResponse](resp.Text, validateIntentResponse)
	if err != nil {
		return "", fmt.Errorf("extracting intent: %w", err)
	}
	return Decision(parsed.Decision), nil
}

func validateIntentResponse(r intentResponse) error {
	if r.Decision != string(DecisionModifyPlan) && r.Decision != string(DecisionChat) {
		return fmt.Errorf("decision must be %q or %q, got %q", DecisionModifyPlan, DecisionChat, r.Decision)
	}
	return nil
}

// Package router classifies incoming user messages into route decisions.
// Classification is two-tier: cheap deterministic keyword checks first,
// then an LLM intent call only for the ambiguous residual case.
package router

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Decision is the router's classification of which strategy a turn invokes.
type Decision string

const (
	DecisionCreatePlan Decision = "create_plan"
	DecisionModifyPlan Decision = "modify_plan"
	DecisionChat       Decision = "chat"
	DecisionQuiz       Decision = "quiz"
	DecisionVisualize  Decision = "visualize"
)

// validDecisions is the closed decision set.
var validDecisions = map[Decision]bool{
	DecisionCreatePlan: true,
	DecisionModifyPlan: true,
	DecisionChat:       true,
	DecisionQuiz:       true,
	DecisionVisualize:  true,
}

// IsValidDecision returns true if the given value is a known decision.
func IsValidDecision(d Decision) bool {
	return validDecisions[d]
}

// quizMarkers and visualMarkers are the deterministic first-tier keyword
// sets. Matched case-insensitively as whole words.
var (
	quizMarkers   = []string{"quiz", "test", "exam"}
	visualMarkers = []string{"diagram", "visual", "mermaid"}
)

// IntentClassifier resolves the ambiguous residual case: does a message
// express dissatisfaction or a progress update about an existing plan, or
// is it just conversation? Implementations are expected to be fallible.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) (Decision, error)
}

// Router turns (message, has_existing_plan) into exactly one decision.
type Router struct {
	classifier IntentClassifier
	log        *zap.Logger
}

// New creates a Router. classifier may be nil, in which case the ambiguous
// tier always resolves to chat. log may be nil.
func New(classifier IntentClassifier, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{classifier: classifier, log: log}
}

// Classify applies the deterministic precedence order and returns exactly
// one decision. It never fails: classifier errors degrade to chat.
func (r *Router) Classify(ctx context.Context, message string, hasExistingPlan bool) Decision {
	switch {
	case containsAnyWord(message, quizMarkers):
		return DecisionQuiz
	case containsAnyWord(message, visualMarkers):
		return DecisionVisualize
	case !hasExistingPlan:
		return DecisionCreatePlan
	}

	// Ambiguous residual: feedback about the current plan vs. plain chat.
	// Keyword matching misclassifies phrases like "this week was great",
	// so this tier goes to the model.
	if r.classifier == nil {
		return DecisionChat
	}

	decision, err := r.classifier.Classify(ctx, message)
	if err != nil {
		r.log.Warn("intent classification failed, defaulting to chat", zap.Error(err))
		return DecisionChat
	}
	if decision != DecisionModifyPlan && decision != DecisionChat {
		r.log.Warn("intent classifier returned out-of-set decision, defaulting to chat",
			zap.String("decision", string(decision)))
		return DecisionChat
	}
	return decision
}

// containsAnyWord reports whether any marker occurs in the message as a
// whole word, case-insensitively.
func containsAnyWord(message string, markers []string) bool {
	for _, field := range strings.FieldsFunc(strings.ToLower(message), isWordSeparator) {
		for _, marker := range markers {
			if field == marker {
				return true
			}
		}
	}
	return false
}

func isWordSeparator(r rune) bool {
	return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
}

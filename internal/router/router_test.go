package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubClassifier returns a fixed decision or error.
type stubClassifier struct {
	decision Decision
	err      error
	calls    int
}

func (s *stubClassifier) Classify(ctx context.Context, message string) (Decision, error) {
	s.calls++
	return s.decision, s.err
}

func TestClassify_QuizKeywordsWinRegardlessOfPlan(t *testing.T) {
	r := New(nil, nil)
	for _, msg := range []string{
		"give me a quiz",
		"Test me on week 1",
		"I have an EXAM coming up",
		"quiz, please",
	} {
		assert.Equal(t, DecisionQuiz, r.Classify(context.Background(), msg, false), "message %q", msg)
		assert.Equal(t, DecisionQuiz, r.Classify(context.Background(), msg, true), "message %q", msg)
	}
}

func TestClassify_KeywordsMatchWholeWordsOnly(t *testing.T) {
	r := New(nil, nil)
	// "contest" and "testing" contain "test" but are not quiz intent.
	assert.Equal(t, DecisionCreatePlan, r.Classify(context.Background(), "I want to win a coding contest", false))
	assert.Equal(t, DecisionCreatePlan, r.Classify(context.Background(), "teach me software testing", false))
}

func TestClassify_VisualizeKeywords(t *testing.T) {
	r := New(nil, nil)
	assert.Equal(t, DecisionVisualize, r.Classify(context.Background(), "show me a diagram of my plan", true))
	assert.Equal(t, DecisionVisualize, r.Classify(context.Background(), "can I get a mermaid chart", true))
	assert.Equal(t, DecisionVisualize, r.Classify(context.Background(), "give me a visual overview", false))
}

func TestClassify_QuizBeatsVisualize(t *testing.T) {
	r := New(nil, nil)
	assert.Equal(t, DecisionQuiz, r.Classify(context.Background(), "quiz me with a diagram", true))
}

func TestClassify_NoPlanMeansCreatePlan(t *testing.T) {
	stub := &stubClassifier{decision: DecisionModifyPlan}
	r := New(stub, nil)
	got := r.Classify(context.Background(), "I want to learn guitar", false)
	assert.Equal(t, DecisionCreatePlan, got)
	// The expensive tier must not run when the decision is already made.
	assert.Zero(t, stub.calls)
}

func TestClassify_NeverModifyPlanWithoutPlan(t *testing.T) {
	stub := &stubClassifier{decision: DecisionModifyPlan}
	r := New(stub, nil)
	for _, msg := range []string{"this is too hard", "I'm behind schedule", "hello"} {
		got := r.Classify(context.Background(), msg, false)
		assert.NotEqual(t, DecisionModifyPlan, got, "message %q", msg)
	}
}

func TestClassify_AmbiguousGoesToClassifier(t *testing.T) {
	stub := &stubClassifier{decision: DecisionModifyPlan}
	r := New(stub, nil)
	got := r.Classify(context.Background(), "week 1 is too hard", true)
	assert.Equal(t, DecisionModifyPlan, got)
	assert.Equal(t, 1, stub.calls)
}

func TestClassify_ClassifierChatResult(t *testing.T) {
	stub := &stubClassifier{decision: DecisionChat}
	r := New(stub, nil)
	assert.Equal(t, DecisionChat, r.Classify(context.Background(), "this week was great", true))
}

func TestClassify_ClassifierErrorDefaultsToChat(t *testing.T) {
	stub := &stubClassifier{err: errors.New("model unavailable")}
	r := New(stub, nil)
	assert.Equal(t, DecisionChat, r.Classify(context.Background(), "hmm", true))
}

func TestClassify_OutOfSetDecisionDefaultsToChat(t *testing.T) {
	stub := &stubClassifier{decision: Decision("reboot")}
	r := New(stub, nil)
	assert.Equal(t, DecisionChat, r.Classify(context.Background(), "hmm", true))
}

func TestClassify_NilClassifierDefaultsToChat(t *testing.T) {
	r := New(nil, nil)
	assert.Equal(t, DecisionChat, r.Classify(context.Background(), "this is too hard", true))
}

func TestIsValidDecision(t *testing.T) {
	for _, d := range []Decision{DecisionCreatePlan, DecisionModifyPlan, DecisionChat, DecisionQuiz, DecisionVisualize} {
		assert.True(t, IsValidDecision(d))
	}
	assert.False(t, IsValidDecision(Decision("nope")))
}

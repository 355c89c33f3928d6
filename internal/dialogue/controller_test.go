package dialogue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathfinder/internal/domain"
	"pathfinder/internal/retrieval"
	"pathfinder/internal/router"
	"pathfinder/internal/testutil"
)

type fixture struct {
	store      *testutil.MemoryStore
	provider   *testutil.FakeProvider
	classifier *testutil.FakeClassifier
	controller *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:      testutil.NewMemoryStore(),
		provider:   &testutil.FakeProvider{},
		classifier: &testutil.FakeClassifier{Decision: router.DecisionChat},
	}
	rt := router.New(f.classifier, nil)
	f.controller = NewController(f.store, rt, f.provider, retrieval.PlanContextProvider{}, nil)
	f.controller.now = func() time.Time {
		return time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	}
	return f
}

func (f *fixture) seedPlan(t *testing.T, threadID, topic string) {
	t.Helper()
	session := domain.NewSession(threadID)
	session.CurrentPlan = testutil.NewRoadmap(testutil.WithTopic(topic))
	require.NoError(t, f.store.Save(context.Background(), session))
}

func TestHandleTurn_FreshThreadCreatesPlan(t *testing.T) {
	f := newFixture(t)

	result, err := f.controller.HandleTurn(context.Background(), "t1", "I want to learn guitar in 4 weeks")
	require.NoError(t, err)

	assert.Equal(t, router.DecisionCreatePlan, result.Decision)
	assert.Equal(t, StatusSuccess, result.Status)
	require.NotNil(t, result.Plan)
	assert.Contains(t, result.Plan.Topic, "guitar")
	assert.GreaterOrEqual(t, len(result.Plan.Schedule), 1)
	assert.Equal(t, []string{"generate_plan"}, f.provider.Calls())
	assert.False(t, f.classifier.Called, "keyword-free first message skips the classifier only via the no-plan rule")

	stored := f.store.Stored("t1")
	require.NotNil(t, stored)
	assert.Equal(t, result.Plan, stored.CurrentPlan)
}

func TestHandleTurn_FollowUpFeedbackAdaptsPlan(t *testing.T) {
	f := newFixture(t)
	f.classifier.Decision = router.DecisionModifyPlan
	f.seedPlan(t, "t1", "Guitar")

	result, err := f.controller.HandleTurn(context.Background(), "t1", "week 1 is too hard")
	require.NoError(t, err)

	assert.Equal(t, router.DecisionModifyPlan, result.Decision)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, []string{"adapt_plan"}, f.provider.Calls())

	// The adapted roadmap replaces the plan wholesale.
	stored := f.store.Stored("t1")
	assert.Equal(t, result.Plan, stored.CurrentPlan)
	assert.Len(t, stored.CurrentPlan.Schedule, 3)
}

func TestHandleTurn_ModifyWithoutPlanDegradesToPlanning(t *testing.T) {
	f := newFixture(t)
	f.classifier.Decision = router.DecisionModifyPlan
	// Seed an empty session so the thread exists but carries no plan; the
	// router's no-plan rule is bypassed by forcing the decision directly.
	require.NoError(t, f.store.Save(context.Background(), domain.NewSession("t1")))

	session, err := f.store.Load(context.Background(), "t1")
	require.NoError(t, err)
	result := f.controller.execute(context.Background(), router.DecisionModifyPlan, session, "this is too hard")

	assert.Equal(t, []string{"generate_plan"}, f.provider.Calls())
	require.NotNil(t, session.CurrentPlan)
	assert.Equal(t, StatusSuccess, result.Status)
}

func TestHandleTurn_ChatDoesNotTouchPlan(t *testing.T) {
	f := newFixture(t)
	f.classifier.Decision = router.DecisionChat
	f.seedPlan(t, "t1", "Guitar")

	result, err := f.controller.HandleTurn(context.Background(), "t1", "what are barre chords?")
	require.NoError(t, err)

	assert.Equal(t, router.DecisionChat, result.Decision)
	assert.Equal(t, "You asked: what are barre chords?", result.Reply)
	assert.Equal(t, "Guitar", f.store.Stored("t1").CurrentPlan.Topic)
}

func TestHandleTurn_ChatReceivesRetrievedContext(t *testing.T) {
	f := newFixture(t)
	f.classifier.Decision = router.DecisionChat
	f.seedPlan(t, "t1", "Guitar")

	var gotHint string
	f.provider.GenerateChatReplyFunc = func(_ context.Context, _, hint string) (string, error) {
		gotHint = hint
		return "ok", nil
	}

	_, err := f.controller.HandleTurn(context.Background(), "t1", "what next?")
	require.NoError(t, err)
	assert.Contains(t, gotHint, "Guitar")
}

func TestHandleTurn_QuizUsesPlanTopic(t *testing.T) {
	f := newFixture(t)
	f.seedPlan(t, "t1", "Guitar")

	var gotTopic string
	f.provider.GenerateQuizFunc = func(_ context.Context, topic, _ string) (*domain.Quiz, error) {
		gotTopic = topic
		return testutil.NewQuiz(topic), nil
	}

	result, err := f.controller.HandleTurn(context.Background(), "t1", "quiz me")
	require.NoError(t, err)

	assert.Equal(t, router.DecisionQuiz, result.Decision)
	assert.Equal(t, "Guitar", gotTopic)
	require.NotNil(t, result.Quiz)

	// Quiz stays transient: the stored plan is untouched and no quiz
	// artifact is persisted beyond the history text.
	stored := f.store.Stored("t1")
	assert.Equal(t, "Guitar", stored.CurrentPlan.Topic)
	assert.Len(t, stored.History, 2)
}

func TestHandleTurn_QuizWithoutPlanUsesMessage(t *testing.T) {
	f := newFixture(t)

	var gotTopic string
	f.provider.GenerateQuizFunc = func(_ context.Context, topic, _ string) (*domain.Quiz, error) {
		gotTopic = topic
		return testutil.NewQuiz(topic), nil
	}

	_, err := f.controller.HandleTurn(context.Background(), "t1", "test me on goroutines")
	require.NoError(t, err)
	assert.Equal(t, "test me on goroutines", gotTopic)
}

func TestHandleTurn_VisualizeWithPlan(t *testing.T) {
	f := newFixture(t)
	f.seedPlan(t, "t1", "Guitar")

	result, err := f.controller.HandleTurn(context.Background(), "t1", "show me a diagram")
	require.NoError(t, err)

	assert.Equal(t, router.DecisionVisualize, result.Decision)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Contains(t, result.Diagram, "flowchart TD")
}

func TestHandleTurn_VisualizeWithoutPlanReturnsNotice(t *testing.T) {
	f := newFixture(t)
	// "diagram" keyword routes to visualize even on a fresh thread.
	result, err := f.controller.HandleTurn(context.Background(), "t1", "draw me a diagram")
	require.NoError(t, err)

	assert.Equal(t, router.DecisionVisualize, result.Decision)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Empty(t, result.Diagram)
	assert.Empty(t, f.provider.Calls(), "no strategy call without a plan to draw")
	assert.Contains(t, result.Reply, "no plan")
}

func TestHandleTurn_PlanFailureSubstitutesPlaceholderAndCommits(t *testing.T) {
	f := newFixture(t)
	f.provider.GeneratePlanFunc = func(context.Context, string) (*domain.Roadmap, error) {
		return nil, errors.New("model returned garbage")
	}

	result, err := f.controller.HandleTurn(context.Background(), "t1", "teach me knitting")
	require.NoError(t, err)

	assert.Equal(t, StatusError, result.Status)
	require.NotNil(t, result.Plan)
	assert.True(t, result.Plan.IsPlaceholder())

	// The turn still commits: the user's message is remembered.
	stored := f.store.Stored("t1")
	require.NotNil(t, stored)
	require.Len(t, stored.History, 2)
	assert.Equal(t, "teach me knitting", stored.History[0].Text)
	assert.True(t, stored.CurrentPlan.IsPlaceholder())
}

func TestHandleTurn_AdaptFailureKeepsExistingPlan(t *testing.T) {
	f := newFixture(t)
	f.classifier.Decision = router.DecisionModifyPlan
	f.seedPlan(t, "t1", "Guitar")
	f.provider.AdaptPlanFunc = func(context.Context, *domain.Roadmap, string) (*domain.Roadmap, error) {
		return nil, errors.New("timeout")
	}

	result, err := f.controller.HandleTurn(context.Background(), "t1", "make week 2 easier")
	require.NoError(t, err)

	assert.Equal(t, StatusError, result.Status)
	assert.Equal(t, "Guitar", f.store.Stored("t1").CurrentPlan.Topic)
	assert.False(t, f.store.Stored("t1").CurrentPlan.IsPlaceholder())
}

func TestHandleTurn_HistoryGrowsByTwoEvenOnStrategyFailure(t *testing.T) {
	f := newFixture(t)
	f.provider.GenerateQuizFunc = func(context.Context, string, string) (*domain.Quiz, error) {
		return nil, errors.New("invalid output")
	}

	_, err := f.controller.HandleTurn(context.Background(), "t1", "quiz me on chords")
	require.NoError(t, err)
	require.Len(t, f.store.Stored("t1").History, 2)

	_, err = f.controller.HandleTurn(context.Background(), "t1", "quiz me again")
	require.NoError(t, err)

	history := f.store.Stored("t1").History
	require.Len(t, history, 4)
	assert.Equal(t, domain.RoleUser, history[2].Role)
	assert.Equal(t, domain.RoleAssistant, history[3].Role)
}

func TestHandleTurn_StoreLoadFailureAbortsTurn(t *testing.T) {
	f := newFixture(t)
	f.store.FailLoad = errors.New("store unreachable")

	result, err := f.controller.HandleTurn(context.Background(), "t1", "hello")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, f.provider.Calls(), "no strategy call without a session")
}

func TestHandleTurn_StoreSaveFailureAbortsWithoutPartialCommit(t *testing.T) {
	f := newFixture(t)
	f.store.FailSave = errors.New("disk full")

	result, err := f.controller.HandleTurn(context.Background(), "t1", "I want to learn piano")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, f.store.Stored("t1"), "nothing persisted on save failure")
}

func TestHandleTurn_ClassifierFailureFallsBackToChat(t *testing.T) {
	f := newFixture(t)
	f.classifier.Err = errors.New("classifier down")
	f.seedPlan(t, "t1", "Guitar")

	result, err := f.controller.HandleTurn(context.Background(), "t1", "hmm, interesting")
	require.NoError(t, err)
	assert.Equal(t, router.DecisionChat, result.Decision)
	assert.Equal(t, StatusSuccess, result.Status)
}

func TestHandleTurn_ChatFailureStillCommits(t *testing.T) {
	f := newFixture(t)
	f.classifier.Decision = router.DecisionChat
	f.seedPlan(t, "t1", "Guitar")
	f.provider.GenerateChatReplyFunc = func(context.Context, string, string) (string, error) {
		return "", errors.New("empty reply")
	}

	result, err := f.controller.HandleTurn(context.Background(), "t1", "why is this so hard?")
	require.NoError(t, err)
	assert.Equal(t, StatusError, result.Status)
	assert.NotEmpty(t, result.Reply)
	assert.Len(t, f.store.Stored("t1").History, 2)
}

func TestHandleTurn_RetrievalFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	rt := router.New(f.classifier, nil)
	f.controller = NewController(f.store, rt, f.provider, failingRetriever{}, nil)

	result, err := f.controller.HandleTurn(context.Background(), "t1", "I want to learn piano")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, result.Status)
}

type failingRetriever struct{}

func (failingRetriever) Context(context.Context, string, *domain.Session) (string, error) {
	return "", errors.New("index offline")
}

package testutil

import (
	"context"
	"sync"

	"pathfinder/internal/domain"
	"pathfinder/internal/router"
)

// FakeProvider is a deterministic strategy provider for tests. Each
// operation delegates to an optional func field; unset fields return a
// canned success so tests only wire what they assert on.
type FakeProvider struct {
	GeneratePlanFunc      func(ctx context.Context, goal string) (*domain.Roadmap, error)
	AdaptPlanFunc         func(ctx context.Context, plan *domain.Roadmap, feedback string) (*domain.Roadmap, error)
	GenerateQuizFunc      func(ctx context.Context, topic, contextHint string) (*domain.Quiz, error)
	GenerateChatReplyFunc func(ctx context.Context, message, contextHint string) (string, error)
	GenerateDiagramFunc   func(ctx context.Context, plan *domain.Roadmap) (string, error)

	mu    sync.Mutex
	calls []string
}

func (f *FakeProvider) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
}

// Calls returns the operations invoked so far, in order.
func (f *FakeProvider) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeProvider) GeneratePlan(ctx context.Context, goal string) (*domain.Roadmap, error) {
	f.record("generate_plan")
	if f.GeneratePlanFunc != nil {
		return f.GeneratePlanFunc(ctx, goal)
	}
	return NewRoadmap(WithTopic(goal)), nil
}

func (f *FakeProvider) AdaptPlan(ctx context.Context, plan *domain.Roadmap, feedback string) (*domain.Roadmap, error) {
	f.record("adapt_plan")
	if f.AdaptPlanFunc != nil {
		return f.AdaptPlanFunc(ctx, plan, feedback)
	}
	adapted := NewRoadmap(WithTopic(plan.Topic), WithWeeks(len(plan.Schedule)+1))
	return adapted, nil
}

func (f *FakeProvider) GenerateQuiz(ctx context.Context, topic, contextHint string) (*domain.Quiz, error) {
	f.record("generate_quiz")
	if f.GenerateQuizFunc != nil {
		return f.GenerateQuizFunc(ctx, topic, contextHint)
	}
	return NewQuiz(topic), nil
}

func (f *FakeProvider) GenerateChatReply(ctx context.Context, message, contextHint string) (string, error) {
	f.record("generate_chat_reply")
	if f.GenerateChatReplyFunc != nil {
		return f.GenerateChatReplyFunc(ctx, message, contextHint)
	}
	return "You asked: " + message, nil
}

func (f *FakeProvider) GenerateDiagram(ctx context.Context, plan *domain.Roadmap) (string, error) {
	f.record("generate_diagram")
	if f.GenerateDiagramFunc != nil {
		return f.GenerateDiagramFunc(ctx, plan)
	}
	return "flowchart TD\n    start([" + plan.Topic + "])", nil
}

// FakeClassifier returns a fixed decision for ambiguous messages.
type FakeClassifier struct {
	Decision router.Decision
	Err      error
	Called   bool
}

func (f *FakeClassifier) Classify(context.Context, string) (router.Decision, error) {
	f.Called = true
	return f.Decision, f.Err
}

// MemoryStore is an in-process SessionStore with get-or-create load and
// last-writer-wins save. Sessions are deep-copied on both sides so tests
// observe only what was committed.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session

	FailLoad error
	FailSave error
	Saves    int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.Session)}
}

func (m *MemoryStore) Load(_ context.Context, threadID string) (*domain.Session, error) {
	if m.FailLoad != nil {
		return nil, m.FailLoad
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[threadID]; ok {
		return copySession(s), nil
	}
	return domain.NewSession(threadID), nil
}

func (m *MemoryStore) Save(_ context.Context, session *domain.Session) error {
	if m.FailSave != nil {
		return m.FailSave
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ThreadID] = copySession(session)
	m.Saves++
	return nil
}

// Stored returns the committed session for a thread, or nil.
func (m *MemoryStore) Stored(threadID string) *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[threadID]; ok {
		return copySession(s)
	}
	return nil
}

func copySession(s *domain.Session) *domain.Session {
	out := domain.NewSession(s.ThreadID)
	if s.CurrentPlan != nil {
		plan := *s.CurrentPlan
		plan.Schedule = append([]domain.WeekModule(nil), s.CurrentPlan.Schedule...)
		out.CurrentPlan = &plan
	}
	out.History = append([]domain.Turn(nil), s.History...)
	return out
}

package dialogue

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pathfinder/internal/domain"
	"pathfinder/internal/repository"
	"pathfinder/internal/retrieval"
	"pathfinder/internal/router"
	"pathfinder/internal/strategy"
)

// Status marks the outcome of a turn as seen by the caller. Strategy
// failures still commit; only persistence failures abort the turn.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// TurnResult is the shaped outcome of one dialogue turn.
type TurnResult struct {
	Reply    string
	ThreadID string
	Plan     *domain.Roadmap
	Quiz     *domain.Quiz
	Diagram  string
	Status   Status
	Decision router.Decision
}

// Controller runs one conversation turn end to end: load the session,
// route the message, invoke the chosen generation strategy, commit the
// exchange to history, and persist. The machine restarts fresh each turn.
type Controller struct {
	store     repository.SessionStore
	router    *router.Router
	provider  strategy.Provider
	retriever retrieval.ContextProvider
	log       *zap.Logger
	now       func() time.Time
}

// NewController wires a Controller. A nil retriever disables context
// augmentation; a nil logger discards logs.
func NewController(store repository.SessionStore, rt *router.Router, provider strategy.Provider, retriever retrieval.ContextProvider, log *zap.Logger) *Controller {
	if retriever == nil {
		retriever = retrieval.NoopProvider{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		store:     store,
		router:    rt,
		provider:  provider,
		retriever: retriever,
		log:       log,
		now:       time.Now,
	}
}

// HandleTurn processes one user message for the given thread. Generation
// failures degrade into an error-status result that still commits both
// history turns; a store failure returns an error and leaves the
// persisted session untouched.
func (c *Controller) HandleTurn(ctx context.Context, threadID, message string) (*TurnResult, error) {
	session, err := c.store.Load(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", threadID, err)
	}

	hint, err := c.retriever.Context(ctx, message, session)
	if err != nil {
		c.log.Warn("context retrieval failed, continuing without augmentation",
			zap.String("thread_id", threadID), zap.Error(err))
		hint = ""
	}
	session.LastContext = hint

	decision := c.router.Classify(ctx, message, session.HasPlan())
	c.log.Info("turn routed",
		zap.String("thread_id", threadID),
		zap.String("decision", string(decision)),
		zap.Bool("has_plan", session.HasPlan()))

	result := c.execute(ctx, decision, session, message)
	result.ThreadID = threadID

	now := c.now()
	session.AppendTurn(domain.RoleUser, message, now)
	session.AppendTurn(domain.RoleAssistant, result.Reply, now)

	if err := c.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("saving session %s: %w", threadID, err)
	}

	return result, nil
}

// execute dispatches the routed decision to its strategy and shapes the
// result. Every path returns a committed-ready result; strategy errors
// are absorbed here per the degradation rules.
func (c *Controller) execute(ctx context.Context, decision router.Decision, session *domain.Session, message string) *TurnResult {
	switch decision {
	case router.DecisionCreatePlan:
		return c.runPlanning(ctx, decision, session, message)
	case router.DecisionModifyPlan:
		if !session.HasPlan() {
			// Adapting without a plan is meaningless; treat the message as
			// a fresh goal instead of failing the turn.
			c.log.Warn("modify_plan routed without a plan, degrading to planning",
				zap.String("thread_id", session.ThreadID))
			return c.runPlanning(ctx, decision, session, message)
		}
		return c.runAdapting(ctx, decision, session, message)
	case router.DecisionQuiz:
		return c.runQuizzing(ctx, decision, session, message)
	case router.DecisionVisualize:
		return c.runVisualizing(ctx, decision, session)
	default:
		return c.runChatting(ctx, decision, session, message)
	}
}

func (c *Controller) runPlanning(ctx context.Context, decision router.Decision, session *domain.Session, message string) *TurnResult {
	plan, err := c.provider.GeneratePlan(ctx, message)
	if err != nil {
		c.log.Warn("plan generation failed", zap.String("thread_id", session.ThreadID), zap.Error(err))
		session.CurrentPlan = domain.PlaceholderRoadmap()
		return &TurnResult{
			Reply:    planFailureReply,
			Plan:     session.CurrentPlan,
			Status:   StatusError,
			Decision: decision,
		}
	}
	session.CurrentPlan = plan
	return &TurnResult{
		Reply:    renderPlanReply(plan, false),
		Plan:     plan,
		Status:   StatusSuccess,
		Decision: decision,
	}
}

func (c *Controller) runAdapting(ctx context.Context, decision router.Decision, session *domain.Session, message string) *TurnResult {
	plan, err := c.provider.AdaptPlan(ctx, session.CurrentPlan, message)
	if err != nil {
		// Keep the existing plan; replacing it with a placeholder would
		// destroy good state over a transient model failure.
		c.log.Warn("plan adaptation failed", zap.String("thread_id", session.ThreadID), zap.Error(err))
		return &TurnResult{
			Reply:    adaptFailureReply,
			Plan:     session.CurrentPlan,
			Status:   StatusError,
			Decision: decision,
		}
	}
	session.CurrentPlan = plan
	return &TurnResult{
		Reply:    renderPlanReply(plan, true),
		Plan:     plan,
		Status:   StatusSuccess,
		Decision: decision,
	}
}

func (c *Controller) runChatting(ctx context.Context, decision router.Decision, session *domain.Session, message string) *TurnResult {
	reply, err := c.provider.GenerateChatReply(ctx, message, session.LastContext)
	if err != nil {
		c.log.Warn("chat generation failed", zap.String("thread_id", session.ThreadID), zap.Error(err))
		return &TurnResult{
			Reply:    chatFailureReply,
			Plan:     session.CurrentPlan,
			Status:   StatusError,
			Decision: decision,
		}
	}
	return &TurnResult{
		Reply:    reply,
		Plan:     session.CurrentPlan,
		Status:   StatusSuccess,
		Decision: decision,
	}
}

func (c *Controller) runQuizzing(ctx context.Context, decision router.Decision, session *domain.Session, message string) *TurnResult {
	topic := session.PlanTopic()
	if topic == "" || session.CurrentPlan.IsPlaceholder() {
		topic = message
	}

	quiz, err := c.provider.GenerateQuiz(ctx, topic, session.LastContext)
	if err != nil {
		c.log.Warn("quiz generation failed", zap.String("thread_id", session.ThreadID), zap.Error(err))
		return &TurnResult{
			Reply:    quizFailureReply,
			Plan:     session.CurrentPlan,
			Status:   StatusError,
			Decision: decision,
		}
	}
	// Quizzes are transient: returned to the caller and recorded in
	// history, never merged into the plan.
	return &TurnResult{
		Reply:    renderQuizReply(quiz),
		Plan:     session.CurrentPlan,
		Quiz:     quiz,
		Status:   StatusSuccess,
		Decision: decision,
	}
}

func (c *Controller) runVisualizing(ctx context.Context, decision router.Decision, session *domain.Session) *TurnResult {
	if !session.HasPlan() || session.CurrentPlan.IsPlaceholder() {
		return &TurnResult{
			Reply:    noPlanToVisualizeReply,
			Plan:     session.CurrentPlan,
			Status:   StatusSuccess,
			Decision: decision,
		}
	}

	diagram, err := c.provider.GenerateDiagram(ctx, session.CurrentPlan)
	if err != nil {
		c.log.Warn("diagram generation failed", zap.String("thread_id", session.ThreadID), zap.Error(err))
		return &TurnResult{
			Reply:    diagramFailureReply,
			Plan:     session.CurrentPlan,
			Status:   StatusError,
			Decision: decision,
		}
	}
	return &TurnResult{
		Reply:    diagramReply,
		Plan:     session.CurrentPlan,
		Diagram:  diagram,
		Status:   StatusSuccess,
		Decision: decision,
	}
}

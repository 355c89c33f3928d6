package retrieval

import (
	"context"
	"fmt"
	"strings"

	"pathfinder/internal/domain"
)

// ContextProvider supplies an optional context string for a turn. The
// returned string augments generation prompts; an empty string means no
// augmentation. Failures must not abort a turn, so callers log and
// continue with an empty context.
type ContextProvider interface {
	Context(ctx context.Context, message string, session *domain.Session) (string, error)
}

// NoopProvider never augments.
type NoopProvider struct{}

func (NoopProvider) Context(context.Context, string, *domain.Session) (string, error) {
	return "", nil
}

// PlanContextProvider summarizes the session's current plan so chat and
// quiz generation stay grounded in what the learner is actually studying.
type PlanContextProvider struct{}

func (PlanContextProvider) Context(_ context.Context, _ string, session *domain.Session) (string, error) {
	if session == nil || session.CurrentPlan == nil || session.CurrentPlan.IsPlaceholder() {
		return "", nil
	}

	plan := session.CurrentPlan
	var b strings.Builder
	fmt.Fprintf(&b, "The learner is following a %d-week %s plan on %q.",
		len(plan.Schedule), strings.ToLower(string(plan.Difficulty)), plan.Topic)
	if len(plan.Schedule) > 0 {
		b.WriteString(" Weekly topics: ")
		topics := make([]string, 0, len(plan.Schedule))
		for _, week := range plan.Schedule {
			topics = append(topics, fmt.Sprintf("week %d: %s", week.WeekNumber, week.TopicDescription))
		}
		b.WriteString(strings.Join(topics, "; "))
		b.WriteString(".")
	}
	return b.String(), nil
}

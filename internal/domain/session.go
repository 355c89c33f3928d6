package domain

import "time"

// Turn is one entry in a session's conversation history.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Session is the per-thread persisted conversation state: the current
// plan (if any) plus the append-only turn history. LastContext is a
// transient retrieval hint and is never persisted.
type Session struct {
	ThreadID    string
	CurrentPlan *Roadmap
	History     []Turn
	LastContext string
}

// NewSession returns an empty session for the given thread id.
func NewSession(threadID string) *Session {
	return &Session{ThreadID: threadID}
}

// HasPlan reports whether the session holds a plan.
func (s *Session) HasPlan() bool {
	return s.CurrentPlan != nil
}

// AppendTurn records one exchange entry in the history.
func (s *Session) AppendTurn(role Role, text string, at time.Time) {
	s.History = append(s.History, Turn{Role: role, Text: text, CreatedAt: at})
}

// PlanTopic returns the current plan's topic, or "" when no plan exists.
func (s *Session) PlanTopic() string {
	if s.CurrentPlan == nil {
		return ""
	}
	return s.CurrentPlan.Topic
}

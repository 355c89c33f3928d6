package testutil

import (
	"fmt"
	"time"

	"pathfinder/internal/domain"
)

// RoadmapOption customizes a fixture roadmap.
type RoadmapOption func(*domain.Roadmap)

func WithTopic(topic string) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Topic = topic
	}
}

func WithDifficulty(d domain.Difficulty) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Difficulty = d
	}
}

func WithWeeks(n int) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.Schedule = make([]domain.WeekModule, 0, n)
		for i := 1; i <= n; i++ {
			r.Schedule = append(r.Schedule, domain.WeekModule{
				WeekNumber:       i,
				TopicDescription: fmt.Sprintf("Module %d", i),
				DailyTasks:       []string{"Read the material", "Do the exercises"},
				Resources:        []string{"https://example.com/docs"},
			})
		}
	}
}

// NewRoadmap returns a valid two-week roadmap fixture.
func NewRoadmap(opts ...RoadmapOption) *domain.Roadmap {
	r := &domain.Roadmap{
		Topic:      "Go Programming",
		Difficulty: domain.DifficultyBeginner,
	}
	WithWeeks(2)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewQuiz returns a valid single-question quiz fixture.
func NewQuiz(topic string) *domain.Quiz {
	return &domain.Quiz{
		Topic: topic,
		Questions: []domain.Question{
			{
				Text:          "Which keyword declares a variable?",
				Options:       []string{"var", "let", "def", "dim"},
				CorrectAnswer: "var",
				Explanation:   "Go uses var (or := inside functions).",
			},
		},
	}
}

// NewSessionWithHistory returns a session carrying n alternating turns.
func NewSessionWithHistory(threadID string, n int) *domain.Session {
	s := domain.NewSession(threadID)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		s.AppendTurn(role, fmt.Sprintf("turn %d", i+1), base.Add(time.Duration(i)*time.Minute))
	}
	return s
}

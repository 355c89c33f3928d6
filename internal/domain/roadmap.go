package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// weekPrefixPattern matches redundant "Week N:" / "Week N -" prefixes that
// models tend to prepend to week topics even when told not to.
var weekPrefixPattern = regexp.MustCompile(`(?i)^week\s*\d+\s*[:\-–]\s*`)

// Roadmap is a structured multi-week study plan generated for a user goal.
type Roadmap struct {
	Topic      string       `json:"topic"`
	Difficulty Difficulty   `json:"difficulty"`
	Schedule   []WeekModule `json:"schedule"`
}

// WeekModule is one week of a roadmap.
type WeekModule struct {
	WeekNumber       int      `json:"week_number"`
	TopicDescription string   `json:"topic_description"`
	DailyTasks       []string `json:"daily_tasks"`
	Resources        []string `json:"resources"`
}

// Validate checks the roadmap invariants: non-empty schedule, positive
// week numbers in strictly ascending order, and non-empty daily tasks.
func (r *Roadmap) Validate() error {
	if r.Topic == "" {
		return fmt.Errorf("roadmap topic is required")
	}
	if len(r.Schedule) == 0 {
		return fmt.Errorf("roadmap schedule must not be empty")
	}
	prev := 0
	for i, week := range r.Schedule {
		if week.WeekNumber <= 0 {
			return fmt.Errorf("schedule[%d]: week_number must be positive, got %d", i, week.WeekNumber)
		}
		if week.WeekNumber <= prev {
			return fmt.Errorf("schedule[%d]: week_number %d not ascending (previous %d)", i, week.WeekNumber, prev)
		}
		prev = week.WeekNumber
		if len(week.DailyTasks) == 0 {
			return fmt.Errorf("schedule[%d]: daily_tasks must not be empty", i)
		}
	}
	return nil
}

// Normalize cleans up model output in place: clamps the difficulty to the
// known set and strips redundant "Week N:" prefixes from topic descriptions.
func (r *Roadmap) Normalize() {
	r.Difficulty = NormalizeDifficulty(string(r.Difficulty))
	for i := range r.Schedule {
		r.Schedule[i].TopicDescription = StripWeekPrefix(r.Schedule[i].TopicDescription)
	}
}

// StripWeekPrefix removes a leading "Week N:" style prefix from a topic
// description. The week number already lives in WeekNumber.
func StripWeekPrefix(topic string) string {
	return strings.TrimSpace(weekPrefixPattern.ReplaceAllString(topic, ""))
}

// PlaceholderRoadmap returns the well-formed error substitute used when
// plan generation fails: the session keeps a plan value, but it is clearly
// marked and carries no schedule.
func PlaceholderRoadmap() *Roadmap {
	return &Roadmap{
		Topic:      "Error",
		Difficulty: DifficultyBeginner,
		Schedule:   []WeekModule{},
	}
}

// IsPlaceholder reports whether the roadmap is the error substitute.
// Safe on a nil receiver.
func (r *Roadmap) IsPlaceholder() bool {
	return r != nil && r.Topic == "Error" && len(r.Schedule) == 0
}

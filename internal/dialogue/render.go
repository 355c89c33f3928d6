package dialogue

import (
	"fmt"
	"strings"

	"pathfinder/internal/domain"
)

// User-visible degradation notices. Strategy failures never surface as
// transport faults, only as these replies with an error status.
const (
	planFailureReply = "I couldn't put together a plan for that right now. " +
		"Please try rephrasing your goal, or try again in a moment."
	adaptFailureReply = "I couldn't update your plan just now, so I've kept the " +
		"current version unchanged. Please try again in a moment."
	chatFailureReply = "I'm having trouble answering right now. Please try again in a moment."
	quizFailureReply = "I couldn't generate a quiz right now. Please try again in a moment."
	diagramFailureReply = "I couldn't draw your plan right now. Please try again in a moment."

	noPlanToVisualizeReply = "There's no plan to draw yet. Tell me what you'd like " +
		"to learn and I'll create one first."
	diagramReply = "Here's a diagram of your current plan."
)

// renderPlanReply summarizes a roadmap as the assistant's reply text.
func renderPlanReply(plan *domain.Roadmap, adapted bool) string {
	var b strings.Builder
	if adapted {
		fmt.Fprintf(&b, "I've updated your plan for %s.", plan.Topic)
	} else {
		fmt.Fprintf(&b, "Here's your %d-week %s plan for %s.",
			len(plan.Schedule), strings.ToLower(string(plan.Difficulty)), plan.Topic)
	}
	for _, week := range plan.Schedule {
		fmt.Fprintf(&b, "\nWeek %d: %s", week.WeekNumber, week.TopicDescription)
	}
	return b.String()
}

// renderQuizReply flattens a quiz into readable reply text. The structured
// quiz travels separately in the response; this text is what history keeps.
func renderQuizReply(quiz *domain.Quiz) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's a %d-question quiz on %s.", len(quiz.Questions), quiz.Topic)
	for i, q := range quiz.Questions {
		fmt.Fprintf(&b, "\n\n%d. %s", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "\n   %c) %s", 'A'+j, opt)
		}
	}
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"

	"pathfinder/internal/domain"
)

// FormatRoadmap renders a roadmap as a week-by-week tree for terminal output.
func FormatRoadmap(plan *domain.Roadmap) string {
	if plan == nil {
		return Dim("No plan yet.") + "\n"
	}
	if plan.IsPlaceholder() {
		return StyleRed.Render("Plan generation failed; no usable plan is stored.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header(plan.Topic))
	b.WriteString("\n")
	b.WriteString(DifficultyStyle(plan.Difficulty).Render(string(plan.Difficulty)))
	b.WriteString(Dim(fmt.Sprintf("  ·  %d weeks\n\n", len(plan.Schedule))))

	for i, week := range plan.Schedule {
		b.WriteString(Bold(fmt.Sprintf("Week %d", week.WeekNumber)))
		b.WriteString("  " + week.TopicDescription + "\n")

		for j, task := range week.DailyTasks {
			branch := "├─"
			if j == len(week.DailyTasks)-1 && len(week.Resources) == 0 {
				branch = "└─"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim(branch), task))
		}
		if len(week.Resources) > 0 {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				Dim("└─"), Dim("search:"), StyleBlue.Render(strings.Join(week.Resources, ", "))))
		}
		if i < len(plan.Schedule)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatTurnReply renders a turn's reply text with any structured artifacts.
func FormatTurnReply(reply string, plan *domain.Roadmap, diagram string) string {
	var b strings.Builder
	b.WriteString(StyleFg.Render(reply))
	b.WriteString("\n")
	if plan != nil && !plan.IsPlaceholder() {
		b.WriteString("\n")
		b.WriteString(FormatRoadmap(plan))
	}
	if diagram != "" {
		b.WriteString("\n")
		b.WriteString(RenderBox("mermaid", diagram))
		b.WriteString("\n")
	}
	return b.String()
}

package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pathfinder/internal/cli/formatter"
	"pathfinder/internal/dialogue"
)

// turnDoneMsg carries the outcome of a completed dialogue turn.
type turnDoneMsg struct {
	result *dialogue.TurnResult
	err    error
}

// chatModel is the bubbletea Model for the interactive chat REPL. One
// turn is in flight at a time; input is disabled while waiting.
type chatModel struct {
	input    textinput.Model
	app      *App
	threadID string
	waiting  bool
	quitting bool
}

func newChatModel(app *App, threadID string) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "> "
	ti.Placeholder = "What do you want to learn?"
	ti.CharLimit = 500

	return chatModel{
		input:    ti,
		app:      app,
		threadID: threadID,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.Header("PathFinder")+"\n"+
			formatter.Dim("Describe a learning goal. Type /quit to exit.")),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.waiting {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}

	case turnDoneMsg:
		m.waiting = false
		m.input.Focus()
		if msg.err != nil {
			return m, tea.Println(formatter.StyleRed.Render("error: " + msg.err.Error()))
		}
		out := formatter.FormatTurnReply(msg.result.Reply, msg.result.Plan, msg.result.Diagram)
		if msg.result.Quiz != nil {
			out += formatter.FormatQuizIntro(msg.result.Quiz) +
				formatter.Dim("Run `pathfinder quiz` for an interactive round.\n")
		}
		return m, tea.Println(out)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	message := strings.TrimSpace(m.input.Value())
	if message == "" {
		return m, nil
	}
	if message == "/quit" || message == "/exit" {
		m.quitting = true
		return m, tea.Quit
	}

	m.input.SetValue("")
	m.input.Blur()
	m.waiting = true

	echo := tea.Println(formatter.Bold("you") + formatter.Dim(" · ") + message)
	turn := func() tea.Msg {
		result, err := m.app.Controller.HandleTurn(context.Background(), m.threadID, message)
		return turnDoneMsg{result: result, err: err}
	}
	return m, tea.Batch(echo, turn)
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	if m.waiting {
		return formatter.Dim("thinking...")
	}
	return m.input.View()
}

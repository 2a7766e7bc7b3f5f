// Package tui implements the interactive question-answering surface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dtongg03/Base-RAG/internal/service"
)

// QAPort is the TUI-facing subset of the pipeline.
type QAPort interface {
	Ask(ctx context.Context, question string, topK int) (*service.Reply, error)
}

// Model is the Bubble Tea model for the Q&A loop.
type Model struct {
	pipeline QAPort
	input    textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	ready    bool
}

// New creates a new TUI model instance. The summary line comes from the
// ingestion report and is shown under the header.
func New(pipeline QAPort, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question (exit/quit/q to leave)"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		pipeline: pipeline,
		input:    ti,
		viewport: vp,
		summary:  summary,
		status:   "Corpus indexed. Ask away.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := answerBoxStyle.GetFrameSize()
		_, qh := questionBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header+summary, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			if isExitWord(question) {
				return m, tea.Quit
			}
			reply, err := m.pipeline.Ask(context.Background(), question, 0)
			if err != nil {
				m.status = "Error: " + err.Error()
				return m, nil
			}
			m.status = fmt.Sprintf("Answered %q", question)
			m.viewport.SetContent(renderReply(reply))
			m.viewport.GotoTop()
			m.input.SetValue("")
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Classbot Q&A")
	summary := summaryStyle.Render(m.summary)
	body := answerBoxStyle.Render(m.viewport.View())
	input := questionBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + body + "\n" + input + "\n" + status
}

// isExitWord reports whether the input is one of the exit keywords.
func isExitWord(s string) bool {
	switch strings.ToLower(s) {
	case "exit", "quit", "q":
		return true
	}
	return false
}

func renderReply(reply *service.Reply) string {
	answer := answerStyle.Render(reply.Answer)
	if reply.Context == "" {
		return answer
	}
	divider := dividerStyle.Render("retrieved context")
	return answer + "\n\n" + divider + "\n" + reply.Context
}

var (
	answerBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	answerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	summaryStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dividerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Underline(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

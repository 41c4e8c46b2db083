// ABOUTME: Bubbletea model for the encoder progress TUI
// ABOUTME: Holds job state and renders progress with lipgloss styles
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

// Model represents the TUI state
type Model struct {
	// Job
	jobID  string
	input  string
	output string
	format string

	// Progress
	written int
	total   int
	segment string
	row     int
	elapsed time.Duration

	// Result
	done     bool
	err      error
	quitting bool

	quitChan chan struct{}

	width  int
	height int
}

// StatusMsg updates TUI state. Zero fields leave the current value alone.
type StatusMsg struct {
	JobID   string
	Input   string
	Output  string
	Format  string
	Written int
	Total   int
	Segment string
	Row     int
	Elapsed time.Duration
}

// DoneMsg marks the job as finished
type DoneMsg struct {
	Err error
}

type tickMsg time.Time

// NewModel creates a new TUI model. quitChan may be nil.
func NewModel(quitChan chan struct{}) Model {
	return Model{
		row:      -1,
		quitChan: quitChan,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickEvery()
}

func tickEvery() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tickEvery()
	case StatusMsg:
		m.applyStatus(msg)
	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		if m.quitChan != nil {
			select {
			case m.quitChan <- struct{}{}:
			default:
			}
		}
		return m, tea.Quit
	}
	return m, nil
}

// applyStatus updates model from status message
func (m *Model) applyStatus(msg StatusMsg) {
	if msg.JobID != "" {
		m.jobID = msg.JobID
	}
	if msg.Input != "" {
		m.input = msg.Input
	}
	if msg.Output != "" {
		m.output = msg.Output
	}
	if msg.Format != "" {
		m.format = msg.Format
	}
	if msg.Total != 0 {
		m.total = msg.Total
	}
	if msg.Written != 0 {
		m.written = msg.Written
	}
	if msg.Segment != "" {
		m.segment = msg.Segment
		m.row = msg.Row
	}
	if msg.Elapsed != 0 {
		m.elapsed = msg.Elapsed
	}
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Cancelling...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("Robot36 Encoder"))
	b.WriteString("\n\n")

	field := func(name, value string) {
		b.WriteString(headerStyle.Render(name))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	field("Job:    ", m.jobID)
	field("Input:  ", truncate(m.input, 60))
	field("Output: ", truncate(m.output, 60))
	field("Format: ", m.format)
	b.WriteString("\n")

	b.WriteString(barStyle.Render(renderBar(m.written, m.total, barWidth)))
	b.WriteString(valueStyle.Render(fmt.Sprintf(" %5.1f%%", m.percent())))
	b.WriteString("\n")
	field("Samples: ", fmt.Sprintf("%d / %d", m.written, m.total))
	field("Section: ", m.section())
	field("Elapsed: ", m.elapsed.Round(100*time.Millisecond).String())
	b.WriteString("\n")

	switch {
	case m.done && m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("Failed: " + m.err.Error()))
		b.WriteString("\n")
	case m.done:
		b.WriteString(headerStyle.Render("Done"))
		b.WriteString("\n")
	default:
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press 'q' or Ctrl+C to cancel"))
	}

	return b.String()
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return 100 * float64(m.written) / float64(m.total)
}

func (m Model) section() string {
	if m.segment == "" {
		return "-"
	}
	if m.row < 0 {
		return m.segment
	}
	return fmt.Sprintf("%s (line %d)", m.segment, m.row)
}

func renderBar(value, max, width int) string {
	filled := 0
	if max > 0 {
		filled = value * width / max
	}
	filled = min(filled, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

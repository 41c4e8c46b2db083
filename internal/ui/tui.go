// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program that shows encode progress
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TUI manages the progress display
type TUI struct {
	program  *tea.Program
	updates  chan StatusMsg
	quitChan chan struct{}
}

// New creates a TUI. The program is created here so Update and Done can be
// called before Run starts.
func New() *TUI {
	t := &TUI{
		updates:  make(chan StatusMsg, 16),
		quitChan: make(chan struct{}, 1),
	}
	t.program = tea.NewProgram(NewModel(t.quitChan), tea.WithAltScreen())
	return t
}

// Run blocks until the job finishes or the user quits
func (t *TUI) Run() error {
	go func() {
		for status := range t.updates {
			t.program.Send(status)
		}
	}()

	_, err := t.program.Run()
	return err
}

// Update sends a status update to the TUI
func (t *TUI) Update(status StatusMsg) {
	select {
	case t.updates <- status:
	default:
		// Drop rather than stall the encoder
	}
}

// Done reports the job result and lets the program exit
func (t *TUI) Done(err error) {
	t.program.Send(DoneMsg{Err: err})
}

// QuitChan signals when the user asked to cancel
func (t *TUI) QuitChan() <-chan struct{} {
	return t.quitChan
}

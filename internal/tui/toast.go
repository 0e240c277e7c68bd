package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/basket/internal/cart"
)

// toast is the notification panel. It is the controller's presenter and
// is shared by pointer between copies of the bubbletea model.
type toast struct {
	visible bool
	summary cart.Summary
	err     error
	seq     int
}

func (t *toast) Present(s cart.Summary, err error) {
	t.visible = true
	t.summary = s
	t.err = err
	t.seq++
}

func (t *toast) hide() {
	t.visible = false
	t.err = nil
}

// hideToastMsg closes the toast unless it was presented again since.
type hideToastMsg struct{ seq int }

func (t *toast) scheduleHide(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return nil
	}
	seq := t.seq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return hideToastMsg{seq: seq}
	})
}

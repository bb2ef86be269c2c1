package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered by the Bubble Tea runtime when a scheduled delay elapses.
type FireMsg struct {
	Token Token
}

// Tea schedules callbacks as tea.Tick commands. Schedule, Cancel and Handle
// must be called from the program's Update loop.
type Tea struct {
	last    Token
	pending map[Token]func()
	outbox  []tea.Cmd
}

// NewTea returns an empty Tea scheduler.
func NewTea() *Tea {
	return &Tea{pending: map[Token]func(){}}
}

// Schedule implements Scheduler. The tick command is queued until Flush.
func (t *Tea) Schedule(delay time.Duration, fn func()) Token {
	t.last++
	tok := t.last
	t.pending[tok] = fn
	t.outbox = append(t.outbox, tea.Tick(delay, func(time.Time) tea.Msg {
		return FireMsg{Token: tok}
	}))
	return tok
}

// Cancel implements Scheduler. A tick already in flight is ignored by Handle.
func (t *Tea) Cancel(tok Token) {
	delete(t.pending, tok)
}

// Handle runs the callback for msg if it is still live.
func (t *Tea) Handle(msg FireMsg) {
	fn, ok := t.pending[msg.Token]
	if !ok {
		return
	}
	delete(t.pending, msg.Token)
	fn()
}

// Pending returns the number of live callbacks.
func (t *Tea) Pending() int {
	return len(t.pending)
}

// Flush returns the queued tick commands as one batch, or nil.
func (t *Tea) Flush() tea.Cmd {
	if len(t.outbox) == 0 {
		return nil
	}
	cmds := t.outbox
	t.outbox = nil
	return tea.Batch(cmds...)
}

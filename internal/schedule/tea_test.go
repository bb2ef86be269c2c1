package schedule

import (
	"testing"
	"time"
)

func TestTeaHandleRunsLiveCallback(t *testing.T) {
	s := NewTea()
	fired := 0
	tok := s.Schedule(time.Millisecond, func() { fired++ })
	if s.Flush() == nil {
		t.Fatalf("expected a queued tick command")
	}
	if s.Flush() != nil {
		t.Fatalf("expected outbox to be empty after flush")
	}
	s.Handle(FireMsg{Token: tok})
	s.Handle(FireMsg{Token: tok})
	if fired != 1 {
		t.Fatalf("expected callback to fire once, got %d", fired)
	}
}

func TestTeaIgnoresStaleTick(t *testing.T) {
	s := NewTea()
	fired := false
	tok := s.Schedule(time.Millisecond, func() { fired = true })
	s.Cancel(tok)
	s.Handle(FireMsg{Token: tok})
	if fired {
		t.Fatalf("cancelled callback fired")
	}
	if s.Pending() != 0 {
		t.Fatalf("expected no pending callbacks, got %d", s.Pending())
	}
}

func TestTeaTickDeliversFireMsg(t *testing.T) {
	s := NewTea()
	tok := s.Schedule(time.Millisecond, func() {})
	cmd := s.outbox[0]
	msg, ok := cmd().(FireMsg)
	if !ok {
		t.Fatalf("expected FireMsg")
	}
	if msg.Token != tok {
		t.Fatalf("expected token %d, got %d", tok, msg.Token)
	}
}

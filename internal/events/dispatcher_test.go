package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher_PublishInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventSelectionChanged, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("first failed")
	})
	d.Subscribe(EventSelectionChanged, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventSessionClosed, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventSelectionChanged, "s1", nil))
	if err == nil || err.Error() != "first failed" {
		t.Errorf("expected first handler error, got %v", err)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(EventSessionOpened, "s1", nil)
	if e.ID == "" || e.Timestamp.IsZero() || e.SessionID != "s1" {
		t.Errorf("unexpected event %+v", e)
	}
}

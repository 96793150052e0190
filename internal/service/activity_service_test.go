package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/clinicops/notes-dashboard/internal/events"
	"github.com/clinicops/notes-dashboard/internal/observability"
)

func TestActivityService_LogsSelectionChanges(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	NewActivityService(dispatcher, zap.New(core), observability.NewMetrics()).RegisterHandlers()

	ctx := context.Background()
	_ = dispatcher.Publish(ctx, events.NewEvent(events.EventSessionOpened, "s1", nil))
	_ = dispatcher.Publish(ctx, events.NewEvent(events.EventSelectionChanged, "s1", events.SelectionChangedPayload{
		Action:        events.ActionToggleDepartment,
		TargetID:      "dept-1",
		PrunedDoctors: []string{"dr-2"},
	}))
	_ = dispatcher.Publish(ctx, events.NewEvent(events.EventSessionClosed, "s1", events.SessionClosedPayload{Reason: "closed"}))

	if logs.Len() != 3 {
		t.Fatalf("expected 3 log entries, got %d", logs.Len())
	}
	entry := logs.FilterMessage("SelectionChanged").All()
	if len(entry) != 1 {
		t.Fatalf("expected one SelectionChanged entry")
	}
	fields := entry[0].ContextMap()
	if fields["action"] != "toggle_department" || fields["target_id"] != "dept-1" {
		t.Errorf("unexpected fields %v", fields)
	}
	if _, ok := fields["pruned_doctors"]; !ok {
		t.Error("expected pruned doctors to be logged")
	}
}

func TestActivityService_NilDispatcher(t *testing.T) {
	NewActivityService(nil, zap.NewNop(), nil).RegisterHandlers()
}

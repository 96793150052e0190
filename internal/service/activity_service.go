package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/clinicops/notes-dashboard/internal/events"
	"github.com/clinicops/notes-dashboard/internal/observability"
)

// ActivityService records dashboard activity from domain events.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventSessionOpened, a.handleSessionOpened)
	a.dispatcher.Subscribe(events.EventSelectionChanged, a.handleSelectionChanged)
	a.dispatcher.Subscribe(events.EventSessionClosed, a.handleSessionClosed)
}

func (a *ActivityService) handleSessionOpened(_ context.Context, event events.Event) error {
	a.metrics.SessionOpened()
	a.logger.Info("SessionOpened", zap.String("session_id", event.SessionID))
	return nil
}

func (a *ActivityService) handleSelectionChanged(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.SelectionChangedPayload)
	if !ok {
		a.logger.Warn("SelectionChanged without payload", zap.String("session_id", event.SessionID))
		return nil
	}
	a.metrics.RecordSelectionChange(string(payload.Action))

	fields := []zap.Field{
		zap.String("session_id", event.SessionID),
		zap.String("action", string(payload.Action)),
		zap.Strings("departments", payload.DepartmentIDs),
		zap.Strings("doctors", payload.DoctorIDs),
	}
	if payload.TargetID != "" {
		fields = append(fields, zap.String("target_id", payload.TargetID))
	}
	if len(payload.PrunedDoctors) > 0 {
		fields = append(fields, zap.Strings("pruned_doctors", payload.PrunedDoctors))
	}
	a.logger.Info("SelectionChanged", fields...)
	return nil
}

func (a *ActivityService) handleSessionClosed(_ context.Context, event events.Event) error {
	a.metrics.SessionClosed()
	reason := ""
	if payload, ok := event.Payload.(events.SessionClosedPayload); ok {
		reason = payload.Reason
	}
	a.logger.Info("SessionClosed", zap.String("session_id", event.SessionID), zap.String("reason", reason))
	return nil
}

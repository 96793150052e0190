package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/clinicops/notes-dashboard/internal/analytics"
	"github.com/clinicops/notes-dashboard/internal/cache"
	"github.com/clinicops/notes-dashboard/internal/catalog"
	"github.com/clinicops/notes-dashboard/internal/domain"
	"github.com/clinicops/notes-dashboard/internal/events"
	"github.com/clinicops/notes-dashboard/internal/selection"
	apperrors "github.com/clinicops/notes-dashboard/pkg/util/errorutil"
)

// DashboardService owns dashboard sessions and derives their views.
type DashboardService struct {
	catalog    *catalog.Catalog
	controller *selection.Controller
	memo       *cache.Memo
	sessions   *SessionStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// DashboardDependencies bundles collaborators for the dashboard service.
type DashboardDependencies struct {
	Catalog    *catalog.Catalog
	Memo       *cache.Memo
	Sessions   *SessionStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// SessionView is a session's selection together with its derived dashboard.
type SessionView struct {
	SessionID string
	Selection domain.Selection
	Dashboard analytics.Dashboard
}

// NewDashboardService constructs the service.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sessions := deps.Sessions
	if sessions == nil {
		sessions = NewSessionStore()
	}
	return &DashboardService{
		catalog:    deps.Catalog,
		controller: selection.NewController(deps.Catalog),
		memo:       deps.Memo,
		sessions:   sessions,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Catalog returns the roster the service runs on.
func (s *DashboardService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Preview derives the dashboard for an ad hoc selection without a session.
func (s *DashboardService) Preview(ctx context.Context, sel domain.Selection) SessionView {
	return SessionView{Selection: sel, Dashboard: s.derive(ctx, sel)}
}

// OpenSession starts a dashboard with no filters.
func (s *DashboardService) OpenSession(ctx context.Context) SessionView {
	sess := s.sessions.Create()
	s.publish(ctx, events.NewEvent(events.EventSessionOpened, sess.ID, nil))
	return s.view(ctx, sess)
}

// GetSession returns the current view of a session.
func (s *DashboardService) GetSession(ctx context.Context, id string) (SessionView, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return SessionView{}, sessionNotFound(id)
	}
	return s.view(ctx, sess), nil
}

// ToggleDepartment applies the department toggle to a session.
func (s *DashboardService) ToggleDepartment(ctx context.Context, sessionID, departmentID string) (SessionView, error) {
	return s.apply(ctx, sessionID, events.ActionToggleDepartment, departmentID, func(sel domain.Selection) domain.Selection {
		return s.controller.ToggleDepartment(sel, departmentID)
	})
}

// ToggleDoctor applies the doctor toggle to a session.
func (s *DashboardService) ToggleDoctor(ctx context.Context, sessionID, doctorID string) (SessionView, error) {
	return s.apply(ctx, sessionID, events.ActionToggleDoctor, doctorID, func(sel domain.Selection) domain.Selection {
		return s.controller.ToggleDoctor(sel, doctorID)
	})
}

// ClearDepartments drops every filter of a session.
func (s *DashboardService) ClearDepartments(ctx context.Context, sessionID string) (SessionView, error) {
	return s.apply(ctx, sessionID, events.ActionClearDepartments, "", s.controller.ClearDepartments)
}

// ClearDoctors drops the doctor filter of a session.
func (s *DashboardService) ClearDoctors(ctx context.Context, sessionID string) (SessionView, error) {
	return s.apply(ctx, sessionID, events.ActionClearDoctors, "", s.controller.ClearDoctors)
}

// CloseSession ends a session.
func (s *DashboardService) CloseSession(ctx context.Context, sessionID string) error {
	if !s.sessions.Delete(sessionID) {
		return sessionNotFound(sessionID)
	}
	s.publish(ctx, events.NewEvent(events.EventSessionClosed, sessionID, events.SessionClosedPayload{Reason: "closed"}))
	return nil
}

// ExpireIdleSessions ends sessions untouched for longer than ttl and returns how many.
func (s *DashboardService) ExpireIdleSessions(ctx context.Context, ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	expired := s.sessions.ExpireIdle(time.Now().Add(-ttl))
	for _, id := range expired {
		s.publish(ctx, events.NewEvent(events.EventSessionClosed, id, events.SessionClosedPayload{Reason: "expired"}))
	}
	return len(expired)
}

// OpenSessions returns the number of live sessions.
func (s *DashboardService) OpenSessions() int {
	return s.sessions.Len()
}

func (s *DashboardService) apply(ctx context.Context, sessionID string, action events.SelectionAction, target string, fn func(domain.Selection) domain.Selection) (SessionView, error) {
	var before domain.Selection
	sess, ok := s.sessions.Update(sessionID, func(sel domain.Selection) domain.Selection {
		before = sel
		return fn(sel)
	})
	if !ok {
		return SessionView{}, sessionNotFound(sessionID)
	}

	s.publish(ctx, events.NewEvent(events.EventSelectionChanged, sess.ID, events.SelectionChangedPayload{
		Action:        action,
		TargetID:      target,
		DepartmentIDs: sess.Selection.Departments.IDs(),
		DoctorIDs:     sess.Selection.Doctors.IDs(),
		PrunedDoctors: dropped(before.Doctors, sess.Selection.Doctors),
	}))
	return s.view(ctx, sess), nil
}

func (s *DashboardService) view(ctx context.Context, sess Session) SessionView {
	return SessionView{
		SessionID: sess.ID,
		Selection: sess.Selection,
		Dashboard: s.derive(ctx, sess.Selection),
	}
}

func (s *DashboardService) derive(ctx context.Context, sel domain.Selection) analytics.Dashboard {
	if s.memo == nil {
		return analytics.Derive(s.catalog, sel)
	}
	return s.memo.Derive(ctx, s.catalog, sel)
}

func (s *DashboardService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func dropped(before, after domain.IDSet) []string {
	var out []string
	for _, id := range before.IDs() {
		if !after.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func sessionNotFound(id string) error {
	return apperrors.NewNotFound("session", map[string]any{"session_id": id})
}

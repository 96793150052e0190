package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSessionOpened    EventType = "session_opened"
	EventSelectionChanged EventType = "selection_changed"
	EventSessionClosed    EventType = "session_closed"
)

// SelectionAction names the filter operation behind a selection change.
type SelectionAction string

const (
	ActionToggleDepartment SelectionAction = "toggle_department"
	ActionToggleDoctor     SelectionAction = "toggle_doctor"
	ActionClearDepartments SelectionAction = "clear_departments"
	ActionClearDoctors     SelectionAction = "clear_doctors"
)

// Event is emitted by the dashboard service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(t EventType, sessionID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		SessionID: sessionID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// SelectionChangedPayload describes a filter operation and its outcome.
type SelectionChangedPayload struct {
	Action        SelectionAction `json:"action"`
	TargetID      string          `json:"target_id,omitempty"`
	DepartmentIDs []string        `json:"department_ids"`
	DoctorIDs     []string        `json:"doctor_ids"`
	PrunedDoctors []string        `json:"pruned_doctors,omitempty"`
}

// SessionClosedPayload records why a session ended.
type SessionClosedPayload struct {
	Reason string `json:"reason"`
}

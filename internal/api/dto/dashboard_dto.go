package dto

import "github.com/clinicops/notes-dashboard/internal/analytics"

// DashboardResponse is everything the dashboard page renders.
type DashboardResponse struct {
	SessionID     string            `json:"session_id,omitempty"`
	Selection     SelectionResponse `json:"selection"`
	Filters       []FilterPanel     `json:"filters"`
	Stats         []StatCard        `json:"stats"`
	Chart         ChartResponse     `json:"chart"`
	EmptyState    *EmptyState       `json:"empty_state,omitempty"`
	Practitioners []DoctorResponse  `json:"practitioners"`
	SystemVersion string            `json:"system_version"`
}

// SelectionResponse lists the active filter ids.
type SelectionResponse struct {
	DepartmentIDs []string `json:"department_ids"`
	DoctorIDs     []string `json:"doctor_ids"`
}

// FilterPanel is a checkbox list with a clear action.
type FilterPanel struct {
	Key   string       `json:"key"`
	Title string       `json:"title"`
	Items []FilterItem `json:"items"`
}

// FilterItem is one checkbox of a filter panel.
type FilterItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// StatCard is a labelled headline number.
type StatCard struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Value   int    `json:"value"`
	Display string `json:"display"`
}

// ChartResponse is the bar chart dataset.
type ChartResponse struct {
	Title  string               `json:"title"`
	Series []analytics.ChartBar `json:"series"`
}

// EmptyState is shown when no practitioner matches the filters.
type EmptyState struct {
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

// DoctorResponse describes a practitioner in the filtered set.
type DoctorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	NoteCount  int    `json:"note_count"`
}

// DepartmentResponse describes a catalog department.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

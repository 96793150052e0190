package handlers

import (
	"github.com/dustin/go-humanize"

	"github.com/clinicops/notes-dashboard/internal/api/dto"
	"github.com/clinicops/notes-dashboard/internal/catalog"
	"github.com/clinicops/notes-dashboard/internal/domain"
	"github.com/clinicops/notes-dashboard/internal/service"
)

const (
	chartTitle       = "Note Volume by Department"
	emptyStateText   = "No practitioners match the filter criteria"
	emptyStateHint   = "Try adjusting your filters in the sidebar"
	departmentsPanel = "departments"
	doctorsPanel     = "practitioners"
)

func dashboardResponse(view service.SessionView, c *catalog.Catalog, version string) dto.DashboardResponse {
	d := view.Dashboard
	sel := view.Selection

	resp := dto.DashboardResponse{
		SessionID: view.SessionID,
		Selection: dto.SelectionResponse{
			DepartmentIDs: sel.Departments.IDs(),
			DoctorIDs:     sel.Doctors.IDs(),
		},
		Filters: []dto.FilterPanel{
			departmentFilter(c.Departments(), sel.Departments),
			doctorFilter(d.AvailableDoctors, sel.Doctors),
		},
		Stats: []dto.StatCard{
			statCard("total_notes", "Filtered Notes Total", d.Summary.TotalNotes),
			statCard("avg_notes", "Avg Notes per Provider", d.Summary.AvgNotes),
			statCard("active_departments", "Active Departments", d.ActiveDepartments),
		},
		Chart:         dto.ChartResponse{Title: chartTitle, Series: d.Chart},
		Practitioners: doctorList(d.FilteredDoctors),
		SystemVersion: version,
	}
	if d.Empty {
		resp.EmptyState = &dto.EmptyState{Message: emptyStateText, Hint: emptyStateHint}
	}
	return resp
}

func departmentFilter(depts []domain.Department, selected domain.IDSet) dto.FilterPanel {
	items := make([]dto.FilterItem, 0, len(depts))
	for _, d := range depts {
		items = append(items, dto.FilterItem{ID: d.ID, Name: d.Name, Selected: selected.Has(d.ID)})
	}
	return dto.FilterPanel{Key: departmentsPanel, Title: "Departments", Items: items}
}

func doctorFilter(doctors []domain.Doctor, selected domain.IDSet) dto.FilterPanel {
	items := make([]dto.FilterItem, 0, len(doctors))
	for _, d := range doctors {
		items = append(items, dto.FilterItem{ID: d.ID, Name: d.Name, Selected: selected.Has(d.ID)})
	}
	return dto.FilterPanel{Key: doctorsPanel, Title: "Practitioners", Items: items}
}

func statCard(key, label string, value int) dto.StatCard {
	return dto.StatCard{Key: key, Label: label, Value: value, Display: humanize.Comma(int64(value))}
}

func doctorList(doctors []domain.Doctor) []dto.DoctorResponse {
	out := make([]dto.DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, dto.DoctorResponse{ID: d.ID, Name: d.Name, Department: d.Department, NoteCount: d.NoteCount})
	}
	return out
}

func departmentList(depts []domain.Department) []dto.DepartmentResponse {
	out := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return out
}

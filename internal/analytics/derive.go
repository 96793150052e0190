// Package analytics derives the dashboard views from a roster and a filter selection.
// Every function here is pure and linear in the size of its input.
package analytics

import (
	"sort"

	"github.com/clinicops/notes-dashboard/internal/catalog"
	"github.com/clinicops/notes-dashboard/internal/domain"
)

// Palette colors chart bars by the department's catalog position.
var Palette = []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#ec4899", "#6366f1"}

// ChartBar is one bar of the department chart.
type ChartBar struct {
	Department string `json:"department"`
	TotalNotes int    `json:"total_notes"`
	Color      string `json:"color"`
}

// Dashboard bundles every view derived from one selection.
type Dashboard struct {
	AvailableDoctors  []domain.Doctor              `json:"available_doctors"`
	FilteredDoctors   []domain.Doctor              `json:"filtered_doctors"`
	Aggregates        []domain.DepartmentAggregate `json:"aggregates"`
	Chart             []ChartBar                   `json:"chart"`
	Summary           domain.Summary               `json:"summary"`
	ActiveDepartments int                          `json:"active_departments"`
	Empty             bool                         `json:"empty"`
}

// AvailableDoctors lists the doctors offered in the practitioner filter:
// everyone when no department is selected, otherwise the selected departments' doctors.
func AvailableDoctors(depts []domain.Department, doctors []domain.Doctor, selectedDepartments domain.IDSet) []domain.Doctor {
	if selectedDepartments.IsEmpty() {
		return doctors
	}
	return inDepartments(doctors, selectedNames(depts, selectedDepartments))
}

// FilteredDoctors intersects the roster with the department filter and then
// with the doctor filter. An empty filter does not narrow.
func FilteredDoctors(depts []domain.Department, doctors []domain.Doctor, selectedDepartments, selectedDoctors domain.IDSet) []domain.Doctor {
	result := doctors
	if !selectedDepartments.IsEmpty() {
		result = inDepartments(result, selectedNames(depts, selectedDepartments))
	}
	if !selectedDoctors.IsEmpty() {
		ids := make(map[string]struct{}, selectedDoctors.Len())
		for _, id := range selectedDoctors.IDs() {
			ids[id] = struct{}{}
		}
		narrowed := make([]domain.Doctor, 0, len(result))
		for _, doc := range result {
			if _, ok := ids[doc.ID]; ok {
				narrowed = append(narrowed, doc)
			}
		}
		result = narrowed
	}
	return result
}

// DepartmentAggregates sums note counts per department name, largest first.
// Equal totals keep the order in which departments first appear in filtered.
func DepartmentAggregates(filtered []domain.Doctor) []domain.DepartmentAggregate {
	aggs := make([]domain.DepartmentAggregate, 0)
	pos := make(map[string]int)
	for _, doc := range filtered {
		i, ok := pos[doc.Department]
		if !ok {
			i = len(aggs)
			pos[doc.Department] = i
			aggs = append(aggs, domain.DepartmentAggregate{Department: doc.Department})
		}
		aggs[i].TotalNotes += doc.NoteCount
	}
	sort.SliceStable(aggs, func(a, b int) bool {
		return aggs[a].TotalNotes > aggs[b].TotalNotes
	})
	return aggs
}

// SummaryStats totals the filtered doctors' notes and averages them per doctor,
// rounding half up. Both are zero for an empty input.
func SummaryStats(filtered []domain.Doctor) domain.Summary {
	total := 0
	for _, doc := range filtered {
		total += doc.NoteCount
	}
	n := len(filtered)
	if n == 0 {
		return domain.Summary{}
	}
	return domain.Summary{
		TotalNotes: total,
		AvgNotes:   (2*total + n) / (2 * n),
	}
}

// ChartSeries colors each aggregate by its department's catalog position.
// Departments missing from depts get the first palette color.
func ChartSeries(aggregates []domain.DepartmentAggregate, depts []domain.Department) []ChartBar {
	index := make(map[string]int, len(depts))
	for i, d := range depts {
		if _, ok := index[d.Name]; !ok {
			index[d.Name] = i
		}
	}
	bars := make([]ChartBar, 0, len(aggregates))
	for _, agg := range aggregates {
		color := Palette[0]
		if i, ok := index[agg.Department]; ok {
			color = Palette[i%len(Palette)]
		}
		bars = append(bars, ChartBar{Department: agg.Department, TotalNotes: agg.TotalNotes, Color: color})
	}
	return bars
}

// Derive computes the whole dashboard for sel over c.
func Derive(c *catalog.Catalog, sel domain.Selection) Dashboard {
	depts := c.Departments()
	doctors := c.Doctors()

	filtered := FilteredDoctors(depts, doctors, sel.Departments, sel.Doctors)
	aggs := DepartmentAggregates(filtered)

	return Dashboard{
		AvailableDoctors:  AvailableDoctors(depts, doctors, sel.Departments),
		FilteredDoctors:   filtered,
		Aggregates:        aggs,
		Chart:             ChartSeries(aggs, depts),
		Summary:           SummaryStats(filtered),
		ActiveDepartments: len(aggs),
		Empty:             len(filtered) == 0,
	}
}

func selectedNames(depts []domain.Department, selected domain.IDSet) map[string]struct{} {
	names := make(map[string]struct{}, selected.Len())
	for _, d := range depts {
		if selected.Has(d.ID) {
			names[d.Name] = struct{}{}
		}
	}
	return names
}

func inDepartments(doctors []domain.Doctor, names map[string]struct{}) []domain.Doctor {
	out := make([]domain.Doctor, 0, len(doctors))
	for _, doc := range doctors {
		if _, ok := names[doc.Department]; ok {
			out = append(out, doc)
		}
	}
	return out
}

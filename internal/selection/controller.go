// Package selection holds the state transitions of the dashboard filters.
package selection

import (
	"github.com/clinicops/notes-dashboard/internal/catalog"
	"github.com/clinicops/notes-dashboard/internal/domain"
)

// Controller applies filter operations against one catalog. Every method
// returns a new Selection and leaves its argument untouched.
type Controller struct {
	catalog *catalog.Catalog
}

// NewController binds a controller to c.
func NewController(c *catalog.Catalog) *Controller {
	return &Controller{catalog: c}
}

// ToggleDepartment selects or deselects a department. Deselecting also drops
// every selected doctor of that department; selecting leaves doctors alone.
func (ctl *Controller) ToggleDepartment(sel domain.Selection, id string) domain.Selection {
	if !sel.Departments.Has(id) {
		sel.Departments = sel.Departments.With(id)
		return sel
	}

	sel.Departments = sel.Departments.Without(id)
	if dept, ok := ctl.catalog.Department(id); ok {
		sel.Doctors = sel.Doctors.WithoutAll(ctl.catalog.DoctorIDsInDepartment(dept.Name))
	}
	return sel
}

// ToggleDoctor selects or deselects a doctor.
func (ctl *Controller) ToggleDoctor(sel domain.Selection, id string) domain.Selection {
	sel.Doctors = sel.Doctors.Toggle(id)
	return sel
}

// ClearDepartments drops every department and, with them, every doctor.
func (ctl *Controller) ClearDepartments(domain.Selection) domain.Selection {
	return domain.Selection{}
}

// ClearDoctors drops every doctor.
func (ctl *Controller) ClearDoctors(sel domain.Selection) domain.Selection {
	sel.Doctors = domain.IDSet{}
	return sel
}

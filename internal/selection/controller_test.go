package selection

import (
	"reflect"
	"testing"

	"github.com/clinicops/notes-dashboard/internal/analytics"
	"github.com/clinicops/notes-dashboard/internal/catalog"
	"github.com/clinicops/notes-dashboard/internal/domain"
)

func newController() (*Controller, *catalog.Catalog) {
	c := catalog.Default()
	return NewController(c), c
}

func TestToggleDepartment_AddLeavesDoctors(t *testing.T) {
	ctl, _ := newController()
	sel := domain.NewSelection(nil, []string{"dr-4"})

	got := ctl.ToggleDepartment(sel, "dept-1")
	if !got.Departments.Has("dept-1") {
		t.Fatal("expected dept-1 selected")
	}
	if !reflect.DeepEqual(got.Doctors.IDs(), []string{"dr-4"}) {
		t.Errorf("doctor selection changed on add: %v", got.Doctors.IDs())
	}
}

func TestToggleDepartment_RemovePrunesItsDoctors(t *testing.T) {
	ctl, _ := newController()
	sel := domain.NewSelection([]string{"dept-1", "dept-2"}, []string{"dr-2", "dr-5", "dr-3"})

	got := ctl.ToggleDepartment(sel, "dept-1")
	if got.Departments.Has("dept-1") || !got.Departments.Has("dept-2") {
		t.Fatalf("unexpected departments %v", got.Departments.IDs())
	}
	if !reflect.DeepEqual(got.Doctors.IDs(), []string{"dr-5"}) {
		t.Errorf("expected only dr-5 left, got %v", got.Doctors.IDs())
	}
	if !reflect.DeepEqual(sel.Doctors.IDs(), []string{"dr-2", "dr-5", "dr-3"}) {
		t.Errorf("input selection mutated: %v", sel.Doctors.IDs())
	}
}

func TestToggleDepartment_SelfInverseOnDepartmentsOnly(t *testing.T) {
	ctl, _ := newController()
	start := domain.NewSelection([]string{"dept-1"}, []string{"dr-1"})

	twice := ctl.ToggleDepartment(ctl.ToggleDepartment(start, "dept-1"), "dept-1")
	if !twice.Departments.Has("dept-1") {
		t.Error("department membership should be restored")
	}
	if twice.Doctors.Has("dr-1") {
		t.Error("pruned doctor must not come back")
	}
}

func TestToggleDepartment_UnknownID(t *testing.T) {
	ctl, _ := newController()
	sel := domain.NewSelection(nil, []string{"dr-1"})

	added := ctl.ToggleDepartment(sel, "dept-404")
	if !added.Departments.Has("dept-404") {
		t.Error("unknown ids still toggle membership")
	}
	removed := ctl.ToggleDepartment(added, "dept-404")
	if removed.Departments.Has("dept-404") || !removed.Doctors.Has("dr-1") {
		t.Errorf("unexpected selection %v/%v", removed.Departments.IDs(), removed.Doctors.IDs())
	}
}

func TestToggleDoctor(t *testing.T) {
	ctl, _ := newController()
	sel := domain.NewSelection([]string{"dept-1"}, nil)

	on := ctl.ToggleDoctor(sel, "dr-2")
	if !on.Doctors.Has("dr-2") || !reflect.DeepEqual(on.Departments.IDs(), []string{"dept-1"}) {
		t.Fatalf("unexpected selection %v/%v", on.Departments.IDs(), on.Doctors.IDs())
	}
	off := ctl.ToggleDoctor(on, "dr-2")
	if !off.Doctors.IsEmpty() {
		t.Errorf("expected no doctors, got %v", off.Doctors.IDs())
	}
}

func TestClearDepartments_ClearsBoth(t *testing.T) {
	ctl, _ := newController()
	// dr-4 is not in dept-1 and is still cleared
	sel := domain.NewSelection([]string{"dept-1"}, []string{"dr-2", "dr-4"})
	got := ctl.ClearDepartments(sel)
	if !got.Departments.IsEmpty() || !got.Doctors.IsEmpty() {
		t.Errorf("expected empty selection, got %v/%v", got.Departments.IDs(), got.Doctors.IDs())
	}
}

func TestClearDoctors(t *testing.T) {
	ctl, _ := newController()
	sel := domain.NewSelection([]string{"dept-1"}, []string{"dr-2"})
	got := ctl.ClearDoctors(sel)
	if !got.Doctors.IsEmpty() || !got.Departments.Has("dept-1") {
		t.Errorf("unexpected selection %v/%v", got.Departments.IDs(), got.Doctors.IDs())
	}
}

func TestDeselectingDepartmentRestoresFullRoster(t *testing.T) {
	ctl, c := newController()

	var sel domain.Selection
	sel = ctl.ToggleDepartment(sel, "dept-1")
	sel = ctl.ToggleDoctor(sel, "dr-2")
	if got := analytics.Derive(c, sel); got.Summary.TotalNotes != 98 {
		t.Fatalf("expected 98 notes for Dr. James Wilson, got %d", got.Summary.TotalNotes)
	}

	sel = ctl.ToggleDepartment(sel, "dept-1")
	if sel.Doctors.Has("dr-2") {
		t.Fatal("expected dr-2 to be pruned with Cardiology")
	}
	got := analytics.Derive(c, sel)
	if len(got.FilteredDoctors) != len(c.Doctors()) {
		t.Errorf("expected full roster, got %d doctors", len(got.FilteredDoctors))
	}
}

package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/clinicops/notes-dashboard/internal/domain"
)

func TestDefault_Roster(t *testing.T) {
	c := Default()
	if got := len(c.Departments()); got != 6 {
		t.Fatalf("expected 6 departments, got %d", got)
	}
	if got := len(c.Doctors()); got != 15 {
		t.Fatalf("expected 15 doctors, got %d", got)
	}
	doc, ok := c.Doctor("dr-2")
	if !ok || doc.Name != "Dr. James Wilson" || doc.NoteCount != 98 {
		t.Errorf("unexpected dr-2: %+v", doc)
	}
}

func TestNew_RejectsInvalidRoster(t *testing.T) {
	tests := []struct {
		name    string
		depts   []domain.Department
		doctors []domain.Doctor
	}{
		{
			name:  "duplicate department",
			depts: []domain.Department{{ID: "d1", Name: "A"}, {ID: "d1", Name: "B"}},
		},
		{
			name:  "empty department id",
			depts: []domain.Department{{Name: "A"}},
		},
		{
			name:    "duplicate doctor",
			doctors: []domain.Doctor{{ID: "x", Department: "A"}, {ID: "x", Department: "A"}},
		},
		{
			name:    "empty doctor id",
			doctors: []domain.Doctor{{Name: "Nobody"}},
		},
		{
			name:    "negative note count",
			doctors: []domain.Doctor{{ID: "x", NoteCount: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.depts, tt.doctors)
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestNew_AcceptsOrphanDoctor(t *testing.T) {
	c, err := New(
		[]domain.Department{{ID: "d1", Name: "A"}},
		[]domain.Doctor{{ID: "x", Department: "Unknown", NoteCount: 3}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.DoctorIDsInDepartment("Unknown"); len(got) != 1 {
		t.Errorf("expected orphan doctor to be kept, got %v", got)
	}
}

func TestCatalog_DoctorIDsInDepartment(t *testing.T) {
	c := Default()
	got := c.DoctorIDsInDepartment("Cardiology")
	if !reflect.DeepEqual(got, []string{"dr-1", "dr-2", "dr-3"}) {
		t.Errorf("unexpected ids %v", got)
	}
	if got := c.DoctorIDsInDepartment("Dermatology"); len(got) != 0 {
		t.Errorf("expected none, got %v", got)
	}
}

func TestCatalog_Version(t *testing.T) {
	a := Default()
	b := Default()
	if a.Version() != b.Version() {
		t.Error("equal rosters should share a version")
	}

	docs := b.Doctors()
	docs[0].NoteCount++
	changed := MustNew(b.Departments(), docs)
	if changed.Version() == a.Version() {
		t.Error("changed roster should change the version")
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Default()
	docs := c.Doctors()
	docs[0].Name = "changed"
	if d, _ := c.Doctor("dr-1"); d.Name == "changed" {
		t.Error("catalog mutated through Doctors()")
	}
	if c.Doctors()[0].Name == "changed" {
		t.Error("catalog mutated through Doctors()")
	}
}

type fakeDepartmentRepo struct {
	depts []domain.Department
	err   error
}

func (f fakeDepartmentRepo) List(context.Context) ([]domain.Department, error) {
	return f.depts, f.err
}

type fakeDoctorRepo struct {
	doctors []domain.Doctor
	err     error
}

func (f fakeDoctorRepo) List(context.Context) ([]domain.Doctor, error) {
	return f.doctors, f.err
}

func TestRepositorySource_Load(t *testing.T) {
	src := NewRepositorySource(
		fakeDepartmentRepo{depts: defaultDepartments},
		fakeDoctorRepo{doctors: defaultDoctors},
	)
	c, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Version() != Default().Version() {
		t.Error("expected repository roster to match the default roster")
	}
	if src.Name() != "postgres" {
		t.Errorf("unexpected source name %s", src.Name())
	}
}

func TestRepositorySource_LoadError(t *testing.T) {
	boom := errors.New("boom")
	src := NewRepositorySource(fakeDepartmentRepo{}, fakeDoctorRepo{err: boom})
	if _, err := src.Load(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestStaticSource_Load(t *testing.T) {
	c := Default()
	got, err := NewStaticSource(c).Load(context.Background())
	if err != nil || got != c {
		t.Errorf("expected the same catalog, got %v, %v", got, err)
	}
}

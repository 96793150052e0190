package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/clinicops/notes-dashboard/internal/domain"
)

// ErrInvalidCatalog is wrapped by every validation failure in New.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable roster of departments and doctors in catalog order.
type Catalog struct {
	departments []domain.Department
	doctors     []domain.Doctor
	deptByID    map[string]domain.Department
	doctorByID  map[string]domain.Doctor
	version     string
}

// New validates the roster and builds a Catalog. Doctors whose department
// matches no department name are accepted; they only show up unfiltered.
func New(departments []domain.Department, doctors []domain.Doctor) (*Catalog, error) {
	c := &Catalog{
		departments: append([]domain.Department(nil), departments...),
		doctors:     append([]domain.Doctor(nil), doctors...),
		deptByID:    make(map[string]domain.Department, len(departments)),
		doctorByID:  make(map[string]domain.Doctor, len(doctors)),
	}

	for i, d := range c.departments {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: department at position %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.deptByID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate department id %q", ErrInvalidCatalog, d.ID)
		}
		c.deptByID[d.ID] = d
	}

	for i, doc := range c.doctors {
		if doc.ID == "" {
			return nil, fmt.Errorf("%w: doctor at position %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := c.doctorByID[doc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate doctor id %q", ErrInvalidCatalog, doc.ID)
		}
		if doc.NoteCount < 0 {
			return nil, fmt.Errorf("%w: doctor %q has negative note count %d", ErrInvalidCatalog, doc.ID, doc.NoteCount)
		}
		c.doctorByID[doc.ID] = doc
	}

	c.version = c.computeVersion()
	return c, nil
}

// MustNew is New for fixtures known to be valid.
func MustNew(departments []domain.Department, doctors []domain.Doctor) *Catalog {
	c, err := New(departments, doctors)
	if err != nil {
		panic(err)
	}
	return c
}

// Departments returns the departments in catalog order.
func (c *Catalog) Departments() []domain.Department {
	return append([]domain.Department(nil), c.departments...)
}

// Doctors returns the doctors in catalog order.
func (c *Catalog) Doctors() []domain.Doctor {
	return append([]domain.Doctor(nil), c.doctors...)
}

// Department looks a department up by id.
func (c *Catalog) Department(id string) (domain.Department, bool) {
	d, ok := c.deptByID[id]
	return d, ok
}

// Doctor looks a doctor up by id.
func (c *Catalog) Doctor(id string) (domain.Doctor, bool) {
	d, ok := c.doctorByID[id]
	return d, ok
}

// DoctorIDsInDepartment returns the ids of doctors whose department is name.
func (c *Catalog) DoctorIDsInDepartment(name string) []string {
	var ids []string
	for _, doc := range c.doctors {
		if doc.Department == name {
			ids = append(ids, doc.ID)
		}
	}
	return ids
}

// Version identifies the catalog contents. Equal rosters share a version.
func (c *Catalog) Version() string {
	return c.version
}

func (c *Catalog) computeVersion() string {
	h := xxhash.New()
	for _, d := range c.departments {
		_, _ = h.WriteString("D\x00" + d.ID + "\x00" + d.Name + "\x00")
	}
	for _, doc := range c.doctors {
		_, _ = h.WriteString("P\x00" + doc.ID + "\x00" + doc.Name + "\x00" + doc.Department + "\x00" + strconv.Itoa(doc.NoteCount) + "\x00")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

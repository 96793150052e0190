package catalog

import (
	"context"
	"fmt"

	"github.com/clinicops/notes-dashboard/internal/repository"
)

// Source supplies the roster the dashboard runs on.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
	Name() string
}

type staticSource struct {
	catalog *Catalog
}

// NewStaticSource serves a fixed catalog.
func NewStaticSource(c *Catalog) Source {
	return &staticSource{catalog: c}
}

func (s *staticSource) Load(context.Context) (*Catalog, error) {
	return s.catalog, nil
}

func (s *staticSource) Name() string { return "static" }

type repositorySource struct {
	departments repository.DepartmentRepository
	doctors     repository.DoctorRepository
}

// NewRepositorySource reads the roster through the catalog repositories.
func NewRepositorySource(departments repository.DepartmentRepository, doctors repository.DoctorRepository) Source {
	return &repositorySource{departments: departments, doctors: doctors}
}

func (s *repositorySource) Load(ctx context.Context) (*Catalog, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	docs, err := s.doctors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return New(depts, docs)
}

func (s *repositorySource) Name() string { return "postgres" }

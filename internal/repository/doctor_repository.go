package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicops/notes-dashboard/internal/domain"
)

// DoctorRepository reads the practitioner roster.
type DoctorRepository interface {
	List(ctx context.Context) ([]domain.Doctor, error)
}

type doctorRepository struct {
	pool *pgxpool.Pool
}

// NewDoctorRepository builds the repository.
func NewDoctorRepository(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepository{pool: pool}
}

// List returns doctors in catalog order.
func (r *doctorRepository) List(ctx context.Context) ([]domain.Doctor, error) {
	const query = `
        SELECT id, name, department, note_count
        FROM doctors
        ORDER BY position, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectDoctors(rows)
}

func collectDoctors(rows pgx.Rows) ([]domain.Doctor, error) {
	defer rows.Close()

	var result []domain.Doctor
	for rows.Next() {
		var doc domain.Doctor
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Department, &doc.NoteCount); err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

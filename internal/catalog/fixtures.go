package catalog

import "github.com/clinicops/notes-dashboard/internal/domain"

var defaultDepartments = []domain.Department{
	{ID: "dept-1", Name: "Cardiology"},
	{ID: "dept-2", Name: "Neurology"},
	{ID: "dept-3", Name: "Pediatrics"},
	{ID: "dept-4", Name: "Oncology"},
	{ID: "dept-5", Name: "Orthopedics"},
	{ID: "dept-6", Name: "Emergency"},
}

var defaultDoctors = []domain.Doctor{
	{ID: "dr-1", Name: "Dr. Sarah Chen", Department: "Cardiology", NoteCount: 142},
	{ID: "dr-2", Name: "Dr. James Wilson", Department: "Cardiology", NoteCount: 98},
	{ID: "dr-3", Name: "Dr. Elena Rodriguez", Department: "Cardiology", NoteCount: 115},
	{ID: "dr-4", Name: "Dr. Michael Chang", Department: "Neurology", NoteCount: 88},
	{ID: "dr-5", Name: "Dr. Aisha Patel", Department: "Neurology", NoteCount: 121},
	{ID: "dr-6", Name: "Dr. Robert Miller", Department: "Neurology", NoteCount: 76},
	{ID: "dr-7", Name: "Dr. Emily Blunt", Department: "Pediatrics", NoteCount: 210},
	{ID: "dr-8", Name: "Dr. David Okafor", Department: "Pediatrics", NoteCount: 185},
	{ID: "dr-9", Name: "Dr. Lisa Vanderpump", Department: "Pediatrics", NoteCount: 164},
	{ID: "dr-10", Name: "Dr. Thomas Shelby", Department: "Oncology", NoteCount: 132},
	{ID: "dr-11", Name: "Dr. Grace Burgess", Department: "Oncology", NoteCount: 95},
	{ID: "dr-12", Name: "Dr. Arthur Shelby", Department: "Orthopedics", NoteCount: 78},
	{ID: "dr-13", Name: "Dr. Polly Gray", Department: "Orthopedics", NoteCount: 104},
	{ID: "dr-14", Name: "Dr. John Watson", Department: "Emergency", NoteCount: 256},
	{ID: "dr-15", Name: "Dr. Sherlock Holmes", Department: "Emergency", NoteCount: 289},
}

// Default returns the built-in roster.
func Default() *Catalog {
	return MustNew(defaultDepartments, defaultDoctors)
}

package domain

// Doctor is a practitioner with a documented note volume.
type Doctor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	NoteCount  int    `json:"note_count"`
}

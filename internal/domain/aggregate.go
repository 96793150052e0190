package domain

// DepartmentAggregate is the summed note volume of one department across the filtered doctors.
type DepartmentAggregate struct {
	Department string `json:"department"`
	TotalNotes int    `json:"total_notes"`
}

// Summary holds the headline note statistics of the filtered doctors.
type Summary struct {
	TotalNotes int `json:"total_notes"`
	AvgNotes   int `json:"avg_notes"`
}

package domain

// Department is a named grouping of practitioners. Doctors reference it by Name.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

package course

import "context"

type Course struct {
	ID          int64
	Title       string
	Description string
	Platform    string
	URL         string
	CostType    string
}

// Store lists the active course catalog in a stable order.
type Store interface {
	ListActiveCourses(ctx context.Context) ([]Course, error)
}

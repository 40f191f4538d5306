package skill

import "context"

type Skill struct {
	ID       int64
	Name     string
	Category string
}

// Store resolves skill identifiers. Unknown ids are simply absent from the
// returned map.
type Store interface {
	ListSkills(ctx context.Context, ids []int64) (map[int64]Skill, error)
}

// Lister loads the whole skill table.
type Lister interface {
	ListAll(ctx context.Context) ([]Skill, error)
}

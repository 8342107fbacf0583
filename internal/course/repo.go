package course

import "context"

type ListOpts struct {
	ActiveOnly bool
	Q          string // substring match on name/display name
	Limit      int
	Offset     int
}

// Store is the course catalog. Courses are keyed by name; Put replaces the
// whole curriculum (admin editing is wholesale, not per-week).
type Store interface {
	Put(ctx context.Context, c Course) error
	Get(ctx context.Context, name string) (Course, error)
	List(ctx context.Context, opts ListOpts) ([]Course, error)
	Delete(ctx context.Context, name string) error
}

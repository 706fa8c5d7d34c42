package models

import "context"

// Finder is the lookup pair every content store provides.
type Finder interface {
	FindByID(ctx context.Context, id ContentID) (*ContentRecord, error)
	FindByTMDBID(ctx context.Context, tmdbID int) (*ContentRecord, error)
}

// Resolve looks id up the way clients address records: an external id also
// matches a custom record that was later attached to that tmdbID. The
// returned record's ID is the one to write through.
func Resolve(ctx context.Context, f Finder, id ContentID) (*ContentRecord, error) {
	if n, ok := id.External(); ok {
		return f.FindByTMDBID(ctx, n)
	}
	return f.FindByID(ctx, id)
}

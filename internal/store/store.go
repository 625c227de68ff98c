// Package store provides read access to the content-store entities, one
// store per entity kind. Each store translates a semantic request ("all
// products", "product by slug") into one remote call through the cosmic
// client and normalizes failure: a remote "not found" becomes an empty
// list or nil entity, anything else a *RetrievalError naming the kind
// and operation.
package store

import (
	"errors"
	"fmt"

	"goldenhills/internal/cosmic"
)

// defaultProps is the field projection requested for every entity; the
// site never needs more than these.
var defaultProps = []string{"id", "title", "slug", "metadata", "created_at"}

// RetrievalError is a remote fetch failure that is not an absence.
// Callers must not attempt partial recovery; it either propagates to an
// error page or, for the blog listing operations, degrades to empty.
type RetrievalError struct {
	Kind string // entity kind, e.g. "products"
	Op   string // operation, e.g. "list"
	Err  error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// isAbsence reports whether err is the remote store's "no matching
// objects" condition.
func isAbsence(err error) bool {
	return errors.Is(err, cosmic.ErrNotFound)
}

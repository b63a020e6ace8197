package classify

import (
	"symbol-inventory/internal/common"
)

// Registry is a presence-set of names. Only membership is tracked.
// A Registry is not safe for concurrent use; parallel callers keep one
// Registry per worker and Merge them afterwards.
type Registry struct {
	set map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{set: make(map[string]struct{})}
}

// Add inserts name and reports whether it was not already present.
func (r *Registry) Add(name string) bool {
	if _, ok := r.set[name]; ok {
		return false
	}

	r.set[name] = struct{}{}

	return true
}

// Has reports whether name is present.
func (r *Registry) Has(name string) bool {
	_, ok := r.set[name]
	return ok
}

// Len returns the number of distinct names.
func (r *Registry) Len() int {
	return len(r.set)
}

// Values returns the names in ascending order.
func (r *Registry) Values() []string {
	return common.SortedKeys(r.set)
}

// Merge adds every name of other into r.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}

	for name := range other.set {
		r.set[name] = struct{}{}
	}
}


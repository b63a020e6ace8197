// Package inventory runs name classification over a Source.
//
// A Runner consumes the source exactly once and returns a Result holding the
// package segment and class identity registries. Malformed names are skipped
// and reported as warnings; a source failure or cancellation fails the whole
// run and no Result is returned.
//
// With more than one worker, names are fanned out to workers that each own a
// Classifier; the per-worker registries are merged once every name has been
// classified.
package inventory

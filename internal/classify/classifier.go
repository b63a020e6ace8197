package classify

import (
	"fmt"
)

// Options tunes how a Classifier records names.
type Options struct {
	// SkipEmptySegments drops empty package segments (".Foo", "a..b.Foo")
	// instead of recording "" in the package registry.
	SkipEmptySegments bool
}

// Classification is the outcome for a single raw name.
type Classification struct {
	Raw        string   // Raw name as received
	Package    string   // Package prefix, empty when HasPackage is false
	HasPackage bool     // Whether raw contained a package delimiter
	Segments   []string // Package segments recorded for this name
	Symbol     string   // Trailing symbol after the package prefix
	Class      string   // Canonical class identity, empty on error
}

// Classifier accumulates package segments and class identities.
type Classifier struct {
	opts     Options
	packages *Registry
	classes  *Registry
}

// New creates a Classifier with empty registries.
func New(opts Options) *Classifier {
	return &Classifier{
		opts:     opts,
		packages: NewRegistry(),
		classes:  NewRegistry(),
	}
}

// Classify records raw into the registries.
//
// Package segments are recorded before the class identity is resolved, so a
// name whose identity is malformed still contributes its segments. The error
// wraps ErrMalformedName in that case and the class registry is untouched.
func (c *Classifier) Classify(raw string) (Classification, error) {
	result := Classification{Raw: raw}

	prefix, symbol, ok := SplitPackage(raw)
	result.Symbol = symbol

	if ok {
		result.Package = prefix
		result.HasPackage = true
		result.Segments = c.recordPackage(prefix)
	}

	class, err := ResolveClass(symbol)
	if err != nil {
		return result, fmt.Errorf("classify %q: %w", raw, err)
	}

	result.Class = class
	c.classes.Add(class)

	return result, nil
}

func (c *Classifier) recordPackage(prefix string) []string {
	segments := PackageSegments(prefix)
	recorded := segments[:0]

	for _, seg := range segments {
		if seg == "" && c.opts.SkipEmptySegments {
			continue
		}

		c.packages.Add(seg)
		recorded = append(recorded, seg)
	}

	return recorded
}

// Packages returns the package segment registry.
func (c *Classifier) Packages() *Registry {
	return c.packages
}

// Classes returns the class identity registry.
func (c *Classifier) Classes() *Registry {
	return c.classes
}

// Merge folds the registries of other into c.
func (c *Classifier) Merge(other *Classifier) {
	c.packages.Merge(other.packages)
	c.classes.Merge(other.classes)
}

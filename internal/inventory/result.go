package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"symbol-inventory/internal/classify"
	"symbol-inventory/internal/diagnostic"
)

// Result is the read-only outcome of a completed run.
type Result struct {
	packages *classify.Registry
	classes  *classify.Registry

	// Names is the number of raw names consumed, duplicates included.
	Names int
	// Skipped is the number of malformed names left out of the class registry.
	Skipped int
	// Diagnostics holds one warning per skipped name and one info per source read.
	Diagnostics diagnostic.Diagnostics
}

// Packages returns the distinct package segments in ascending order.
func (r *Result) Packages() []string {
	return r.packages.Values()
}

// Classes returns the distinct class identities in ascending order.
func (r *Result) Classes() []string {
	return r.classes.Values()
}

// HasPackage reports whether segment was recorded.
func (r *Result) HasPackage(segment string) bool {
	return r.packages.Has(segment)
}

// HasClass reports whether identity was recorded.
func (r *Result) HasClass(identity string) bool {
	return r.classes.Has(identity)
}

// Report is the serialized form of a Result.
type Report struct {
	Names    int                     `yaml:"names" json:"names"`
	Skipped  int                     `yaml:"skipped" json:"skipped"`
	Packages []string                `yaml:"packages" json:"packages"`
	Classes  []string                `yaml:"classes" json:"classes"`
	Warnings []diagnostic.Diagnostic `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Sources  []diagnostic.Diagnostic `yaml:"sources,omitempty" json:"sources,omitempty"`
}

// Report builds the serializable view of r.
func (r *Result) Report() Report {
	return Report{
		Names:    r.Names,
		Skipped:  r.Skipped,
		Packages: r.Packages(),
		Classes:  r.Classes(),
		Warnings: r.Diagnostics.Warnings,
		Sources:  r.Diagnostics.Infos,
	}
}

// YAML encodes the report as YAML.
func (r *Result) YAML() ([]byte, error) {
	return yaml.Marshal(r.Report())
}

// JSON encodes the report as indented JSON.
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Report(), "", "  ")
}

// WriteText writes a plain listing: one "package <segment>" or
// "class <identity>" line per entry.
func (r *Result) WriteText(w io.Writer) error {
	for _, p := range r.Packages() {
		if _, err := fmt.Fprintf(w, "package %s\n", p); err != nil {
			return err
		}
	}

	for _, c := range r.Classes() {
		if _, err := fmt.Fprintf(w, "class %s\n", c); err != nil {
			return err
		}
	}

	return nil
}

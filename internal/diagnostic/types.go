package diagnostic

import "fmt"

// Codes used by the inventory run.
const (
	CodeMalformedName = "malformed_name"
	CodeSourceSummary = "source_summary"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity `yaml:"severity" json:"severity"`
	// Code is a unique identifier for this type of diagnostic.
	Code string `yaml:"code" json:"code"`
	// Message is the human-readable description.
	Message string `yaml:"message" json:"message"`
	// Name is the raw name this relates to (if any).
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Source describes the name source this relates to (if any).
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
}

//go:generate go tool stringer -type=DiagnosticSeverity -linecomment -output=severity_string.go

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo    DiagnosticSeverity = iota // info
	DiagnosticWarning                           // warning
)

// MarshalText encodes the severity by name.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name produced by MarshalText.
func (s *DiagnosticSeverity) UnmarshalText(text []byte) error {
	for _, candidate := range []DiagnosticSeverity{DiagnosticInfo, DiagnosticWarning} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, name string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Name:     name,
	})
}

// AddInfo adds an info diagnostic about a name source.
func (d *Diagnostics) AddInfo(code, message, source string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Source:   source,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

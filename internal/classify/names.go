package classify

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// PackageDelimiter separates package segments and the trailing symbol.
	PackageDelimiter = "."
	// NestedDelimiter separates an outer type from a nested or anonymous type.
	NestedDelimiter = "$"
)

// ErrMalformedName is returned for raw names that have no usable class identity,
// such as "com.example." or "com.example.1$Foo".
var ErrMalformedName = errors.New("malformed name")

// SplitPackage separates the package prefix of raw from its trailing symbol.
// The prefix is everything before the last '.'; ok is false when raw has no
// '.' at all, in which case symbol is raw unchanged.
func SplitPackage(raw string) (prefix, symbol string, ok bool) {
	i := strings.LastIndex(raw, PackageDelimiter)
	if i < 0 {
		return "", raw, false
	}

	return raw[:i], raw[i+len(PackageDelimiter):], true
}

// PackageSegments splits a package prefix on every '.'.
// Leading and inner empty segments are kept (".a..b" yields "", "a", "", "b"),
// trailing ones are dropped ("a.." yields "a"). A prefix without any '.' is
// its own single segment, even when empty.
func PackageSegments(prefix string) []string {
	if !strings.Contains(prefix, PackageDelimiter) {
		return []string{prefix}
	}

	return trimTrailingEmpty(strings.Split(prefix, PackageDelimiter))
}

func trimTrailingEmpty(segments []string) []string {
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	return segments
}

// ResolveClass turns a trailing symbol into its canonical class identity.
//
// Without '$' the symbol is returned as is. Otherwise the '$' segments are
// joined with '.' up to, but excluding, the first numeric segment.
// Trailing empty segments ("Outer$") are ignored.
func ResolveClass(symbol string) (string, error) {
	if symbol == "" {
		return "", fmt.Errorf("%w: empty symbol", ErrMalformedName)
	}

	if !strings.Contains(symbol, NestedDelimiter) {
		return symbol, nil
	}

	segments := trimTrailingEmpty(strings.Split(symbol, NestedDelimiter))

	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if IsNumeric(seg) {
			break
		}

		kept = append(kept, seg)
	}

	identity := strings.Join(kept, PackageDelimiter)
	if identity == "" {
		return "", fmt.Errorf("%w: no named segment in %q", ErrMalformedName, symbol)
	}

	return identity, nil
}

// IsNumeric reports whether s is non-empty and made only of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

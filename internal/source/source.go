package source

import (
	"context"
	"errors"
	"fmt"
	"iter"
)

// ErrSourceFailed wraps every enumeration failure reported by a Source.
var ErrSourceFailed = errors.New("source enumeration failed")

// Source produces raw fully-qualified type names.
type Source interface {
	// Names returns a single-use sequence of names. A non-nil error ends the
	// sequence and invalidates everything produced so far.
	Names(ctx context.Context) iter.Seq2[string, error]
}

// Static is a Source over a fixed list of names.
type Static []string

func (s Static) String() string {
	return fmt.Sprintf("static(%d names)", len(s))
}

// Names yields the names in order.
func (s Static) Names(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, name := range s {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}

			if !yield(name, nil) {
				return
			}
		}
	}
}

// Concat chains sources; each one is opened only after the previous one is exhausted.
func Concat(sources ...Source) Source {
	return multi(sources)
}

type multi []Source

// Parts returns the sources chained by Concat, flattened, or src itself.
func Parts(src Source) []Source {
	m, ok := src.(multi)
	if !ok {
		return []Source{src}
	}

	var parts []Source
	for _, s := range m {
		parts = append(parts, Parts(s)...)
	}

	return parts
}

// Describe returns a short label for src, used in logs and diagnostics.
func Describe(src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", src)
}

func (m multi) Names(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, src := range m {
			for name, err := range src.Names(ctx) {
				if !yield(name, err) || err != nil {
					return
				}
			}
		}
	}
}

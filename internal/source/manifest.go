package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"symbol-inventory/internal/common"
)

// Manifest reads raw names from a newline-delimited listing.
//
// Blank lines and lines starting with '#' are ignored. Entries in class file
// form ("com/example/Foo$1.class"), as printed by "jar tf", are converted to
// dotted names.
type Manifest struct {
	// Path of the listing; "-" or empty reads Reader instead.
	Path string
	// Reader is used when Path is empty or "-".
	Reader io.Reader
}

// Names yields one name per listing entry.
func (m Manifest) Names(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		r := m.Reader

		if m.Path != "" && m.Path != "-" {
			f, err := os.Open(m.Path)
			if err != nil {
				yield("", fmt.Errorf("%w: open manifest %s: %w", ErrSourceFailed, m.Path, err))
				return
			}
			defer f.Close()

			r = f
		}

		if r == nil {
			yield("", fmt.Errorf("%w: manifest has neither path nor reader", ErrSourceFailed))
			return
		}

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}

			name, ok := parseManifestLine(scanner.Text())
			if !ok {
				continue
			}

			if !yield(name, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("%w: read manifest %s: %w", ErrSourceFailed, m.label(), err))
		}
	}
}

func (m Manifest) String() string {
	return "manifest(" + m.label() + ")"
}

func (m Manifest) label() string {
	if m.Path == "" {
		return "-"
	}

	return m.Path
}

func parseManifestLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}

	if name, ok := common.ClassFileName(line); ok {
		return name, true
	}

	// Resources and directories of a jar listing.
	if strings.Contains(line, "/") {
		return "", false
	}

	return line, true
}

package source

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"symbol-inventory/internal/common"
)

// Classpath yields one raw name per .class file found on a class path.
//
// Entries are directories (scanned recursively) or .jar/.zip archives.
// Module and package descriptors are skipped.
type Classpath struct {
	Entries []string
	// IgnoreMissing skips entries that do not exist instead of failing.
	IgnoreMissing bool
}

// ParseClasspath splits a class path string on the OS list separator.
func ParseClasspath(value string) Classpath {
	var entries []string

	for _, e := range filepath.SplitList(value) {
		if e != "" {
			entries = append(entries, e)
		}
	}

	return Classpath{Entries: entries}
}

func (c Classpath) String() string {
	return "classpath(" + strings.Join(c.Entries, string(filepath.ListSeparator)) + ")"
}

// Names walks every entry in order.
func (c Classpath) Names(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, entry := range c.Entries {
			info, err := os.Stat(entry)
			if err != nil {
				if c.IgnoreMissing && errors.Is(err, fs.ErrNotExist) {
					continue
				}

				yield("", fmt.Errorf("%w: classpath entry %s: %w", ErrSourceFailed, entry, err))

				return
			}

			var ok bool
			if info.IsDir() {
				ok = walkDir(ctx, entry, yield)
			} else {
				ok = walkArchive(ctx, entry, yield)
			}

			if !ok {
				return
			}
		}
	}
}

// walkDir yields class names below root. It returns false once the
// sequence must stop.
func walkDir(ctx context.Context, root string, yield func(string, error) bool) bool {
	stopped := false

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		name, ok := classEntry(filepath.ToSlash(rel))
		if !ok {
			return nil
		}

		if !yield(name, nil) {
			stopped = true
			return filepath.SkipAll
		}

		return nil
	})

	if stopped {
		return false
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			yield("", ctxErr)
		} else {
			yield("", fmt.Errorf("%w: walk %s: %w", ErrSourceFailed, root, err))
		}

		return false
	}

	return true
}

func walkArchive(ctx context.Context, archive string, yield func(string, error) bool) bool {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		yield("", fmt.Errorf("%w: open archive %s: %w", ErrSourceFailed, archive, err))
		return false
	}
	defer zr.Close()

	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			yield("", err)
			return false
		}

		if f.FileInfo().IsDir() {
			continue
		}

		name, ok := classEntry(f.Name)
		if !ok {
			continue
		}

		if !yield(name, nil) {
			return false
		}
	}

	return true
}

// classEntry maps a slash-separated entry path to a raw name.
func classEntry(entry string) (string, bool) {
	switch path.Base(entry) {
	case "module-info.class", "package-info.class":
		return "", false
	}

	// Multi-release jars keep versioned copies under META-INF/versions/N/.
	if strings.HasPrefix(entry, "META-INF/") {
		return "", false
	}

	return common.ClassFileName(entry)
}

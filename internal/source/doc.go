// Package source enumerates raw fully-qualified type names.
//
// A Source produces a lazy, finite sequence of names. Any error yielded by
// the sequence means the source could not enumerate names and the run that
// consumes it must fail as a whole.
//
// Implementations:
//   - Static: a fixed list of names
//   - Manifest: newline-delimited name listings
//   - Classpath: .class entries of directories and jar/zip archives
//   - Packages: type declarations of Go packages, via golang.org/x/tools/go/packages
package source

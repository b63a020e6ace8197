package common

import "strings"

// DottedPath converts a slash-separated import path into the dotted package
// prefix used by raw names ("github.com/x/y" becomes "github.com.x.y").
// Returns empty string if pkgPath is empty.
func DottedPath(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return strings.ReplaceAll(pkgPath, "/", ".")
}

// ClassFileName converts an archive or directory entry such as
// "com/example/Foo$1.class" into the raw name "com.example.Foo$1".
// The second result is false when entry is not a class file.
func ClassFileName(entry string) (string, bool) {
	name, ok := strings.CutSuffix(entry, ".class")
	if !ok || name == "" {
		return "", false
	}

	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(name, "/")

	return strings.ReplaceAll(name, "/", "."), true
}

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDottedPath(t *testing.T) {
	assert.Equal(t, "", DottedPath(""))
	assert.Equal(t, "fmt", DottedPath("fmt"))
	assert.Equal(t, "github.com.x.y", DottedPath("github.com/x/y"))
}

func TestClassFileName(t *testing.T) {
	tests := []struct {
		entry string
		want  string
		ok    bool
	}{
		{"com/example/Foo.class", "com.example.Foo", true},
		{"com/example/Foo$1.class", "com.example.Foo$1", true},
		{"/Top.class", "Top", true},
		{`com\example\Bar.class`, "com.example.Bar", true},
		{"META-INF/MANIFEST.MF", "", false},
		{".class", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			got, ok := ClassFileName(tt.entry)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]struct{}{"b": {}, "a": {}, "c": {}}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	assert.True(t, IsEmpty(SortedKeys(map[string]int{})))
}

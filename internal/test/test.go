package test

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func FixtureDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

// Archives returns the txtar fixtures matching pattern under testdata.
func Archives(t *testing.T, pattern string) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join(FixtureDir(t), pattern))
	if err != nil {
		t.Fatalf("bad fixture pattern %s: %v", pattern, err)
	}
	if len(paths) == 0 {
		t.Fatalf("no fixtures match %s", pattern)
	}
	return paths
}

// Case is a golden test case read from a txtar archive: the archive
// comment describes it and each file section holds one part.
type Case struct {
	Name    string
	Comment string
	files   map[string]string
}

func ReadCase(t *testing.T, path string) Case {
	t.Helper()
	a, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read golden archive %s: %v", path, err)
	}
	c := Case{
		Name:    strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Comment: strings.TrimSpace(string(a.Comment)),
		files:   make(map[string]string, len(a.Files)),
	}
	for _, f := range a.Files {
		c.files[f.Name] = string(f.Data)
	}
	return c
}

// File returns the named section and whether the archive has it.
func (c Case) File(name string) (string, bool) {
	data, ok := c.files[name]
	return data, ok
}

// Lines returns the non-empty lines of the named section.
func (c Case) Lines(name string) []string {
	var lines []string
	for _, line := range strings.Split(c.files[name], "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

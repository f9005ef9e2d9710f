package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// WriteBaseline writes the three mandatory fixture exports into dir.
func WriteBaseline(t *testing.T, dir string) {
	t.Helper()
	WriteFile(t, dir, OldNeighborsFile, OldNeighbors)
	WriteFile(t, dir, OldInterfacesFile, OldInterfaces)
	WriteFile(t, dir, OldVRFsFile, OldVRFs)
}

// WriteAll writes the baseline plus the post-migration export and returns
// the path of the latter.
func WriteAll(t *testing.T, dir string) string {
	t.Helper()
	WriteBaseline(t, dir)
	return WriteFile(t, dir, NewNeighborsFile, NewNeighbors)
}

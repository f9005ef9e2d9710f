package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/newtron-network/bgprecon/pkg/util"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.NeighborsFile != "oldneighbors.txt" {
		t.Errorf("NeighborsFile = %q", s.NeighborsFile)
	}
	if s.InterfacesFile != "oldinterfaces.txt" {
		t.Errorf("InterfacesFile = %q", s.InterfacesFile)
	}
	if s.VRFsFile != "oldvrfs.txt" {
		t.Errorf("VRFsFile = %q", s.VRFsFile)
	}
	if s.OutputFile != "output.xlsx" {
		t.Errorf("OutputFile = %q", s.OutputFile)
	}
	if s.ReviewThreshold != 100 {
		t.Errorf("ReviewThreshold = %d", s.ReviewThreshold)
	}
	if s.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty", s.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
neighbors_file: pe1-before.txt
output_file: /srv/reports/pe1.xlsx
review_threshold: 25
log_level: debug
`)

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.NeighborsFile != "pe1-before.txt" {
		t.Errorf("NeighborsFile = %q", s.NeighborsFile)
	}
	if s.InterfacesFile != DefaultInterfacesFile {
		t.Errorf("InterfacesFile = %q, want default", s.InterfacesFile)
	}
	if s.OutputFile != "/srv/reports/pe1.xlsx" {
		t.Errorf("OutputFile = %q", s.OutputFile)
	}
	if s.ReviewThreshold != 25 {
		t.Errorf("ReviewThreshold = %d", s.ReviewThreshold)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", s.LogLevel)
	}
}

func TestLoadFrom_Required(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"), true)
	if err == nil {
		t.Fatal("LoadFrom() with required=true should fail for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "review_threshold: [not, a, number\n")

	if _, err := Load(dir); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative threshold", "review_threshold: -1\n"},
		{"wrong extension", "output_file: report.csv\n"},
		{"bad log level", "log_level: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			if !errors.Is(err, util.ErrValidationFailed) {
				t.Errorf("Load() error = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		dir, p, want string
	}{
		{"/work", "oldvrfs.txt", "/work/oldvrfs.txt"},
		{"/work", "sub/out.xlsx", "/work/sub/out.xlsx"},
		{"/work", "/abs/out.xlsx", "/abs/out.xlsx"},
		{".", "output.xlsx", "output.xlsx"},
	}

	for _, tt := range tests {
		if got := Resolve(tt.dir, tt.p); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.dir, tt.p, got, tt.want)
		}
	}
}

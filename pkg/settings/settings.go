// Package settings loads the optional bgprecon configuration file.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/newtron-network/bgprecon/pkg/util"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = "bgprecon.yaml"

// Defaults for every field left unset.
const (
	DefaultNeighborsFile   = "oldneighbors.txt"
	DefaultInterfacesFile  = "oldinterfaces.txt"
	DefaultVRFsFile        = "oldvrfs.txt"
	DefaultOutputFile      = "output.xlsx"
	DefaultReviewThreshold = 100
)

// Settings holds per-directory run preferences
type Settings struct {
	// NeighborsFile is the pre-migration BGP summary export
	NeighborsFile string `yaml:"neighbors_file,omitempty"`

	// InterfacesFile is the interface/peer-IP export
	InterfacesFile string `yaml:"interfaces_file,omitempty"`

	// VRFsFile is the neighbor/VRF export
	VRFsFile string `yaml:"vrfs_file,omitempty"`

	// OutputFile is the workbook each run appends a sheet to
	OutputFile string `yaml:"output_file,omitempty"`

	// ReviewThreshold is the |prefix delta| at which STATUS turns red
	ReviewThreshold int `yaml:"review_threshold,omitempty"`

	// LogLevel overrides the default log level (warn)
	LogLevel string `yaml:"log_level,omitempty"`
}

// Load reads settings from DefaultFileName in dir. A missing file yields
// defaults.
func Load(dir string) (*Settings, error) {
	return LoadFrom(filepath.Join(dir, DefaultFileName), false)
}

// LoadFrom reads settings from a specific path. When required is false a
// missing file yields defaults; otherwise it is an error.
func LoadFrom(path string, required bool) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			s.applyDefaults()
			return s, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	util.WithField("config", path).Debug("loaded settings")

	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.NeighborsFile == "" {
		s.NeighborsFile = DefaultNeighborsFile
	}
	if s.InterfacesFile == "" {
		s.InterfacesFile = DefaultInterfacesFile
	}
	if s.VRFsFile == "" {
		s.VRFsFile = DefaultVRFsFile
	}
	if s.OutputFile == "" {
		s.OutputFile = DefaultOutputFile
	}
	if s.ReviewThreshold == 0 {
		s.ReviewThreshold = DefaultReviewThreshold
	}
}

// Validate checks field values after defaults are applied.
func (s *Settings) Validate() error {
	v := &util.ValidationBuilder{}
	v.Add(s.ReviewThreshold > 0, fmt.Sprintf("review_threshold must be positive, got %d", s.ReviewThreshold))
	v.Add(strings.HasSuffix(strings.ToLower(s.OutputFile), ".xlsx"),
		fmt.Sprintf("output_file must end in .xlsx, got %q", s.OutputFile))
	if s.LogLevel != "" {
		if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
			v.AddErrorf("log_level: %v", err)
		}
	}
	return v.Build()
}

// Resolve returns p joined to dir unless p is absolute.
func Resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

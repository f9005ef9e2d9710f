package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/newtron-network/bgprecon/pkg/neighbor"
	"github.com/newtron-network/bgprecon/pkg/recon"
	"github.com/newtron-network/bgprecon/pkg/report"
	"github.com/newtron-network/bgprecon/pkg/settings"
	"github.com/newtron-network/bgprecon/pkg/util"
)

// now is swapped in tests.
var now = time.Now

func runReconcile(out io.Writer, opts *options, newNeighborsPath string) error {
	if opts.jsonLog {
		util.SetJSONFormat()
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		return err
	}
	if err := configureLogLevel(opts, cfg); err != nil {
		return err
	}

	// All mandatory inputs must exist before anything is parsed.
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	open := func(source neighbor.Source, name string) (*os.File, error) {
		f, err := openInput(source, settings.Resolve(opts.dir, name))
		if err == nil {
			files = append(files, f)
		}
		return f, err
	}

	neighbors, err := open(neighbor.SourceOldNeighbors, cfg.NeighborsFile)
	if err != nil {
		return err
	}
	interfaces, err := open(neighbor.SourceOldInterfaces, cfg.InterfacesFile)
	if err != nil {
		return err
	}
	vrfs, err := open(neighbor.SourceOldVRFs, cfg.VRFsFile)
	if err != nil {
		return err
	}

	src := recon.Sources{Neighbors: neighbors, Interfaces: interfaces, VRFs: vrfs}
	if newNeighborsPath != "" {
		f, err := open(neighbor.SourceNewNeighbors, newNeighborsPath)
		if err != nil {
			return err
		}
		src.NewNeighbors = f
	}

	result, err := recon.Run(src, now)
	if err != nil {
		return err
	}

	writer := report.NewWriter(settings.Resolve(opts.dir, cfg.OutputFile), cfg.ReviewThreshold)
	if err := writer.Append(result); err != nil {
		return err
	}

	if !opts.quiet {
		printSummary(out, writer.Path(), result, cfg.ReviewThreshold)
	}
	return nil
}

func loadSettings(opts *options) (*settings.Settings, error) {
	if opts.configPath != "" {
		return settings.LoadFrom(settings.Resolve(opts.dir, opts.configPath), true)
	}
	return settings.Load(opts.dir)
}

// configureLogLevel: quiet (warn) by default, the config file's level if
// set, debug on -v.
func configureLogLevel(opts *options, cfg *settings.Settings) error {
	switch {
	case opts.verbose:
		return util.SetLogLevel("debug")
	case cfg.LogLevel != "":
		return util.SetLogLevel(cfg.LogLevel)
	default:
		return util.SetLogLevel("warn")
	}
}

func openInput(source neighbor.Source, path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, util.NewMissingInputError(string(source), path)
		}
		return nil, fmt.Errorf("opening %s input: %w: %w", source, util.ErrUnreadableInput, err)
	}
	return f, nil
}

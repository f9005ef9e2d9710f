package main

import (
	"errors"

	"github.com/newtron-network/bgprecon/pkg/util"
)

// Process exit codes.
const (
	exitOK           = 0
	exitUsage        = 1 // bad flags, arguments, or config
	exitMissingInput = 2 // a mandatory export is absent
	exitBadInput     = 3 // an export is unreadable or has a malformed line
	exitOutput       = 4 // the workbook could not be created or appended
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, util.ErrMissingInput):
		return exitMissingInput
	case errors.Is(err, util.ErrMalformedLine), errors.Is(err, util.ErrUnreadableInput):
		return exitBadInput
	case errors.Is(err, util.ErrOutputWrite), errors.Is(err, util.ErrWorkbookBusy):
		return exitOutput
	default:
		return exitUsage
	}
}

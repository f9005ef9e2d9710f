package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/newtron-network/bgprecon/pkg/util"
)

// lockPath returns the lock file guarding a workbook. It lives in the OS
// temp dir, keyed by the workbook's absolute path, so the working directory
// only ever gains the workbook itself.
func lockPath(workbook string) (string, error) {
	abs, err := filepath.Abs(workbook)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(os.TempDir(), "bgprecon-"+hex.EncodeToString(sum[:8])+".lock"), nil
}

// lockPerm keeps a leftover lock file openable by every user that can write
// the workbook. flock only needs a read-only descriptor.
const lockPerm = 0o666

// lockWorkbook takes a non-blocking exclusive lock on workbook. A second run
// against the same workbook gets util.ErrWorkbookBusy instead of racing the
// read-modify-write of the file.
func lockWorkbook(workbook string) (*flock.Flock, error) {
	path, err := lockPath(workbook)
	if err != nil {
		return nil, fmt.Errorf("resolving lock path: %w", err)
	}

	fl := flock.New(path, flock.SetPermissions(lockPerm))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", util.ErrWorkbookBusy, path)
	}
	return fl, nil
}

// Package inuse finds the files that are currently held open by processes,
// by reading the file descriptor links below /proc. Systems without a
// Linux-style /proc report [ErrUnsupported].
package inuse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

const defaultProcRoot = "/proc"

// ErrUnsupported occurs when the system has no /proc to read open files from.
var ErrUnsupported = errors.New("open file lookup is not supported")

// osProvider defines methods needed to read a filesystem of the operating
// system.
type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Readlink(name string) (string, error)
}

// Checker looks up the paths held open by processes other than the own one.
// Unlike a long-running cache, every lookup is a fresh scan.
type Checker struct {
	osHandler osProvider
	procRoot  string
	selfPID   int
}

// NewChecker returns a pointer to a new [Checker]. Descriptors of the
// process selfPID are ignored.
func NewChecker(osHandler osProvider, selfPID int) *Checker {
	return &Checker{
		osHandler: osHandler,
		procRoot:  defaultProcRoot,
		selfPID:   selfPID,
	}
}

// OpenPaths returns the set of paths currently held open. Processes whose
// descriptors cannot be read (exited, or owned by another user) are skipped.
func (c *Checker) OpenPaths(ctx context.Context) (map[string]struct{}, error) {
	procEntries, err := c.osHandler.ReadDir(c.procRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrUnsupported
		}

		return nil, fmt.Errorf("(inuse-scan) failed to read %s: %w", c.procRoot, err)
	}

	openPaths := make(map[string]struct{})

	for _, procEntry := range procEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pid, err := strconv.Atoi(procEntry.Name())
		if err != nil || pid == c.selfPID {
			continue
		}

		fdPath := filepath.Join(c.procRoot, procEntry.Name(), "fd")
		fdEntries, err := c.osHandler.ReadDir(fdPath)
		if err != nil {
			continue
		}

		for _, fdEntry := range fdEntries {
			linkTarget, err := c.osHandler.Readlink(filepath.Join(fdPath, fdEntry.Name()))
			if err != nil || !filepath.IsAbs(linkTarget) {
				continue
			}

			openPaths[linkTarget] = struct{}{}
		}
	}

	return openPaths, nil
}

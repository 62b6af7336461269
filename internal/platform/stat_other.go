//go:build unix && !linux && !darwin

package platform

import (
	"fmt"
	"os"
	"time"

	"github.com/desertwitch/handoff/internal/schema"
	"golang.org/x/sys/unix"
)

// HasPOSIXOwnership reports whether ownership and mode bits are meaningful.
// On this platform only a reduced set of attributes is available.
func (*Unix) HasPOSIXOwnership() bool {
	return false
}

// Lstat returns the [schema.Metadata] of a path without following a
// symbolic link at its end. Ownership and device are not reported.
func (*Unix) Lstat(path string) (*schema.Metadata, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	metadata := fromFileInfo(fi)

	if metadata.IsSymlink {
		target, err := os.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("(platform-lstat) failed to read symlink: %w", err)
		}
		metadata.SymlinkTo = target
	}

	return metadata, nil
}

// Stat returns the [schema.Metadata] of a path, following symbolic links.
func (*Unix) Stat(path string) (*schema.Metadata, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return fromFileInfo(fi), nil
}

func fromFileInfo(fi os.FileInfo) *schema.Metadata {
	mtime := unix.NsecToTimespec(fi.ModTime().UnixNano())

	return &schema.Metadata{
		Perms:      uint32(fi.Mode().Perm()),
		AccessedAt: mtime,
		ModifiedAt: mtime,
		Size:       fi.Size(),
		IsDir:      fi.IsDir(),
		IsRegular:  fi.Mode().IsRegular(),
		IsSymlink:  fi.Mode()&os.ModeSymlink != 0,
	}
}

// AvailableBytes is not supported on this platform.
func (*Unix) AvailableBytes(string) (uint64, error) {
	return 0, ErrUnsupported
}

// UtimesNoFollow sets the access and modification times of a path. Symbolic
// links are not supported on this platform.
func (*Unix) UtimesNoFollow(path string, atime, mtime unix.Timespec) error {
	fi, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return ErrUnsupported
	}

	return os.Chtimes(path, time.Unix(atime.Unix()), time.Unix(mtime.Unix()))
}

// ListXattrs is not supported on this platform.
func (*Unix) ListXattrs(string) ([]string, error) {
	return nil, ErrUnsupported
}

// GetXattr is not supported on this platform.
func (*Unix) GetXattr(string, string) ([]byte, error) {
	return nil, ErrUnsupported
}

// SetXattr is not supported on this platform.
func (*Unix) SetXattr(string, string, []byte) error {
	return ErrUnsupported
}

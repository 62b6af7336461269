//go:build linux || darwin

package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/desertwitch/handoff/internal/schema"
	"golang.org/x/sys/unix"
)

const xattrBufferSize = 64 << 10

// HasPOSIXOwnership reports whether ownership and mode bits are meaningful.
func (*Unix) HasPOSIXOwnership() bool {
	return true
}

// Lstat returns the [schema.Metadata] of a path without following a
// symbolic link at its end.
func (*Unix) Lstat(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := unix.Lstat(path, &stat); err != nil {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	metadata := toMetadata(&stat)

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
	var stat unix.Stat_t

	if err := unix.Stat(path, &stat); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}

	return toMetadata(&stat), nil
}

func toMetadata(stat *unix.Stat_t) *schema.Metadata {
	format := uint32(stat.Mode) & unix.S_IFMT

	return &schema.Metadata{
		Device:     uint64(stat.Dev), //nolint:gosec
		Inode:      stat.Ino,
		Perms:      uint32(stat.Mode) & 0o7777,
		UID:        stat.Uid,
		GID:        stat.Gid,
		AccessedAt: stat.Atim,
		ModifiedAt: stat.Mtim,
		Size:       stat.Size,
		IsDir:      format == unix.S_IFDIR,
		IsRegular:  format == unix.S_IFREG,
		IsSymlink:  format == unix.S_IFLNK,
	}
}

// AvailableBytes returns the space available to an unprivileged caller on
// the filesystem holding path.
func (*Unix) AvailableBytes(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("(platform-statfs) failed to statfs: %w", err)
	}

	return stat.Bavail * handleSize(int64(stat.Bsize)), nil
}

// UtimesNoFollow sets the access and modification times of a path, without
// following a symbolic link at its end.
func (*Unix) UtimesNoFollow(path string, atime, mtime unix.Timespec) error {
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, []unix.Timespec{atime, mtime}, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		return &fs.PathError{Op: "utimensat", Path: path, Err: err}
	}

	return nil
}

// ListXattrs returns the names of the extended attributes of a path, without
// following a symbolic link at its end.
func (*Unix) ListXattrs(path string) ([]string, error) {
	buf := make([]byte, xattrBufferSize)

	n, err := unix.Llistxattr(path, buf)
	if err != nil {
		if errors.Is(err, unix.ENOTSUP) {
			return nil, ErrUnsupported
		}

		return nil, &fs.PathError{Op: "llistxattr", Path: path, Err: err}
	}

	var names []string
	start := 0
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			if i > start {
				names = append(names, string(buf[start:i]))
			}
			start = i + 1
		}
	}

	return names, nil
}

// GetXattr returns the value of an extended attribute of a path, without
// following a symbolic link at its end.
func (*Unix) GetXattr(path string, name string) ([]byte, error) {
	buf := make([]byte, xattrBufferSize)

	n, err := unix.Lgetxattr(path, name, buf)
	if err != nil {
		return nil, &fs.PathError{Op: "lgetxattr", Path: path, Err: err}
	}

	return buf[:n], nil
}

// SetXattr sets an extended attribute on a path, without following a
// symbolic link at its end.
func (*Unix) SetXattr(path string, name string, value []byte) error {
	if err := unix.Lsetxattr(path, name, value, 0); err != nil {
		return &fs.PathError{Op: "lsetxattr", Path: path, Err: err}
	}

	return nil
}

// handleSize converts a int64 size to a uint64 size (with sizes < 0 becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}

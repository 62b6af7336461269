//go:build unix

package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// Unix is an implementation of the platform capabilities on Unix-based
// operating systems. Parts of it are implemented per operating system.
type Unix struct{}

// Chmod wraps around [unix.Chmod].
func (*Unix) Chmod(path string, mode uint32) error {
	if err := unix.Chmod(path, mode); err != nil {
		return &fs.PathError{Op: "chmod", Path: path, Err: err}
	}

	return nil
}

// Lchown wraps around [unix.Lchown].
func (*Unix) Lchown(path string, uid, gid int) error {
	if err := unix.Lchown(path, uid, gid); err != nil {
		return &fs.PathError{Op: "lchown", Path: path, Err: err}
	}

	return nil
}

// Geteuid wraps around [unix.Geteuid].
func (*Unix) Geteuid() int {
	return unix.Geteuid()
}

// Getpid wraps around [unix.Getpid].
func (*Unix) Getpid() int {
	return unix.Getpid()
}

// ProcessAlive reports whether a process with the given PID exists. A process
// that exists but cannot be signalled by the caller is considered alive.
func (*Unix) ProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}

	err := unix.Kill(pid, 0)

	return err == nil || errors.Is(err, unix.EPERM)
}

// SyncDir flushes a directory, making previous renames into it durable.
func (*Unix) SyncDir(path string) error {
	dir, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("(platform-syncdir) failed to open: %w", err)
	}
	defer dir.Close()

	if err := dir.Sync(); err != nil {
		return fmt.Errorf("(platform-syncdir) failed to sync: %w", err)
	}

	return nil
}

// checkedRename refuses an existing newpath, then renames.
func (*Unix) checkedRename(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return &fs.PathError{Op: "rename", Path: newpath, Err: unix.EEXIST}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("(platform-rename) failed to check destination: %w", err)
	}

	return os.Rename(oldpath, newpath)
}

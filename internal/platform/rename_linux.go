package platform

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// RenameNoReplace atomically renames oldpath to newpath, failing with
// [fs.ErrExist] instead of replacing an existing newpath. Filesystems that
// do not support RENAME_NOREPLACE fall back to a check followed by a rename.
func (u *Unix) RenameNoReplace(oldpath, newpath string) error {
	err := unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.RENAME_NOREPLACE)
	if err == nil {
		return nil
	}

	if errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOSYS) {
		return u.checkedRename(oldpath, newpath)
	}

	return &fs.PathError{Op: "renameat2", Path: newpath, Err: err}
}

package platform

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

// RenameNoReplace atomically renames oldpath to newpath, failing with
// [fs.ErrExist] instead of replacing an existing newpath. Filesystems that
// do not support RENAME_EXCL fall back to a check followed by a rename.
func (u *Unix) RenameNoReplace(oldpath, newpath string) error {
	err := unix.RenamexNp(oldpath, newpath, unix.RENAME_EXCL)
	if err == nil {
		return nil
	}

	if errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EINVAL) {
		return u.checkedRename(oldpath, newpath)
	}

	return &fs.PathError{Op: "renamex_np", Path: newpath, Err: err}
}

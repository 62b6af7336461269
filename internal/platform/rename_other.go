//go:build unix && !linux && !darwin

package platform

// RenameNoReplace renames oldpath to newpath, failing with [fs.ErrExist]
// instead of replacing an existing newpath. This platform has no atomic
// no-replace rename, so a small window between check and rename remains.
func (u *Unix) RenameNoReplace(oldpath, newpath string) error {
	return u.checkedRename(oldpath, newpath)
}

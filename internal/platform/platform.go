// Package platform provides the implementations of all operating system
// functionality used by the engine. Everything that diverges between
// operating systems (no-replace renames, extended attributes, ownership,
// free space queries) is implemented here once per platform, so that the
// consumers only ever depend on narrow interfaces.
package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrUnsupported is returned by capabilities that the current platform
// cannot provide.
var ErrUnsupported = errors.ErrUnsupported

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Remove wraps around [os.Remove].
func (*OS) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll wraps around [os.RemoveAll].
func (*OS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Readlink wraps around [os.Readlink].
func (*OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// EvalSymlinks wraps around [filepath.EvalSymlinks].
func (*OS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Symlink wraps around [os.Symlink].
func (*OS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

// Mkdir wraps around [os.Mkdir].
func (*OS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

// MkdirAll wraps around [os.MkdirAll].
func (*OS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Package security implements the path security policy of the engine. Every
// path below a base directory must be free of symbolic link components, and
// the base directories themselves must be owned by the effective user and
// must not be writable by anyone else.
package security

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/desertwitch/handoff/internal/schema"
)

const insecureModeBits = 0o022

type statProvider interface {
	Lstat(path string) (*schema.Metadata, error)
	Stat(path string) (*schema.Metadata, error)
}

type ownerProvider interface {
	Geteuid() int
	HasPOSIXOwnership() bool
}

// Handler is the principal implementation of the path security checks.
type Handler struct {
	statHandler  statProvider
	ownerHandler ownerProvider
}

// NewHandler returns a pointer to a new security [Handler].
func NewHandler(statHandler statProvider, ownerHandler ownerProvider) *Handler {
	return &Handler{
		statHandler:  statHandler,
		ownerHandler: ownerHandler,
	}
}

// Within reports whether path equals base or lies below it. Both paths are
// compared lexically, after cleaning.
func Within(base, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(path))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CheckPath rejects a path that lies outside of base, or where the leaf or
// any ancestor below base is a symbolic link. The base itself is trusted.
// With allowMissing, the walk ends successfully at the first component that
// does not exist (as is expected for destinations).
func (h *Handler) CheckPath(base, path string, allowMissing bool) error {
	base = filepath.Clean(base)
	path = filepath.Clean(path)

	if !Within(base, path) {
		return schema.NewError(schema.KindPermissionDenied, path, nil).Because("outside of %s", base)
	}

	rel, _ := filepath.Rel(base, path)
	if rel == "." {
		return nil
	}

	current := base
	for _, component := range strings.Split(rel, string(filepath.Separator)) {
		current = filepath.Join(current, component)

		done, err := h.checkComponent(current, allowMissing)
		if err != nil || done {
			return err
		}
	}

	return nil
}

// CheckLogFile rejects a log file path where the leaf or any of its ancestors
// (up to the filesystem root) is a symbolic link. The leaf may be missing.
func (h *Handler) CheckLogFile(path string) error {
	path = filepath.Clean(path)
	if !filepath.IsAbs(path) {
		return schema.NewError(schema.KindPermissionDenied, path, nil).Because("log file path is not absolute")
	}

	volume := filepath.VolumeName(path)
	current := volume + string(filepath.Separator)

	for _, component := range strings.Split(strings.TrimPrefix(path[len(volume):], string(filepath.Separator)), string(filepath.Separator)) {
		if component == "" {
			continue
		}
		current = filepath.Join(current, component)

		done, err := h.checkComponent(current, true)
		if err != nil || done {
			return err
		}
	}

	return nil
}

// checkComponent returns done when the component does not exist and
// allowMissing is set, so the remaining components need no checking.
func (h *Handler) checkComponent(path string, allowMissing bool) (bool, error) {
	md, err := h.statHandler.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if allowMissing {
				return true, nil
			}

			return false, schema.NewError(schema.KindNotFound, path, err)
		}

		return false, schema.FromOSError(path, fmt.Errorf("(security-check) failed to lstat: %w", err), schema.KindCopyFailed)
	}

	if md.IsSymlink {
		return false, schema.NewError(schema.KindSymlinkRejected, path, nil).Because("points to %s", md.SymlinkTo)
	}

	return false, nil
}

// CheckBase verifies that a base directory exists and is a directory, and
// that it is owned by the effective user and not group or world writable.
// The base itself may be a symbolic link to a directory. On platforms
// without POSIX ownership the ownership part of the check is skipped and a
// warning is logged.
func (h *Handler) CheckBase(path string, role string) error {
	if path == "" || !filepath.IsAbs(path) {
		return schema.NewError(schema.KindInvalidBase, path, nil).Because("%s must be an absolute path", role)
	}

	md, err := h.statHandler.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return schema.NewError(schema.KindPermissionDenied, path, err)
		}

		return schema.NewError(schema.KindInvalidBase, path, err).Because("%s is not accessible", role)
	}

	if !md.IsDir {
		return schema.NewError(schema.KindInvalidBase, path, nil).Because("%s is not a directory", role)
	}

	if !h.ownerHandler.HasPOSIXOwnership() {
		slog.Warn("Partial security check: platform does not report ownership.",
			"path", path,
			"role", role,
		)

		return nil
	}

	if euid := h.ownerHandler.Geteuid(); int64(md.UID) != int64(euid) {
		return schema.NewError(schema.KindInsecureBaseDirectory, path, nil).Because("%s is owned by uid %d, not by the effective uid %d", role, md.UID, euid)
	}

	if md.Perms&insecureModeBits != 0 {
		return schema.NewError(schema.KindInsecureBaseDirectory, path, nil).Because("%s has mode %04o (group or world writable)", role, md.Perms)
	}

	return nil
}

// Package metadata carries the attributes of a source over to its
// destination. Preservation is always best-effort: every attribute class is
// attempted independently, and every failure is reported as a
// [schema.Warning] instead of failing the move.
package metadata

import (
	"log/slog"

	"github.com/desertwitch/handoff/internal/schema"
	"golang.org/x/sys/unix"
)

// Steps reported in [schema.Warning].
const (
	StepPermissions = "permissions"
	StepOwnership   = "ownership"
	StepTimestamps  = "timestamps"
	StepXattrs      = "xattrs"
)

type unixProvider interface {
	Chmod(path string, mode uint32) error
	Lchown(path string, uid, gid int) error
	Geteuid() int
	UtimesNoFollow(path string, atime, mtime unix.Timespec) error
}

type xattrProvider interface {
	ListXattrs(path string) ([]string, error)
	GetXattr(path string, name string) ([]byte, error)
	SetXattr(path string, name string, value []byte) error
}

// Handler is the principal implementation of the metadata preservation.
type Handler struct {
	unixHandler  unixProvider
	xattrHandler xattrProvider
}

// NewHandler returns a pointer to a new metadata [Handler].
func NewHandler(unixHandler unixProvider, xattrHandler xattrProvider) *Handler {
	return &Handler{
		unixHandler:  unixHandler,
		xattrHandler: xattrHandler,
	}
}

// Apply copies the attributes of the source at srcPath (described by
// srcMeta) onto dstPath, as selected by flags. PreserveMetadata implies
// PreservePermissions. Ownership is only carried over when running as root.
// The returned warnings are in the order the failures occurred.
func (h *Handler) Apply(dstPath string, srcPath string, srcMeta *schema.Metadata, flags schema.Flags) []schema.Warning {
	var warnings []schema.Warning

	warn := func(step string, err error) {
		slog.Warn("Metadata not preserved:",
			"step", step,
			"path", dstPath,
			"err", err,
		)
		warnings = append(warnings, schema.Warning{Step: step, Path: dstPath, Err: err})
	}

	if !flags.PreserveMetadata && !flags.PreservePermissions {
		return nil
	}

	if flags.PreserveMetadata && h.unixHandler.Geteuid() == 0 {
		if err := h.ensureOwnership(dstPath, srcMeta); err != nil {
			warn(StepOwnership, err)
		}
	}

	if err := h.ensurePermissions(dstPath, srcMeta); err != nil {
		warn(StepPermissions, err)
	}

	if !flags.PreserveMetadata {
		return warnings
	}

	if !srcMeta.IsSymlink {
		if err := h.ensureXattrs(dstPath, srcPath); err != nil {
			warn(StepXattrs, err)
		}
	}

	if err := h.ensureTimestamps(dstPath, srcMeta); err != nil {
		warn(StepTimestamps, err)
	}

	return warnings
}

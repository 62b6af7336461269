// Package mover implements the transactional move of a resolved source into
// the completed base. A same-filesystem move is a single no-replace rename.
// Across filesystems the source is copied into a hidden staging entry next
// to the destination, verified, given its metadata and only then renamed
// into place, so that the destination is either absent or complete.
package mover

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/desertwitch/handoff/internal/schema"
	"github.com/desertwitch/handoff/internal/security"
	"golang.org/x/sys/unix"
)

const (
	roleDownloadBase  = "download_base"
	roleCompletedBase = "completed_base"

	stepPreflight    = "preflight"
	stepRemoveSource = "remove-source"
	stepSync         = "sync"
)

type osProvider interface {
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Mkdir(name string, perm os.FileMode) error
	ReadDir(name string) ([]os.DirEntry, error)
	RemoveAll(path string) error
	Symlink(oldname, newname string) error
}

type unixProvider interface {
	Getpid() int
	Lstat(path string) (*schema.Metadata, error)
	ProcessAlive(pid int) bool
	RenameNoReplace(oldpath, newpath string) error
	Stat(path string) (*schema.Metadata, error)
	SyncDir(path string) error
}

type securityProvider interface {
	CheckBase(path string, role string) error
	CheckPath(base, path string, allowMissing bool) error
}

type resolverProvider interface {
	Resolve(ctx context.Context, req *schema.MoveRequest) (*schema.ResolvedSource, error)
	Measure(ctx context.Context, path string) (uint64, int, error)
}

type spaceProvider interface {
	Preflight(path string, size uint64, cushion uint64) (*schema.DiskSpaceReport, error)
}

type metadataProvider interface {
	Apply(dstPath string, srcPath string, srcMeta *schema.Metadata, flags schema.Flags) []schema.Warning
}

// Handler is the principal implementation of the move engine.
type Handler struct {
	osHandler       osProvider
	unixHandler     unixProvider
	securityHandler securityProvider
	resolverHandler resolverProvider
	spaceHandler    spaceProvider
	metadataHandler metadataProvider
	now             func() time.Time
}

// NewHandler returns a pointer to a new mover [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider, securityHandler securityProvider,
	resolverHandler resolverProvider, spaceHandler spaceProvider, metadataHandler metadataProvider,
) *Handler {
	return &Handler{
		osHandler:       osHandler,
		unixHandler:     unixHandler,
		securityHandler: securityHandler,
		resolverHandler: resolverHandler,
		spaceHandler:    spaceHandler,
		metadataHandler: metadataHandler,
		now:             time.Now,
	}
}

// Execute performs the move described by req. It returns the outcome of the
// move, or a [schema.MoveError] describing why the move was refused or
// failed. In a dry-run, all validation and the free space preflight run as
// usual, but nothing is changed on disk.
func (h *Handler) Execute(ctx context.Context, req *schema.MoveRequest) (*schema.MoveOutcome, error) {
	if err := h.validate(req); err != nil {
		return nil, err
	}

	src, err := h.resolverHandler.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	dest := filepath.Join(req.CompletedBase, filepath.Base(src.Path))
	if err := h.checkDestination(req.CompletedBase, dest); err != nil {
		return nil, err
	}

	outcome := &schema.MoveOutcome{
		SourcePath:      src.Path,
		DestinationPath: dest,
		DryRun:          req.Flags.DryRun,
	}

	if req.Flags.DryRun {
		return h.predict(req, src, outcome)
	}

	if ctx.Err() != nil {
		return nil, schema.NewError(schema.KindInterrupted, src.Path, ctx.Err())
	}

	h.reapStaging(req.CompletedBase)

	err = h.unixHandler.RenameNoReplace(src.Path, dest)
	switch {
	case err == nil:
		outcome.Method = schema.MethodAtomicRename
		h.syncDir(req.CompletedBase)
		h.syncDir(filepath.Dir(src.Path))

		slog.Debug("Moved by atomic rename.", "src", src.Path, "dst", dest)

		return outcome, nil

	case errors.Is(err, fs.ErrExist):
		return nil, schema.NewError(schema.KindDestinationExists, dest, err)

	case errors.Is(err, unix.EXDEV):
		slog.Debug("Source and destination are on different filesystems: copying.",
			"src", src.Path,
			"dst", dest,
		)

		return h.copyFallback(ctx, req, src, outcome)

	default:
		return nil, schema.NewError(schema.KindCopyFailed, dest, err).Because("rename failed")
	}
}

// validate checks both base directories and their relation to each other.
func (h *Handler) validate(req *schema.MoveRequest) error {
	if err := h.securityHandler.CheckBase(req.DownloadBase, roleDownloadBase); err != nil {
		return err
	}

	if err := h.securityHandler.CheckBase(req.CompletedBase, roleCompletedBase); err != nil {
		return err
	}

	if security.Within(req.DownloadBase, req.CompletedBase) || security.Within(req.CompletedBase, req.DownloadBase) {
		return schema.NewError(schema.KindInvalidBase, req.CompletedBase, ErrNestedBases)
	}

	return nil
}

// checkDestination refuses destinations below a symbolic link and
// destinations that already exist.
func (h *Handler) checkDestination(completedBase string, dest string) error {
	if err := h.securityHandler.CheckPath(completedBase, dest, true); err != nil {
		return err
	}

	if _, err := h.unixHandler.Lstat(dest); err == nil {
		return schema.NewError(schema.KindDestinationExists, dest, nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		if errors.Is(err, fs.ErrPermission) {
			return schema.NewError(schema.KindPermissionDenied, dest, err)
		}

		return schema.NewError(schema.KindCopyFailed, dest, fmt.Errorf("(mover-dest) failed to check destination existence: %w", err))
	}

	return nil
}

// predict returns the outcome a real run would have, without changing
// anything. A move across devices is predicted to need the copy fallback.
func (h *Handler) predict(req *schema.MoveRequest, src *schema.ResolvedSource, outcome *schema.MoveOutcome) (*schema.MoveOutcome, error) {
	destMeta, err := h.unixHandler.Stat(req.CompletedBase)
	if err != nil {
		return nil, schema.NewError(schema.KindInvalidBase, req.CompletedBase, err)
	}

	if destMeta.Device == src.Metadata.Device {
		outcome.Method = schema.MethodAtomicRename

		return outcome, nil
	}

	report, err := h.preflight(req, src, outcome)
	if err != nil {
		return nil, err
	}

	outcome.Method = schema.MethodCopyFallback
	outcome.BytesMoved = src.SizeBytes
	outcome.Space = report

	return outcome, nil
}

func (h *Handler) preflight(req *schema.MoveRequest, src *schema.ResolvedSource, outcome *schema.MoveOutcome) (*schema.DiskSpaceReport, error) {
	report, err := h.spaceHandler.Preflight(req.CompletedBase, src.SizeBytes, req.SpaceCushion)
	if err != nil {
		if _, typed := schema.KindOf(err); typed {
			return nil, err
		}

		return nil, schema.NewError(schema.KindCopyFailed, req.CompletedBase, err).Because("free space preflight failed")
	}

	if report.Unknown {
		outcome.AddWarning(stepPreflight, req.CompletedBase, errors.ErrUnsupported)
	}

	return report, nil
}

// syncDir makes a rename durable. Failures are logged only.
func (h *Handler) syncDir(path string) {
	if err := h.unixHandler.SyncDir(path); err != nil {
		slog.Warn("Failed to sync directory after rename.",
			"step", stepSync,
			"path", path,
			"err", err,
		)
	}
}

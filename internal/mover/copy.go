package mover

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/handoff/internal/schema"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// stagedEntry is a single object created inside the staging tree.
type stagedEntry struct {
	stagedPath string
	sourcePath string
	metadata   *schema.Metadata
}

// copyReport collects what a copy created, in creation order (parents
// before their children).
type copyReport struct {
	entries []stagedEntry
	bytes   uint64
}

// copyFallback is the cross-filesystem branch of the move: preflight, copy
// into staging, verify, apply metadata, revalidate the destination, promote
// the staging entry and finally remove the source.
func (h *Handler) copyFallback(ctx context.Context, req *schema.MoveRequest, src *schema.ResolvedSource, outcome *schema.MoveOutcome) (*schema.MoveOutcome, error) {
	report, err := h.preflight(req, src, outcome)
	if err != nil {
		return nil, err
	}
	outcome.Space = report

	dest := outcome.DestinationPath
	staging := h.stagingPath(req.CompletedBase, filepath.Base(src.Path))

	fail := func(err error) (*schema.MoveOutcome, error) {
		h.cleanupStaging(staging)

		return nil, err
	}

	if err := h.securityHandler.CheckPath(req.DownloadBase, src.Path, false); err != nil {
		return nil, err
	}

	rep := &copyReport{}
	if err := h.copyTree(ctx, src.Path, staging, rep); err != nil {
		return fail(err)
	}

	if err := h.verifyTree(ctx, src, staging, rep); err != nil {
		return fail(err)
	}

	// Children before parents, so directory timestamps are not disturbed
	// by changes to their entries.
	for i := len(rep.entries) - 1; i >= 0; i-- {
		e := rep.entries[i]
		outcome.Warnings = append(outcome.Warnings, h.metadataHandler.Apply(e.stagedPath, e.sourcePath, e.metadata, req.Flags)...)
	}

	if err := h.revalidateDestination(req.CompletedBase, dest); err != nil {
		return fail(err)
	}

	if err := h.unixHandler.RenameNoReplace(staging, dest); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fail(schema.NewError(schema.KindRaceDetected, dest, err))
		}

		return fail(schema.NewError(schema.KindCopyFailed, dest, err).Because("failed to promote staging"))
	}
	h.syncDir(req.CompletedBase)

	outcome.Method = schema.MethodCopyFallback
	outcome.BytesMoved = rep.bytes

	h.removeSource(req.DownloadBase, src.Path, outcome)

	return outcome, nil
}

// removeSource deletes the source once its copy is in place. The source path
// is validated again first: a source that is no longer free of symbolic
// links is left alone, since removing it would follow the link.
func (h *Handler) removeSource(downloadBase string, path string, outcome *schema.MoveOutcome) {
	if err := h.securityHandler.CheckPath(downloadBase, path, false); err != nil {
		slog.Warn("Moved, but not removing the source: it changed during the copy.",
			"path", path,
			"err", err,
		)
		outcome.AddWarning(stepRemoveSource, path, err)

		return
	}

	if err := h.osHandler.RemoveAll(path); err != nil {
		slog.Warn("Moved, but failed to remove the source.",
			"path", path,
			"err", err,
		)
		outcome.AddWarning(stepRemoveSource, path, err)
	}
}

// copyTree recreates the tree at srcPath as dstPath. Symbolic links are
// recreated as links (never followed). Cancellation is observed between
// entries, never in the middle of a file.
func (h *Handler) copyTree(ctx context.Context, srcPath string, dstPath string, rep *copyReport) error {
	if ctx.Err() != nil {
		return schema.NewError(schema.KindInterrupted, srcPath, ctx.Err())
	}

	md, err := h.unixHandler.Lstat(srcPath)
	if err != nil {
		return schema.NewError(schema.KindCopyFailed, srcPath, err)
	}

	switch {
	case md.IsDir:
		if err := h.osHandler.Mkdir(dstPath, os.FileMode(md.Perms&0o777|0o700)); err != nil {
			return schema.NewError(schema.KindCopyFailed, dstPath, err)
		}
		rep.entries = append(rep.entries, stagedEntry{stagedPath: dstPath, sourcePath: srcPath, metadata: md})

		entries, err := h.osHandler.ReadDir(srcPath)
		if err != nil {
			return schema.NewError(schema.KindCopyFailed, srcPath, err)
		}

		for _, entry := range entries {
			if err := h.copyTree(ctx, filepath.Join(srcPath, entry.Name()), filepath.Join(dstPath, entry.Name()), rep); err != nil {
				return err
			}
		}

	case md.IsRegular:
		n, err := h.copyFile(srcPath, dstPath, md)
		if err != nil {
			return err
		}
		rep.bytes += n
		rep.entries = append(rep.entries, stagedEntry{stagedPath: dstPath, sourcePath: srcPath, metadata: md})

	case md.IsSymlink:
		if err := h.osHandler.Symlink(md.SymlinkTo, dstPath); err != nil {
			return schema.NewError(schema.KindCopyFailed, dstPath, err)
		}
		rep.entries = append(rep.entries, stagedEntry{stagedPath: dstPath, sourcePath: srcPath, metadata: md})

	default:
		return schema.NewError(schema.KindCopyFailed, srcPath, ErrUnsupportedType)
	}

	return nil
}

// copyFile copies a single regular file into a new file at dstPath. The
// source is hashed while it is read; the written file is synced, then read
// back and hashed again. Both hashes must match.
func (h *Handler) copyFile(srcPath string, dstPath string, md *schema.Metadata) (uint64, error) {
	srcFile, err := h.osHandler.OpenFile(srcPath, os.O_RDONLY|unix.O_NOFOLLOW, 0)
	if err != nil {
		return 0, schema.FromOSError(srcPath, err, schema.KindCopyFailed).Because("failed to open source file")
	}
	defer srcFile.Close()

	dstFile, err := h.osHandler.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, os.FileMode(md.Perms&0o777|0o600))
	if err != nil {
		return 0, schema.NewError(schema.KindCopyFailed, dstPath, err).Because("failed to create staging file")
	}
	defer dstFile.Close()

	srcHasher := blake3.New()

	n, err := io.Copy(dstFile, io.TeeReader(srcFile, srcHasher))
	if err != nil {
		return 0, schema.NewError(schema.KindCopyFailed, dstPath, err)
	}

	if err := dstFile.Sync(); err != nil {
		return 0, schema.NewError(schema.KindCopyFailed, dstPath, err).Because("failed to sync staging file")
	}

	if err := dstFile.Close(); err != nil {
		return 0, schema.NewError(schema.KindCopyFailed, dstPath, err)
	}

	dstChecksum, err := h.hashFile(dstPath)
	if err != nil {
		return 0, schema.NewError(schema.KindCopyFailed, dstPath, err).Because("failed to read back staging file")
	}

	srcChecksum := srcHasher.Sum(nil)
	if !bytes.Equal(srcChecksum, dstChecksum) {
		return 0, schema.NewError(schema.KindVerificationFailed, dstPath,
			fmt.Errorf("%w: %s (src) != %s (dst)", ErrHashMismatch, hex.EncodeToString(srcChecksum), hex.EncodeToString(dstChecksum)))
	}

	return uint64(n), nil //nolint:gosec
}

func (h *Handler) hashFile(path string) ([]byte, error) {
	f, err := h.osHandler.Open(path)
	if err != nil {
		return nil, fmt.Errorf("(mover-hash) failed to open: %w", err)
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return nil, fmt.Errorf("(mover-hash) failed to read: %w", err)
	}

	return hasher.Sum(nil), nil
}

// verifyTree compares the staged tree with the resolved source, by summed
// size and by number of entries.
func (h *Handler) verifyTree(ctx context.Context, src *schema.ResolvedSource, staging string, rep *copyReport) error {
	size, entries, err := h.resolverHandler.Measure(ctx, staging)
	if err != nil {
		if kind, _ := schema.KindOf(err); kind == schema.KindInterrupted {
			return err
		}

		return schema.NewError(schema.KindVerificationFailed, staging, err)
	}

	if size != src.SizeBytes || size != rep.bytes || entries != src.EntryCount || entries != len(rep.entries) {
		return schema.NewError(schema.KindVerificationFailed, staging,
			fmt.Errorf("%w: %d bytes in %d entries (staged) != %d bytes in %d entries (source)",
				ErrTreeMismatch, size, entries, src.SizeBytes, src.EntryCount))
	}

	return nil
}

// revalidateDestination runs the destination checks once more, right before
// the staging entry is promoted. Any change is reported as a race.
func (h *Handler) revalidateDestination(completedBase string, dest string) error {
	if err := h.securityHandler.CheckBase(completedBase, roleCompletedBase); err != nil {
		return schema.NewError(schema.KindRaceDetected, completedBase, err)
	}

	if err := h.securityHandler.CheckPath(completedBase, dest, true); err != nil {
		return schema.NewError(schema.KindRaceDetected, dest, err)
	}

	if _, err := h.unixHandler.Lstat(dest); err == nil {
		return schema.NewError(schema.KindRaceDetected, dest, ErrDestinationAppeared)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return schema.NewError(schema.KindRaceDetected, dest, err)
	}

	return nil
}

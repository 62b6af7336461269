// Package resolver determines the concrete source of a move. A source is
// either named explicitly by the caller (and then validated and possibly
// promoted to its top-level entry), or auto-resolved by scanning the download
// base for the most recently completed file.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertwitch/handoff/internal/schema"
	"github.com/desertwitch/handoff/internal/security"
)

type securityProvider interface {
	CheckPath(base, path string, allowMissing bool) error
}

type statProvider interface {
	Lstat(path string) (*schema.Metadata, error)
}

type osProvider interface {
	EvalSymlinks(path string) (string, error)
	ReadDir(name string) ([]os.DirEntry, error)
}

type inUseProvider interface {
	OpenPaths(ctx context.Context) (map[string]struct{}, error)
}

// Handler is the principal implementation of the source resolution.
type Handler struct {
	securityHandler securityProvider
	statHandler     statProvider
	osHandler       osProvider
	inUseHandler    inUseProvider
	now             func() time.Time
}

// NewHandler returns a pointer to a new resolver [Handler]. The inUseHandler
// is optional; without it, candidates held open by other processes are not
// filtered out.
func NewHandler(securityHandler securityProvider, statHandler statProvider, osHandler osProvider,
	inUseHandler inUseProvider,
) *Handler {
	return &Handler{
		securityHandler: securityHandler,
		statHandler:     statHandler,
		osHandler:       osHandler,
		inUseHandler:    inUseHandler,
		now:             time.Now,
	}
}

// Resolve returns the validated source of the request. An explicit
// [schema.MoveRequest.SourcePath] is used when given, otherwise the download
// base is scanned (see [Handler.resolveAuto]).
func (h *Handler) Resolve(ctx context.Context, req *schema.MoveRequest) (*schema.ResolvedSource, error) {
	var path string
	var err error

	if req.SourcePath != "" {
		path, err = h.resolveExplicit(req)
	} else {
		path, err = h.resolveAuto(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	source, err := h.Describe(ctx, path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Resolved source:",
		"path", source.Path,
		"dir", source.IsDirectory,
		"size", source.SizeBytes,
		"entries", source.EntryCount,
	)

	return source, nil
}

// resolveExplicit validates a caller-given source. Relative paths are
// interpreted against the download base and must not escape it. A path more
// than one level below the download base is promoted to the top-level entry
// containing it when the policy asks for it.
func (h *Handler) resolveExplicit(req *schema.MoveRequest) (string, error) {
	base := filepath.Clean(req.DownloadBase)

	path := req.SourcePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	path = filepath.Clean(path)

	if !security.Within(base, path) {
		return "", schema.NewError(schema.KindPermissionDenied, path, nil).Because("source is outside of the download base %s", base)
	}

	if path == base {
		return "", schema.NewError(schema.KindPermissionDenied, path, nil).Because("source is the download base itself")
	}

	if req.Policy.PromoteNested {
		rel, _ := filepath.Rel(base, path)
		if top, _, nested := strings.Cut(rel, string(filepath.Separator)); nested {
			promoted := filepath.Join(base, top)

			slog.Info("Promoting nested source to its top-level entry.",
				"source", path,
				"promoted", promoted,
			)
			path = promoted
		}
	}

	if req.CompletedBase != "" && security.Within(path, req.CompletedBase) {
		return "", schema.NewError(schema.KindPermissionDenied, path, nil).Because("source contains the completed base %s", req.CompletedBase)
	}

	if err := h.securityHandler.CheckPath(base, path, false); err != nil {
		return "", err
	}

	return path, nil
}

// Describe measures the source at path without following symbolic links.
// The path itself must not be a symbolic link.
func (h *Handler) Describe(ctx context.Context, path string) (*schema.ResolvedSource, error) {
	md, err := h.statHandler.Lstat(path)
	if err != nil {
		return nil, schema.FromOSError(path, fmt.Errorf("(resolver-describe) failed to lstat: %w", err), schema.KindNotFound)
	}

	if md.IsSymlink {
		return nil, schema.NewError(schema.KindSymlinkRejected, path, nil)
	}

	if md.IsSpecial() {
		return nil, schema.NewError(schema.KindNotFound, path, nil).Because("not a regular file or directory")
	}

	size, entries, err := h.Measure(ctx, path)
	if err != nil {
		return nil, err
	}

	return &schema.ResolvedSource{
		Path:        path,
		IsDirectory: md.IsDir,
		SizeBytes:   size,
		EntryCount:  entries,
		ModifiedAt:  md.ModTime(),
		Metadata:    md,
	}, nil
}

// Measure walks the tree at path without following symbolic links. It
// returns the summed size of all regular files and the number of entries
// (including path itself).
func (h *Handler) Measure(ctx context.Context, path string) (uint64, int, error) {
	if ctx.Err() != nil {
		return 0, 0, schema.NewError(schema.KindInterrupted, path, ctx.Err())
	}

	md, err := h.statHandler.Lstat(path)
	if err != nil {
		return 0, 0, schema.FromOSError(path, fmt.Errorf("(resolver-measure) failed to lstat: %w", err), schema.KindNotFound)
	}

	if !md.IsDir {
		if md.IsRegular {
			return handleSize(md.Size), 1, nil
		}

		return 0, 1, nil
	}

	entries, err := h.osHandler.ReadDir(path)
	if err != nil {
		return 0, 0, schema.FromOSError(path, fmt.Errorf("(resolver-measure) failed to readdir: %w", err), schema.KindCopyFailed)
	}

	size, count := uint64(0), 1
	for _, entry := range entries {
		s, c, err := h.Measure(ctx, filepath.Join(path, entry.Name()))
		if err != nil {
			return 0, 0, err
		}
		size += s
		count += c
	}

	return size, count, nil
}

// handleSize converts a int64 size to a uint64 size (with sizes < 0 becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}

package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/desertwitch/handoff/internal/schema"
)

// aria2ControlSuffix marks the control file aria2 keeps next to a download
// for as long as it is incomplete.
const aria2ControlSuffix = ".aria2"

type candidate struct {
	path    string
	modTime time.Time
}

type scanReport struct {
	candidates []candidate
	skipped    int
	denied     int
}

// resolveAuto scans the download base for the most recently completed file.
// Candidates modified within the recency window are preferred; among them the
// newest wins, ties going to the lexicographically smallest path. Without a
// recent candidate, the newest overall wins if the policy allows the
// fallback. The winner is validated once more before it is returned.
func (h *Handler) resolveAuto(ctx context.Context, req *schema.MoveRequest) (string, error) {
	base := filepath.Clean(req.DownloadBase)

	report := &scanReport{}
	if err := h.scan(ctx, req, base, 1, report); err != nil {
		return "", err
	}

	if err := h.dropInUse(ctx, base, report); err != nil {
		return "", err
	}

	slog.Debug("Scanned download base:",
		"base", base,
		"candidates", len(report.candidates),
		"skipped", report.skipped,
		"denied", report.denied,
	)

	winner, ok := h.selectCandidate(report.candidates, req.Policy)
	if !ok {
		return "", schema.NewError(schema.KindNotFound, base, nil).Because("no completed file found (%d candidates, %d skipped, %d denied)",
			len(report.candidates), report.skipped, report.denied)
	}

	if err := h.securityHandler.CheckPath(base, winner.path, false); err != nil {
		return "", err
	}

	md, err := h.statHandler.Lstat(winner.path)
	if err != nil {
		return "", schema.NewError(schema.KindNotFound, winner.path, err).Because("candidate vanished after selection")
	}
	if !md.IsRegular || md.Size == 0 {
		return "", schema.NewError(schema.KindNotFound, winner.path, nil).Because("candidate changed after selection")
	}

	return winner.path, nil
}

// scan walks dir (at the given depth below the base) without following
// symbolic links. Unreadable subdirectories are logged and skipped.
func (h *Handler) scan(ctx context.Context, req *schema.MoveRequest, dir string, depth int, report *scanReport) error {
	if ctx.Err() != nil {
		return schema.NewError(schema.KindInterrupted, dir, ctx.Err())
	}

	entries, err := h.osHandler.ReadDir(dir)
	if err != nil {
		if depth == 1 {
			return schema.NewError(schema.KindInvalidBase, dir, err).Because("download base is not readable")
		}
		if errors.Is(err, fs.ErrPermission) {
			slog.Debug("Skipped directory: permission denied",
				"path", dir,
				"err", err,
			)
			report.denied++

			return nil
		}

		return schema.FromOSError(dir, fmt.Errorf("(resolver-scan) failed to readdir: %w", err), schema.KindCopyFailed)
	}

	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = struct{}{}
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return schema.NewError(schema.KindInterrupted, dir, ctx.Err())
		}

		path := filepath.Join(dir, entry.Name())

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			slog.Debug("Skipped candidate: symbolic link", "path", path)
			report.skipped++

		case entry.IsDir():
			if depth >= req.Policy.MaxDepth {
				report.skipped++

				continue
			}
			if err := h.scan(ctx, req, path, depth+1, report); err != nil {
				return err
			}

		case entry.Type().IsRegular():
			if c, ok := h.consider(req, path, entry, names, report); ok {
				report.candidates = append(report.candidates, c)
			}

		default:
			report.skipped++
		}
	}

	return nil
}

// consider applies the candidate filters to a regular file.
func (h *Handler) consider(req *schema.MoveRequest, path string, entry fs.DirEntry, siblings map[string]struct{}, report *scanReport) (candidate, bool) {
	if excluded, pattern := isExcluded(req.DownloadBase, path, req.Policy.ExcludePatterns); excluded {
		slog.Debug("Skipped candidate: excluded", "path", path, "pattern", pattern)
		report.skipped++

		return candidate{}, false
	}

	if _, incomplete := siblings[entry.Name()+aria2ControlSuffix]; incomplete {
		slog.Debug("Skipped candidate: aria2 control file present", "path", path)
		report.skipped++

		return candidate{}, false
	}

	info, err := entry.Info()
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			report.denied++
		} else {
			report.skipped++
		}
		slog.Debug("Skipped candidate: cannot stat", "path", path, "err", err)

		return candidate{}, false
	}

	if info.Size() == 0 {
		slog.Debug("Skipped candidate: empty file", "path", path)
		report.skipped++

		return candidate{}, false
	}

	return candidate{path: path, modTime: info.ModTime()}, true
}

// dropInUse removes the candidates that another process still holds open,
// such as a downloader that has not finished writing. Where open files
// cannot be looked up, all candidates are kept.
func (h *Handler) dropInUse(ctx context.Context, base string, report *scanReport) error {
	if h.inUseHandler == nil || len(report.candidates) == 0 {
		return nil
	}

	openPaths, err := h.inUseHandler.OpenPaths(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return schema.NewError(schema.KindInterrupted, base, ctx.Err())
		}
		slog.Debug("Skipped the open file check.", "err", err)

		return nil
	}

	// Open file tables hold fully resolved paths, the base may be a link.
	resolvedBase := base
	if resolved, err := h.osHandler.EvalSymlinks(base); err == nil {
		resolvedBase = resolved
	}

	kept := report.candidates[:0]
	for _, c := range report.candidates {
		rel, err := filepath.Rel(base, c.path)
		if err != nil {
			kept = append(kept, c)

			continue
		}

		if _, open := openPaths[filepath.Join(resolvedBase, rel)]; open {
			slog.Debug("Skipped candidate: held open by another process", "path", c.path)
			report.skipped++

			continue
		}
		kept = append(kept, c)
	}
	report.candidates = kept

	return nil
}

// isExcluded matches the path (relative to base, with forward slashes)
// against the exclusion globs. Invalid patterns never match.
func isExcluded(base, path string, patterns []string) (bool, string) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false, ""
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true, pattern
		}
	}

	return false, ""
}

func (h *Handler) selectCandidate(candidates []candidate, policy schema.ResolvePolicy) (candidate, bool) {
	if policy.RecencyWindow <= 0 {
		return newest(candidates)
	}

	cutoff := h.now().Add(-policy.RecencyWindow)

	var recent []candidate
	for _, c := range candidates {
		if !c.modTime.Before(cutoff) {
			recent = append(recent, c)
		}
	}

	if winner, ok := newest(recent); ok {
		return winner, true
	}

	if !policy.FallbackToNewest {
		return candidate{}, false
	}

	winner, ok := newest(candidates)
	if ok {
		slog.Info("No recently completed file: falling back to the newest file.",
			"path", winner.path,
			"window", policy.RecencyWindow,
		)
	}

	return winner, ok
}

// newest returns the most recently modified candidate. Ties are broken by
// the lexicographically smallest path.
func newest(candidates []candidate) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.modTime.After(best.modTime) || (c.modTime.Equal(best.modTime) && c.path < best.path) {
			best = c
		}
	}

	return best, true
}

package mover

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/desertwitch/handoff/internal/schema"
)

// maxStagingNameBytes bounds the part of the staging name taken from the
// source, keeping the full name below common filename length limits.
const maxStagingNameBytes = 128

//nolint:gochecknoglobals
var stagingPattern = regexp.MustCompile(`^\..*` + regexp.QuoteMeta(schema.StagingMarker) + `(\d+)\.(\d+)$`)

// stagingPath returns a hidden sibling of the destination, unique to this
// process and moment: .<name>.handoff-staging.<pid>.<unixnano>
func (h *Handler) stagingPath(completedBase string, name string) string {
	for len(name) > maxStagingNameBytes {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}

	return filepath.Join(completedBase, fmt.Sprintf(".%s%s%d.%d", name, schema.StagingMarker, h.unixHandler.Getpid(), h.now().UnixNano()))
}

// cleanupStaging removes a staging entry after a failure. A cleanup failure
// is logged, it never replaces the error that caused the cleanup.
func (h *Handler) cleanupStaging(staging string) {
	if err := h.osHandler.RemoveAll(staging); err != nil {
		slog.Error("Failed to clean up staging after failure.",
			"path", staging,
			"err", err,
		)
	}
}

// reapStaging removes staging entries left behind in the completed base by
// processes that no longer exist. It is best-effort.
func (h *Handler) reapStaging(completedBase string) {
	entries, err := h.osHandler.ReadDir(completedBase)
	if err != nil {
		slog.Debug("Skipped reaping stale staging: cannot read completed base.",
			"path", completedBase,
			"err", err,
		)

		return
	}

	self := h.unixHandler.Getpid()

	for _, entry := range entries {
		match := stagingPattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		pid, err := strconv.Atoi(match[1])
		if err != nil || pid == self || h.unixHandler.ProcessAlive(pid) {
			continue
		}

		path := filepath.Join(completedBase, entry.Name())
		if err := h.osHandler.RemoveAll(path); err != nil {
			slog.Warn("Failed to reap stale staging.",
				"path", path,
				"pid", pid,
				"err", err,
			)

			continue
		}

		slog.Info("Reaped stale staging of a terminated process.",
			"path", path,
			"pid", pid,
		)
	}
}

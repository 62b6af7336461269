// Package diskspace implements the free space preflight that runs before a
// cross-filesystem copy. Free space is always queried fresh from the
// operating system, immediately before it is needed.
package diskspace

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/desertwitch/handoff/internal/schema"
	"github.com/dustin/go-humanize"
)

// ErrUnsupported is the error a [statfsProvider] returns when the platform
// cannot report free space.
var ErrUnsupported = errors.ErrUnsupported

// statfsProvider defines the free space query needed for the preflight.
type statfsProvider interface {
	AvailableBytes(path string) (uint64, error)
}

// Handler is the principal implementation of the free space preflight.
type Handler struct {
	statfsHandler statfsProvider
}

// NewHandler returns a pointer to a new diskspace [Handler].
func NewHandler(statfsHandler statfsProvider) *Handler {
	return &Handler{
		statfsHandler: statfsHandler,
	}
}

// Required returns size plus cushion, saturating instead of overflowing.
func Required(size, cushion uint64) uint64 {
	if size > math.MaxUint64-cushion {
		return math.MaxUint64
	}

	return size + cushion
}

// Preflight checks that the filesystem holding path can take size bytes while
// keeping cushion bytes free. It succeeds if and only if the available space
// is at least size plus cushion, and fails with [schema.ErrInsufficientSpace]
// otherwise. When the platform cannot report free space, the returned report
// is marked unknown and the preflight passes.
func (h *Handler) Preflight(path string, size uint64, cushion uint64) (*schema.DiskSpaceReport, error) {
	report := &schema.DiskSpaceReport{
		Path:          path,
		RequiredBytes: Required(size, cushion),
		CushionBytes:  cushion,
	}

	available, err := h.statfsHandler.AvailableBytes(path)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			report.Unknown = true

			slog.Warn("Free space cannot be determined on this platform: skipping preflight.",
				"path", path,
			)

			return report, nil
		}

		return nil, fmt.Errorf("(diskspace-preflight) failed to get free space: %w", err)
	}
	report.AvailableBytes = available

	slog.Debug("Free space preflight:",
		"path", path,
		"required", humanize.IBytes(report.RequiredBytes),
		"available", humanize.IBytes(available),
		"cushion", humanize.IBytes(cushion),
	)

	if available < report.RequiredBytes {
		return report, &schema.MoveError{
			Kind:      schema.KindInsufficientSpace,
			Path:      path,
			Required:  report.RequiredBytes,
			Available: available,
		}
	}

	return report, nil
}

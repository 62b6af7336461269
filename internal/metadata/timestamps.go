package metadata

import (
	"fmt"

	"github.com/desertwitch/handoff/internal/schema"
)

func (h *Handler) ensureTimestamps(path string, metadata *schema.Metadata) error {
	if err := h.unixHandler.UtimesNoFollow(path, metadata.AccessedAt, metadata.ModifiedAt); err != nil {
		return fmt.Errorf("(metadata-times) failed to set timestamps: %w", err)
	}

	return nil
}

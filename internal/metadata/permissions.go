package metadata

import (
	"fmt"

	"github.com/desertwitch/handoff/internal/schema"
)

// ensurePermissions sets the mode bits. Symbolic links carry no mode of
// their own and are skipped.
func (h *Handler) ensurePermissions(path string, metadata *schema.Metadata) error {
	if metadata.IsSymlink {
		return nil
	}

	if err := h.unixHandler.Chmod(path, metadata.Perms); err != nil {
		return fmt.Errorf("(metadata-perms) failed to set permissions: %w", err)
	}

	return nil
}

func (h *Handler) ensureOwnership(path string, metadata *schema.Metadata) error {
	if err := h.unixHandler.Lchown(path, int(metadata.UID), int(metadata.GID)); err != nil {
		return fmt.Errorf("(metadata-owner) failed to set ownership: %w", err)
	}

	return nil
}

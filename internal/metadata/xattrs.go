package metadata

import (
	"errors"
	"fmt"
)

// ensureXattrs copies all extended attributes readable on srcPath onto
// dstPath. All attributes are attempted; the failures are joined. A source
// filesystem without extended attribute support has none to copy.
func (h *Handler) ensureXattrs(dstPath string, srcPath string) error {
	names, err := h.xattrHandler.ListXattrs(srcPath)
	if err != nil {
		if errors.Is(err, errors.ErrUnsupported) {
			return nil
		}

		return fmt.Errorf("(metadata-xattrs) failed to list: %w", err)
	}

	var errs []error
	for _, name := range names {
		value, err := h.xattrHandler.GetXattr(srcPath, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("(metadata-xattrs) failed to get %q: %w", name, err))

			continue
		}

		if err := h.xattrHandler.SetXattr(dstPath, name, value); err != nil {
			errs = append(errs, fmt.Errorf("(metadata-xattrs) failed to set %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

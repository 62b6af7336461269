package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	configDirPerms  = 0o700
	configFilePerms = 0o600
)

// Template returns a commented configuration file holding the defaults.
func Template() string {
	d := Defaults()

	var b strings.Builder

	b.WriteString("# handoff configuration\n")
	b.WriteString("# Every key can be overridden with a HANDOFF_<KEY> environment variable.\n\n")

	b.WriteString("# Directory where downloads are in progress (required, absolute).\n")
	fmt.Fprintf(&b, "%s=\n\n", KeyDownloadBase)

	b.WriteString("# Directory completed downloads are moved to (required, absolute).\n")
	fmt.Fprintf(&b, "%s=\n\n", KeyCompletedBase)

	b.WriteString("# One of debug, info, warn, error.\n")
	fmt.Fprintf(&b, "%s=%s\n\n", KeyLogLevel, d.LogLevel)

	b.WriteString("# Optional log file (absolute path), appended to as JSON lines.\n")
	fmt.Fprintf(&b, "%s=\n\n", KeyLogFile)

	b.WriteString("# Log to the console as JSON instead of text.\n")
	fmt.Fprintf(&b, "%s=%t\n\n", KeyLogJSON, d.LogJSON)

	b.WriteString("# Automatic source resolution: candidates modified within the window\n")
	b.WriteString("# are preferred (0 disables the window), otherwise the newest is used\n")
	b.WriteString("# when the fallback is enabled.\n")
	fmt.Fprintf(&b, "%s=%s\n", KeyRecentWindow, d.RecentWindow)
	fmt.Fprintf(&b, "%s=%t\n", KeyFallbackNewest, d.FallbackNewest)
	fmt.Fprintf(&b, "%s=%d\n", KeyScanDepth, d.ScanDepth)
	fmt.Fprintf(&b, "%s=%s\n\n", KeyExcludePatterns, strings.Join(d.ExcludePatterns, ","))

	b.WriteString("# Move the top-level entry containing a nested source path.\n")
	fmt.Fprintf(&b, "%s=%t\n\n", KeyPromoteNested, d.PromoteNested)

	b.WriteString("# Free space required on top of the source size for a copy.\n")
	fmt.Fprintf(&b, "%s=%s\n\n", KeySpaceCushion, humanize.IBytes(d.SpaceCushion))

	b.WriteString("# Metadata preserved on copies (metadata implies permissions).\n")
	fmt.Fprintf(&b, "%s=%t\n", KeyPreserveMetadata, d.PreserveMetadata)
	fmt.Fprintf(&b, "%s=%t\n", KeyPreservePermissions, d.PreservePermissions)

	return b.String()
}

// WriteTemplate writes the [Template] to path, creating missing parent
// directories. An existing file is never overwritten.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirPerms); err != nil {
		return fmt.Errorf("(config-init) failed to create parent: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, configFilePerms)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("(config-init) %w: %s", ErrConfigExists, path)
		}

		return fmt.Errorf("(config-init) failed to create: %w", err)
	}

	if _, err := f.WriteString(Template()); err != nil {
		f.Close()
		os.Remove(path)

		return fmt.Errorf("(config-init) failed to write: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)

		return fmt.Errorf("(config-init) failed to close: %w", err)
	}

	return nil
}

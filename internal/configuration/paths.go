package configuration

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// EnvConfigPath is the environment variable overriding the location of the
// configuration file.
const EnvConfigPath = "HANDOFF_CONFIG"

// DefaultPath returns the configuration file location under the user's
// XDG configuration directory.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "handoff", "handoff.conf")
}

// Path returns the location of the configuration file, in order of
// precedence: the given flag value, [EnvConfigPath] and [DefaultPath].
// The boolean result reports whether the location was chosen explicitly.
func (c *Handler) Path(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}

	if value, exists := c.lookupEnv(EnvConfigPath); exists && value != "" {
		return value, true
	}

	return DefaultPath(), false
}

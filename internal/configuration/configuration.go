// Package configuration loads the settings of handoff. Settings come from
// built-in defaults, a KEY=VALUE configuration file, and HANDOFF_<KEY>
// environment variables, in increasing order of precedence. Command line
// flags are applied on top by the caller, before [Validate] is run.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/desertwitch/handoff/internal/schema"
	"github.com/dustin/go-humanize"
)

// Configuration keys, as used in the configuration file. The environment
// variables carry the [EnvPrefix] in addition.
const (
	KeyDownloadBase        = "DOWNLOAD_BASE"
	KeyCompletedBase       = "COMPLETED_BASE"
	KeyLogLevel            = "LOG_LEVEL"
	KeyLogFile             = "LOG_FILE"
	KeyLogJSON             = "LOG_JSON"
	KeyRecentWindow        = "RECENT_WINDOW"
	KeyFallbackNewest      = "FALLBACK_NEWEST"
	KeyScanDepth           = "SCAN_DEPTH"
	KeySpaceCushion        = "SPACE_CUSHION"
	KeyExcludePatterns     = "EXCLUDE_PATTERNS"
	KeyPromoteNested       = "PROMOTE_NESTED"
	KeyPreserveMetadata    = "PRESERVE_METADATA"
	KeyPreservePermissions = "PRESERVE_PERMISSIONS"

	// EnvPrefix is prepended to a key to form its environment variable.
	EnvPrefix = "HANDOFF_"
)

//nolint:gochecknoglobals
var allKeys = []string{
	KeyDownloadBase, KeyCompletedBase, KeyLogLevel, KeyLogFile, KeyLogJSON,
	KeyRecentWindow, KeyFallbackNewest, KeyScanDepth, KeySpaceCushion,
	KeyExcludePatterns, KeyPromoteNested, KeyPreserveMetadata, KeyPreservePermissions,
}

type genericConfigProvider interface {
	Read(filename string) (envMap map[string]string, err error)
	Marshal(envMap map[string]string) (string, error)
}

// Config is the principal structure holding the application configuration.
type Config struct {
	DownloadBase        string `validate:"required,abspath"`
	CompletedBase       string `validate:"required,abspath,nefield=DownloadBase"`
	LogLevel            string `validate:"oneof=debug info warn error"`
	LogFile             string `validate:"omitempty,abspath"`
	LogJSON             bool
	RecentWindow        time.Duration `validate:"gte=0"`
	FallbackNewest      bool
	ScanDepth           int `validate:"gte=1,lte=32"`
	SpaceCushion        uint64
	ExcludePatterns     []string `validate:"dive,required,glob"`
	PromoteNested       bool
	PreserveMetadata    bool
	PreservePermissions bool

	// Source is the configuration file the values were read from, if any.
	Source string `validate:"-"`
}

// Defaults returns a pointer to a new [Config] holding the built-in defaults.
func Defaults() *Config {
	return &Config{
		LogLevel:        "info",
		RecentWindow:    schema.DefaultRecencyWindow,
		FallbackNewest:  true,
		ScanDepth:       schema.DefaultMaxDepth,
		SpaceCushion:    schema.DefaultSpaceCushion,
		ExcludePatterns: schema.DefaultExcludePatterns(),
		PromoteNested:   true,
	}
}

// Request returns the [schema.MoveRequest] described by the configuration.
func (cfg *Config) Request(sourcePath string, dryRun bool) *schema.MoveRequest {
	return &schema.MoveRequest{
		DownloadBase:  cfg.DownloadBase,
		CompletedBase: cfg.CompletedBase,
		SourcePath:    sourcePath,
		Flags: schema.Flags{
			DryRun:              dryRun,
			PreserveMetadata:    cfg.PreserveMetadata,
			PreservePermissions: cfg.PreservePermissions || cfg.PreserveMetadata,
		},
		Policy: schema.ResolvePolicy{
			RecencyWindow:    cfg.RecentWindow,
			FallbackToNewest: cfg.FallbackNewest,
			MaxDepth:         cfg.ScanDepth,
			ExcludePatterns:  cfg.ExcludePatterns,
			PromoteNested:    cfg.PromoteNested,
		},
		SpaceCushion: cfg.SpaceCushion,
	}
}

// Handler is the principal implementation of the configuration loading.
type Handler struct {
	ConfigProvider genericConfigProvider
	lookupEnv      func(key string) (string, bool)
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configProvider genericConfigProvider) *Handler {
	return &Handler{
		ConfigProvider: configProvider,
		lookupEnv:      os.LookupEnv,
	}
}

// Load returns the defaults, overlaid by the configuration file at path
// (unless empty) and then by the environment. A missing file is only an
// error if mustExist is set. The result is not yet validated.
func (c *Handler) Load(path string, mustExist bool) (*Config, error) {
	cfg := Defaults()
	envMap := make(map[string]string)

	if path != "" {
		fileMap, err := c.ConfigProvider.Read(path)
		switch {
		case err == nil:
			envMap = fileMap
			cfg.Source = path
		case errors.Is(err, fs.ErrNotExist) && !mustExist:
		default:
			return nil, fmt.Errorf("(config-load) failed to read %s: %w", path, err)
		}
	}

	for _, key := range allKeys {
		if value, exists := c.lookupEnv(EnvPrefix + key); exists {
			envMap[key] = value
		}
	}

	if err := c.apply(envMap, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Handler) apply(envMap map[string]string, cfg *Config) error {
	return errors.Join(
		c.MapKeyToString(envMap, KeyDownloadBase, &cfg.DownloadBase),
		c.MapKeyToString(envMap, KeyCompletedBase, &cfg.CompletedBase),
		c.MapKeyToString(envMap, KeyLogLevel, &cfg.LogLevel),
		c.MapKeyToString(envMap, KeyLogFile, &cfg.LogFile),
		c.MapKeyToBool(envMap, KeyLogJSON, &cfg.LogJSON),
		c.MapKeyToDuration(envMap, KeyRecentWindow, &cfg.RecentWindow),
		c.MapKeyToBool(envMap, KeyFallbackNewest, &cfg.FallbackNewest),
		c.MapKeyToInt(envMap, KeyScanDepth, &cfg.ScanDepth),
		c.MapKeyToBytes(envMap, KeySpaceCushion, &cfg.SpaceCushion),
		c.MapKeyToList(envMap, KeyExcludePatterns, &cfg.ExcludePatterns),
		c.MapKeyToBool(envMap, KeyPromoteNested, &cfg.PromoteNested),
		c.MapKeyToBool(envMap, KeyPreserveMetadata, &cfg.PreserveMetadata),
		c.MapKeyToBool(envMap, KeyPreservePermissions, &cfg.PreservePermissions),
	)
}

// Marshal renders the configuration in the configuration file format.
func (c *Handler) Marshal(cfg *Config) (string, error) {
	return c.ConfigProvider.Marshal(map[string]string{
		KeyDownloadBase:        cfg.DownloadBase,
		KeyCompletedBase:       cfg.CompletedBase,
		KeyLogLevel:            cfg.LogLevel,
		KeyLogFile:             cfg.LogFile,
		KeyLogJSON:             strconv.FormatBool(cfg.LogJSON),
		KeyRecentWindow:        cfg.RecentWindow.String(),
		KeyFallbackNewest:      strconv.FormatBool(cfg.FallbackNewest),
		KeyScanDepth:           strconv.Itoa(cfg.ScanDepth),
		KeySpaceCushion:        humanize.IBytes(cfg.SpaceCushion),
		KeyExcludePatterns:     strings.Join(cfg.ExcludePatterns, ","),
		KeyPromoteNested:       strconv.FormatBool(cfg.PromoteNested),
		KeyPreserveMetadata:    strconv.FormatBool(cfg.PreserveMetadata),
		KeyPreservePermissions: strconv.FormatBool(cfg.PreservePermissions),
	})
}

// MapKeyToString sets target to the value of key, if it is present.
func (c *Handler) MapKeyToString(envMap map[string]string, key string, target *string) error {
	if value, exists := envMap[key]; exists {
		*target = strings.TrimSpace(value)
	}

	return nil
}

// MapKeyToBool sets target to the boolean value of key, if it is present
// and not empty.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string, target *bool) error {
	value := strings.TrimSpace(envMap[key])
	if value == "" {
		return nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, key, value)
	}
	*target = b

	return nil
}

// MapKeyToInt sets target to the integer value of key, if it is present and
// not empty.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string, target *int) error {
	value := strings.TrimSpace(envMap[key])
	if value == "" {
		return nil
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, value)
	}
	*target = i

	return nil
}

// MapKeyToDuration sets target to the duration value of key, if it is
// present and not empty. Plain numbers are taken as seconds.
func (c *Handler) MapKeyToDuration(envMap map[string]string, key string, target *time.Duration) error {
	value := strings.TrimSpace(envMap[key])
	if value == "" {
		return nil
	}

	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		*target = time.Duration(secs) * time.Second

		return nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidValue, key, value)
	}
	*target = d

	return nil
}

// MapKeyToBytes sets target to the size value of key (such as "4MiB" or
// "100 MB"), if it is present and not empty.
func (c *Handler) MapKeyToBytes(envMap map[string]string, key string, target *uint64) error {
	value := strings.TrimSpace(envMap[key])
	if value == "" {
		return nil
	}

	size, err := humanize.ParseBytes(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a size", ErrInvalidValue, key, value)
	}
	*target = size

	return nil
}

// MapKeyToList sets target to the comma separated values of key, if it is
// present. An empty value results in an empty list.
func (c *Handler) MapKeyToList(envMap map[string]string, key string, target *[]string) error {
	value, exists := envMap[key]
	if !exists {
		return nil
	}

	list := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	*target = list

	return nil
}

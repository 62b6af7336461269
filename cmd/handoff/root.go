package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"github.com/desertwitch/handoff/internal/configuration"
	"github.com/desertwitch/handoff/internal/diskspace"
	"github.com/desertwitch/handoff/internal/inuse"
	"github.com/desertwitch/handoff/internal/metadata"
	"github.com/desertwitch/handoff/internal/mover"
	"github.com/desertwitch/handoff/internal/platform"
	"github.com/desertwitch/handoff/internal/resolver"
	"github.com/desertwitch/handoff/internal/schema"
	"github.com/desertwitch/handoff/internal/security"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options holds the command line flags of the root command.
type options struct {
	configPath          string
	sourcePath          string
	downloadBase        string
	completedBase       string
	dryRun              bool
	preserveMetadata    bool
	preservePermissions bool
	recentWindow        time.Duration
	noFallback          bool
	logLevel            string
	debug               bool
	json                bool
	logFile             string
	cpuProfile          string
	memProfile          string
}

// hookArgs are the positional arguments aria2 passes to a completion hook.
type hookArgs struct {
	gid        string
	numFiles   int
	sourcePath string
}

func parseHookArgs(args []string) (hookArgs, error) {
	var h hookArgs

	if len(args) > 0 {
		h.gid = args[0]
	}

	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return h, fmt.Errorf("%w: %q", ErrInvalidNumFiles, args[1])
		}
		h.numFiles = n
	}

	if len(args) > 2 { //nolint:mnd
		h.sourcePath = args[2]
	}

	return h, nil
}

func newRootCommand(logs *logSetup, out *printer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "handoff [gid] [num-files] [source-path]",
		Short: "Safely move a completed download into the completed directory",
		Long: `handoff moves one completed download (a file or a directory) from the
download base into the completed base. The move is an atomic rename where
possible, otherwise a verified copy through a hidden staging entry that is
renamed into place. Existing destinations are never overwritten.

It is meant to be configured as aria2's on-download-complete hook, which
passes the gid, the number of files and the path of the first file. Without
a source path, the most recently completed file in the download base is
moved.`,
		Args:          cobra.MaximumNArgs(3), //nolint:mnd
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(cmd.Context(), cmd.Flags(), opts, args, logs, out)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"configuration file (default $"+configuration.EnvConfigPath+" or "+configuration.DefaultPath()+")")

	flags := cmd.Flags()
	flags.StringVarP(&opts.sourcePath, "source-path", "s", "", "source path (overrides the positional source path)")
	flags.StringVar(&opts.downloadBase, "download-base", "", "override the download base directory")
	flags.StringVar(&opts.completedBase, "completed-base", "", "override the completed base directory")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "show what would be done, without changing anything")
	flags.BoolVar(&opts.preserveMetadata, "preserve-metadata", false,
		"preserve permissions, ownership, timestamps and extended attributes on copies")
	flags.BoolVar(&opts.preservePermissions, "preserve-permissions", false, "preserve permissions on copies")
	flags.DurationVar(&opts.recentWindow, "recent-window", schema.DefaultRecencyWindow,
		"prefer candidates modified within this window when resolving automatically (0 = unbounded)")
	flags.BoolVar(&opts.noFallback, "no-fallback", false, "fail instead of using the newest candidate outside the window")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging (shorthand for --log-level debug)")
	flags.BoolVar(&opts.json, "json", false, "emit console logs as JSON")
	flags.StringVar(&opts.logFile, "log-file", "", "also append JSON logs to this file")
	flags.StringVar(&opts.cpuProfile, "cpuprofile", "", "write a cpu profile to this file")
	flags.StringVar(&opts.memProfile, "memprofile", "", "write an allocation profile to this file")
	_ = flags.MarkHidden("cpuprofile")
	_ = flags.MarkHidden("memprofile")

	cmd.AddCommand(newConfigCommand(opts, out))
	cmd.AddCommand(newVersionCommand(out))

	return cmd
}

// applyFlags overlays the explicitly given flags onto the configuration.
func applyFlags(flags *pflag.FlagSet, opts *options, cfg *configuration.Config) error {
	if flags.Changed("download-base") {
		abs, err := filepath.Abs(opts.downloadBase)
		if err != nil {
			return fmt.Errorf("(flags) download base: %w", err)
		}
		cfg.DownloadBase = abs
	}

	if flags.Changed("completed-base") {
		abs, err := filepath.Abs(opts.completedBase)
		if err != nil {
			return fmt.Errorf("(flags) completed base: %w", err)
		}
		cfg.CompletedBase = abs
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	} else if opts.debug {
		cfg.LogLevel = "debug"
	}

	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	if flags.Changed("recent-window") {
		cfg.RecentWindow = opts.recentWindow
	}

	if opts.noFallback {
		cfg.FallbackNewest = false
	}

	if opts.json {
		cfg.LogJSON = true
	}

	if opts.preserveMetadata {
		cfg.PreserveMetadata = true
	}

	if opts.preservePermissions {
		cfg.PreservePermissions = true
	}

	return nil
}

// loadConfig returns the validated configuration with the flags applied.
func loadConfig(flags *pflag.FlagSet, opts *options) (*configuration.Config, error) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	path, explicit := configHandler.Path(opts.configPath)

	cfg, err := configHandler.Load(path, explicit)
	if err != nil {
		return nil, err
	}

	if err := applyFlags(flags, opts, cfg); err != nil {
		return nil, err
	}

	if err := configuration.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runMove(ctx context.Context, flags *pflag.FlagSet, opts *options, args []string, logs *logSetup, out *printer) error {
	hook, err := parseHookArgs(args)
	if err != nil {
		return err
	}

	sourcePath := hook.sourcePath
	if opts.sourcePath != "" {
		sourcePath = opts.sourcePath
	}

	cfg, err := loadConfig(flags, opts)
	if err != nil {
		slog.Error("Configuration is invalid.", "err", err)

		return err
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logs.SetLevel(level)
	logs.SetConsole(cfg.LogJSON)

	osProvider := &platform.OS{}
	unixProvider := &platform.Unix{}

	securityHandler := security.NewHandler(unixProvider, unixProvider)

	if cfg.LogFile != "" {
		if err := logs.AttachFile(cfg.LogFile, securityHandler); err != nil {
			slog.Error("Failed to open the log file.", "path", cfg.LogFile, "err", err)

			return err
		}
	}

	profiler := startProfiling(opts.cpuProfile, opts.memProfile)
	defer profiler.Stop()

	inUseHandler := inuse.NewChecker(osProvider, unixProvider.Getpid())
	resolverHandler := resolver.NewHandler(securityHandler, unixProvider, osProvider, inUseHandler)
	spaceHandler := diskspace.NewHandler(unixProvider)
	metadataHandler := metadata.NewHandler(unixProvider, unixProvider)
	moverHandler := mover.NewHandler(osProvider, unixProvider, securityHandler,
		resolverHandler, spaceHandler, metadataHandler)

	slog.Debug("Starting handoff.",
		"gid", hook.gid,
		"numFiles", hook.numFiles,
		"source", sourcePath,
		"config", cfg.Source,
		"downloadBase", cfg.DownloadBase,
		"completedBase", cfg.CompletedBase,
		"dryRun", opts.dryRun,
	)

	outcome, err := moverHandler.Execute(ctx, cfg.Request(sourcePath, opts.dryRun))
	if err != nil {
		kind, _ := schema.KindOf(err)
		slog.Error("Move failed.",
			"kind", kind.String(),
			"gid", hook.gid,
			"err", err,
		)

		return err
	}

	for _, w := range outcome.Warnings {
		slog.Warn("Move completed with a warning.",
			"step", w.Step,
			"path", w.Path,
			"err", w.Err,
		)
	}

	slog.Info("Move completed.",
		"method", outcome.Method.String(),
		"bytes", humanize.IBytes(outcome.BytesMoved),
		"src", outcome.SourcePath,
		"dst", outcome.DestinationPath,
		"dryRun", outcome.DryRun,
		"warnings", len(outcome.Warnings),
	)

	out.Outcome(outcome)

	return nil
}

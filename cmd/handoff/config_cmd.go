package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/desertwitch/handoff/internal/configuration"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *options, out *printer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the location of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
			path, explicit := configHandler.Path(opts.configPath)

			fmt.Fprintln(out.stdout, path)

			_, err := os.Stat(path)
			switch {
			case err == nil:
				out.Info("the configuration file exists")
			case errors.Is(err, fs.ErrNotExist) && explicit:
				out.Info("the configuration file does not exist")
			case errors.Is(err, fs.ErrNotExist):
				out.Info("the configuration file does not exist, run 'handoff config init' to create it")
			default:
				return fmt.Errorf("(config-path) %w", err)
			}

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration from file and environment",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
			path, explicit := configHandler.Path(opts.configPath)

			cfg, err := configHandler.Load(path, explicit)
			if err != nil {
				return err
			}

			data, err := configHandler.Marshal(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(out.stdout, data)

			if err := configuration.Validate(cfg); err != nil {
				return err
			}

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented configuration template (never overwrites)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
			path, _ := configHandler.Path(opts.configPath)

			if err := configuration.WriteTemplate(path); err != nil {
				return err
			}

			out.Success("wrote a configuration template to " + path)
			out.Info("set DOWNLOAD_BASE and COMPLETED_BASE in it before the first run")

			return nil
		},
	})

	return cmd
}

package main

import (
	"fmt"

	"github.com/jamesainslie/seek/pkg/seek/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage seek configuration settings.

Configuration is loaded from:
  1. --config FILE (if given)
  2. $XDG_CONFIG_HOME/seek/config.yaml (if set)
  3. ~/.config/seek/config.yaml

Environment variables override config file settings using the SEEK_ prefix:
  SEEK_OUTPUT=jsonl
  SEEK_STRICT=true
  SEEK_EXCLUDE=.git,node_modules
  SEEK_LOGGING_LEVEL=debug`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the effective configuration, merged from all sources, as YAML.`,
		Args:  cobra.NoArgs,
		RunE:  a.runConfigShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Long:  `Display the path of the configuration file in use, or the default location.`,
		Args:  cobra.NoArgs,
		RunE:  a.runConfigPath,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long:  `Create a commented default configuration file if one doesn't exist.`,
		Args:  cobra.NoArgs,
		RunE:  a.runConfigInit,
	})

	return cmd
}

// runConfigShow displays the effective configuration.
func (a *app) runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if used := a.v.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# config file: %s\n", used)
	} else {
		fmt.Fprintln(out, "# config file: (none found, using defaults)")
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(a.cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}

// runConfigPath shows the config file path.
func (a *app) runConfigPath(cmd *cobra.Command, args []string) error {
	path := a.v.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = config.ConfigPath(); err != nil {
			return fmt.Errorf("failed to get config directory: %w", err)
		}
		logger.Debug("config file does not exist, defaults in use", "path", path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// runConfigInit creates a default config file.
func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	path, created, err := config.WriteDefault()
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if !created {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file already exists: %s\n", path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created default config file: %s\n", path)
	return nil
}

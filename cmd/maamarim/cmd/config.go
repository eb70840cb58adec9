package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/maamarim/configs"
	"github.com/Aman-CERP/maamarim/internal/config"
	"github.com/Aman-CERP/maamarim/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage maamarim configuration.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/maamarim/config.yaml)
  3. Project config (.maamarim.yaml, .maamarim.yml, .maamarim.toml, or --config)
  4. .env in the working directory
  5. Environment variables (MAAMARIM_*)
  6. Command-line flags`,
		Example: `  # Write .maamarim.yaml from the template
  maamarim config init

  # Show effective configuration
  maamarim config show`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force, user bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file from the template",
		Long: `Write the configuration template to .maamarim.yaml in the working
directory, or with --user to the user configuration file.

An existing file is left alone unless --force is given, in which case it
is backed up first (the newest three backups are kept).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ProjectConfigNames[0]
			if user {
				path = config.GetUserConfigPath()
			}
			return runConfigInit(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file (a backup is kept)")
	cmd.Flags().BoolVar(&user, "user", false, "Write the user config instead of .maamarim.yaml")

	return cmd
}

func runConfigInit(cmd *cobra.Command, path string, force bool) error {
	out := output.New(cmd.OutOrStdout())

	if _, err := os.Stat(path); err == nil {
		if !force {
			out.Warningf("Configuration already exists: %s", path)
			out.Status("💡", "Use --force to overwrite (a backup is kept)")
			return nil
		}
		backup, err := config.BackupFile(path)
		if err != nil {
			return err
		}
		out.Statusf("💾", "Backup: %s", backup)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configs.ProjectConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out.Successf("Created configuration: %s", path)
	out.Status("📋", "Run 'maamarim config show' to verify")
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the configuration after merging every source and flag.
Secrets are masked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			shown := cfg.Redacted()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(shown)
			}

			data, err := shown.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print configuration file paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(cmd.OutOrStdout())
			project := config.FindProjectConfig(".")
			if flags.configFile != "" {
				project = flags.configFile
			}
			if project == "" {
				project = "(none)"
			}
			out.KeyValue(
				[2]string{"User", config.GetUserConfigPath()},
				[2]string{"Project", project},
			)
			return nil
		},
	}
}

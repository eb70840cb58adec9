// Package cmd provides the CLI commands for maamarim.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/maamarim/internal/config"
	merrors "github.com/Aman-CERP/maamarim/internal/errors"
	"github.com/Aman-CERP/maamarim/internal/logging"
	"github.com/Aman-CERP/maamarim/internal/profiling"
	"github.com/Aman-CERP/maamarim/pkg/version"
)

// globalFlags are the persistent flags shared by every command. Non-empty
// values override the loaded configuration.
type globalFlags struct {
	debug      bool
	logLevel   string
	configFile string
	input      string
	outputDir  string
	noTUI      bool
	noColor    bool
	profiles   profiling.Options
}

var (
	flags          globalFlags
	loggingCleanup func()
	profile        *profiling.Session

	// runID tags every log line of one invocation.
	runID     string
	logOutput io.Writer = os.Stderr
)

// NewRootCmd creates the root command for the maamarim CLI.
func NewRootCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "maamarim",
		Short: "Build search indexes and chunked exports of the maamarim collection",
		Long: `maamarim derives search artifacts from maamarim_structured.json.

  index   facet indexes (topics, concepts, dates, references, opening
          phrases, glossary terms) and a plain-text quick reference
  split   fixed-size chunk files, one file per document, and a master
          index from facet values to chunks

Run without a subcommand to do both.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runAll(ctx, cmd, jsonOutput)
		},
	}

	cmd.SetVersionTemplate("maamarim version {{.Version}}\n")

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print run statistics as JSON")

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging to ~/.maamarim/logs/")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.configFile, "config", "", "Config file to use instead of .maamarim.yaml")
	pf.StringVarP(&flags.input, "input", "i", "", "Input collection (default maamarim_structured.json)")
	pf.StringVarP(&flags.outputDir, "output-dir", "o", "", "Output root directory (default .)")
	pf.BoolVar(&flags.noTUI, "no-tui", false, "Disable TUI mode, use plain text output")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&flags.profiles.CPU, "profile-cpu", "", "Write CPU profile to file")
	pf.StringVar(&flags.profiles.Heap, "profile-mem", "", "Write memory profile to file")
	pf.StringVar(&flags.profiles.Trace, "profile-trace", "", "Write execution trace to file")

	cmd.PersistentPreRunE = startRun
	cmd.PersistentPostRunE = stopRun

	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newSplitCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// startRun installs the logger and starts any requested profiles.
func startRun(cmd *cobra.Command, args []string) error {
	if err := startLogging(cmd, args); err != nil {
		return err
	}
	if !flags.profiles.Enabled() {
		return nil
	}
	s, err := profiling.Start(flags.profiles)
	if err != nil {
		return err
	}
	profile = s
	return nil
}

// stopRun writes requested profiles and closes the debug log.
func stopRun(cmd *cobra.Command, args []string) error {
	var err error
	if profile != nil {
		err = profile.Stop()
		profile = nil
	}
	return errors.Join(err, stopLogging(cmd, args))
}

// startLogging installs the process logger. Without --debug it is a text
// logger on stderr at the flag or MAAMARIM_LOG_LEVEL level; the configured
// level is applied later by loadConfig.
func startLogging(cmd *cobra.Command, _ []string) error {
	runID = logging.NewRunID()
	logOutput = cmd.ErrOrStderr()

	if flags.debug {
		cfg := logging.DebugConfig()
		cfg.Stderr = logOutput
		logger, cleanup, err := logging.Setup(cfg)
		if err != nil {
			return fmt.Errorf("failed to setup debug logging: %w", err)
		}
		loggingCleanup = cleanup
		slog.SetDefault(logging.WithRunID(logger, runID))
		slog.Info("debug_logging_enabled",
			slog.String("log_file", logging.DefaultLogPath()),
			slog.String("version", version.Version))
		return nil
	}

	level := flags.logLevel
	if level == "" {
		level = os.Getenv("MAAMARIM_LOG_LEVEL")
	}
	installStderrLogger(level)
	slog.Debug("run_started", slog.String("command", cmd.CommandPath()))
	return nil
}

// installStderrLogger replaces the console logger, keeping the run's id.
func installStderrLogger(level string) {
	cfg := logging.DefaultConfig()
	cfg.Stderr = logOutput
	if level != "" {
		cfg.Level = level
	}
	logger, _, _ := logging.Setup(cfg)
	slog.SetDefault(logging.WithRunID(logger, runID))
}

func stopLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		slog.Info("debug_logging_stopped")
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		slog.Debug("command_failed", slog.Any("error", merrors.FormatForLog(err)))
	}
	_ = stopRun(nil, nil)
	return err
}

// loadConfig loads configuration for the working directory and applies
// the persistent flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(".", flags.configFile)
	if err != nil {
		return nil, err
	}

	if flags.input != "" {
		cfg.Input = flags.input
	}
	if flags.outputDir != "" {
		cfg.OutputDir = flags.outputDir
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.noTUI {
		cfg.UI.NoTUI = true
	}
	if flags.noColor {
		cfg.UI.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !flags.debug && flags.logLevel == "" {
		installStderrLogger(cfg.Logging.Level)
	}

	slog.Debug("config_loaded",
		slog.String("input", cfg.Input),
		slog.String("output_dir", cfg.OutputDir),
		slog.String("backend", cfg.Store.Backend),
		slog.Int("docs_per_chunk", cfg.Split.DocsPerChunk))

	return cfg, nil
}

// runAll runs the Indexer and then the Splitter.
func runAll(ctx context.Context, cmd *cobra.Command, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	indexResult, err := runIndex(ctx, cmd, cfg, s)
	if err != nil {
		return err
	}
	splitResult, err := runSplit(ctx, cmd, cfg, s)
	if err != nil {
		return err
	}

	reports := newReportRenderer(cmd, cfg)
	if jsonOutput {
		return reports.RenderJSON(map[string]any{
			"index": indexResult.Report,
			"split": splitResult.Report,
		})
	}
	if err := reports.RenderIndex(indexResult.Report); err != nil {
		return err
	}
	return reports.RenderSplit(splitResult.Report)
}

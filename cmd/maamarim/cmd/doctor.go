package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	merrors "github.com/Aman-CERP/maamarim/internal/errors"
	"github.com/Aman-CERP/maamarim/internal/preflight"
)

func newDoctorCmd() *cobra.Command {
	var (
		verbose    bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that index and split runs can succeed",
		Long: `Run preflight checks against the effective configuration.

Checks:
  - Input collection is readable and valid JSON
  - Output root is writable (local store)
  - Free disk space at the output root (three times the input size)
  - Bucket is reachable (minio store)

Use --verbose for detailed diagnostic information.
Use --json for machine-readable output.`,
		Example: `  # Run diagnostics
  maamarim doctor

  # JSON output for scripting
  maamarim doctor --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, verbose, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed diagnostic info")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runDoctor(cmd *cobra.Command, verbose, jsonOutput bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	checker := preflight.New(
		preflight.WithVerbose(verbose),
		preflight.WithOutput(cmd.OutOrStdout()),
		preflight.WithStoreProbe(func(ctx context.Context) error {
			_, err := openStore(ctx, cfg)
			return err
		}),
	)

	results := checker.RunAll(ctx, preflight.Target{
		Input:     cfg.Input,
		OutputDir: cfg.OutputDir,
		Remote:    cfg.Store.UsesMinio(),
	})

	if jsonOutput {
		if err := outputDoctorJSON(cmd, checker, results); err != nil {
			return err
		}
	} else {
		checker.PrintResults(results)
	}

	if checker.HasCriticalFailures(results) {
		return merrors.New(merrors.ErrCodeInvalidInput, "preflight check failed", nil).
			WithSuggestion("Run 'maamarim doctor --verbose' for details")
	}
	return nil
}

// doctorOutput is the structure for JSON output.
type doctorOutput struct {
	Status   string              `json:"status"`
	Checks   []doctorCheckResult `json:"checks"`
	Warnings []string            `json:"warnings,omitempty"`
	Errors   []string            `json:"errors,omitempty"`
}

// doctorCheckResult is a single check result for JSON output.
type doctorCheckResult struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Message  string `json:"message"`
	Required bool   `json:"required"`
	Details  string `json:"details,omitempty"`
}

func outputDoctorJSON(cmd *cobra.Command, checker *preflight.Checker, results []preflight.CheckResult) error {
	out := doctorOutput{
		Status: checker.SummaryStatus(results),
		Checks: make([]doctorCheckResult, len(results)),
	}

	for i, r := range results {
		out.Checks[i] = doctorCheckResult{
			Name:     r.Name,
			Status:   statusToString(r.Status),
			Message:  r.Message,
			Required: r.Required,
			Details:  r.Details,
		}

		if r.IsCritical() {
			out.Errors = append(out.Errors, r.Name+": "+r.Message)
		} else if r.Status == preflight.StatusWarn {
			out.Warnings = append(out.Warnings, r.Name+": "+r.Message)
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func statusToString(s preflight.CheckStatus) string {
	switch s {
	case preflight.StatusPass:
		return "pass"
	case preflight.StatusWarn:
		return "warn"
	case preflight.StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

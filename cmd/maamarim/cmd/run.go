package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/maamarim/internal/config"
	merrors "github.com/Aman-CERP/maamarim/internal/errors"
	"github.com/Aman-CERP/maamarim/internal/index"
	"github.com/Aman-CERP/maamarim/internal/split"
	"github.com/Aman-CERP/maamarim/internal/store"
	"github.com/Aman-CERP/maamarim/internal/ui"
)

// openStore returns the artifact sink selected by store.backend.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if !cfg.Store.UsesMinio() {
		return store.NewLocalStore(cfg.OutputDir), nil
	}
	m := cfg.Store.Minio
	return store.OpenMinio(ctx, store.MinioConfig{
		Endpoint:  m.Endpoint,
		Bucket:    m.Bucket,
		Prefix:    m.Prefix,
		AccessKey: m.AccessKey,
		SecretKey: m.SecretKey,
		UseSSL:    m.UseSSL,
	})
}

// newRenderer returns a progress renderer on stderr, leaving stdout for
// run statistics.
func newRenderer(cmd *cobra.Command, cfg *config.Config, title string) ui.Renderer {
	return ui.NewRenderer(ui.NewConfig(cmd.ErrOrStderr(),
		ui.WithForcePlain(cfg.UI.NoTUI),
		ui.WithNoColor(cfg.UI.NoColor || ui.DetectNoColor()),
		ui.WithSpinnerStyle(cfg.UI.SpinnerStyle),
		ui.WithTitle(title),
	))
}

func newReportRenderer(cmd *cobra.Command, cfg *config.Config) *ui.ReportRenderer {
	return ui.NewReportRenderer(cmd.OutOrStdout(), cfg.UI.NoColor || ui.DetectNoColor())
}

// reportFailure shows err in the renderer and logs it.
func reportFailure(ctx context.Context, renderer ui.Renderer, job string, err error) {
	renderer.AddError(ui.ErrorEvent{Err: err})
	level := slog.LevelWarn
	if merrors.IsFatal(err) {
		level = slog.LevelError
	}
	slog.Log(ctx, level, job+"_failed",
		slog.String("code", merrors.GetCode(err)),
		slog.String("error", err.Error()))
}

func runIndex(ctx context.Context, cmd *cobra.Command, cfg *config.Config, s store.Store) (*index.RunnerResult, error) {
	renderer := newRenderer(cmd, cfg, "Maamarim index")
	if err := renderer.Start(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = renderer.Stop() }()

	runner, err := index.NewRunner(index.RunnerDependencies{
		Renderer: renderer,
		Config:   cfg,
		Store:    s,
	})
	if err != nil {
		return nil, err
	}

	result, err := runner.Run(ctx, index.RunnerConfig{})
	if err != nil {
		reportFailure(ctx, renderer, "index", err)
		return nil, err
	}
	return result, nil
}

func runSplit(ctx context.Context, cmd *cobra.Command, cfg *config.Config, s store.Store) (*split.RunnerResult, error) {
	renderer := newRenderer(cmd, cfg, "Maamarim split")
	if err := renderer.Start(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = renderer.Stop() }()

	runner, err := split.NewRunner(split.RunnerDependencies{
		Renderer: renderer,
		Config:   cfg,
		Store:    s,
	})
	if err != nil {
		return nil, err
	}

	result, err := runner.Run(ctx, split.RunnerConfig{})
	if err != nil {
		reportFailure(ctx, renderer, "split", err)
		return nil, err
	}
	return result, nil
}

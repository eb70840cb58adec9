package index

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Aman-CERP/maamarim/internal/config"
	"github.com/Aman-CERP/maamarim/internal/corpus"
	"github.com/Aman-CERP/maamarim/internal/store"
	"github.com/Aman-CERP/maamarim/internal/ui"
)

// RunnerConfig configures an index run.
type RunnerConfig struct {
	// Input overrides the configured input path.
	Input string
}

// RunnerResult contains the outcome of an index run.
type RunnerResult struct {
	// Report holds the statistics printed after the run.
	Report ui.IndexReport

	// Bytes is the total size of the written artifacts.
	Bytes int64

	// Duration is the total run time.
	Duration time.Duration
}

// RunnerDependencies contains the injected dependencies for Runner.
type RunnerDependencies struct {
	// Renderer for progress display (required).
	Renderer ui.Renderer

	// Config is the loaded configuration (required).
	Config *config.Config

	// Store receives the rendered artifacts (required).
	Store store.Store
}

// Runner executes index runs with progress reporting.
type Runner struct {
	renderer ui.Renderer
	config   *config.Config
	store    store.Store
}

// NewRunner creates a Runner with injected dependencies.
func NewRunner(deps RunnerDependencies) (*Runner, error) {
	if deps.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if deps.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	return &Runner{
		renderer: deps.Renderer,
		config:   deps.Config,
		store:    deps.Store,
	}, nil
}

// artifact is one rendered output file.
type artifact struct {
	name string
	data []byte
}

// Run loads the collection, builds every index, renders both output files
// in memory and only then writes them. Nothing is written when loading or
// rendering fails.
func (r *Runner) Run(ctx context.Context, cfg RunnerConfig) (*RunnerResult, error) {
	startTime := time.Now()
	var timing ui.StageTimings

	input := cfg.Input
	if input == "" {
		input = r.config.Input
	}

	// Stage 1: Load
	loadStart := time.Now()
	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageLoading,
		Message: fmt.Sprintf("Loading %s...", input),
	})
	slog.Info("index_load_started", slog.String("path", input))

	collection, err := corpus.Load(input)
	if err != nil {
		return nil, err
	}
	timing.Load = time.Since(loadStart)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Build and render
	buildStart := time.Now()
	total := len(collection.Documents)
	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageIndexing,
		Total:   total,
		Message: fmt.Sprintf("Indexing %d documents...", total),
	})

	ix := Build(collection)

	indexJSON, err := ix.RenderJSON()
	if err != nil {
		return nil, err
	}
	artifacts := []artifact{
		{name: r.config.Index.File, data: indexJSON},
		{name: r.config.Index.ReportFile, data: ix.RenderQuickReference()},
	}
	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageIndexing,
		Current: total,
		Total:   total,
		Message: fmt.Sprintf("Indexed %d documents", total),
	})
	timing.Build = time.Since(buildStart)

	// Stage 3: Write
	writeStart := time.Now()
	bytes, err := r.write(ctx, artifacts)
	if err != nil {
		return nil, err
	}
	timing.Write = time.Since(writeStart)

	duration := time.Since(startTime)
	report := ix.Report(r.store.Location(r.config.Index.File), r.store.Location(r.config.Index.ReportFile))

	r.renderer.Complete(ui.CompletionStats{
		Job:       "index",
		Documents: total,
		Artifacts: len(artifacts),
		Bytes:     bytes,
		Duration:  duration,
		Stages:    timing,
	})

	slog.Info("index_complete",
		slog.Int("documents", report.Documents),
		slog.Int("topics", report.Topics),
		slog.Int("concepts", report.Concepts),
		slog.Int("glossary_terms", report.GlossaryTerms),
		slog.Int64("bytes", bytes),
		slog.String("duration_total", duration.String()),
		slog.Int64("duration_load_ms", timing.Load.Milliseconds()),
		slog.Int64("duration_build_ms", timing.Build.Milliseconds()),
		slog.Int64("duration_write_ms", timing.Write.Milliseconds()))

	return &RunnerResult{
		Report:   report,
		Bytes:    bytes,
		Duration: duration,
	}, nil
}

func (r *Runner) write(ctx context.Context, artifacts []artifact) (int64, error) {
	var total int64
	for i, a := range artifacts {
		r.renderer.UpdateProgress(ui.ProgressEvent{
			Stage:       ui.StageWriting,
			Current:     i,
			Total:       len(artifacts),
			CurrentFile: a.name,
			Message:     fmt.Sprintf("Creating %s...", a.name),
		})
		if err := r.store.Put(ctx, a.name, a.data); err != nil {
			return 0, err
		}
		total += int64(len(a.data))
		slog.Debug("index_artifact_written",
			slog.String("name", a.name),
			slog.Int("bytes", len(a.data)))
	}
	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageWriting,
		Current: len(artifacts),
		Total:   len(artifacts),
		Message: "Written",
	})
	return total, nil
}

package split

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/Aman-CERP/maamarim/internal/chunk"
	"github.com/Aman-CERP/maamarim/internal/config"
	"github.com/Aman-CERP/maamarim/internal/corpus"
	"github.com/Aman-CERP/maamarim/internal/store"
	"github.com/Aman-CERP/maamarim/internal/ui"
)

// RunnerConfig configures a split run.
type RunnerConfig struct {
	// Input overrides the configured input path.
	Input string

	// DocsPerChunk overrides split.docs_per_chunk when positive.
	DocsPerChunk int
}

// RunnerResult contains the outcome of a split run.
type RunnerResult struct {
	// Report holds the statistics printed after the run.
	Report ui.SplitReport

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

// Runner executes split runs with progress reporting.
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

// Run loads the collection, partitions it, renders every chunk, document
// and master index file in memory and then writes them. Nothing is written
// when loading, partitioning or rendering fails.
func (r *Runner) Run(ctx context.Context, cfg RunnerConfig) (*RunnerResult, error) {
	startTime := time.Now()
	var timing ui.StageTimings

	input := cfg.Input
	if input == "" {
		input = r.config.Input
	}
	size := cfg.DocsPerChunk
	if size <= 0 {
		size = r.config.Split.DocsPerChunk
	}
	layout := Layout{
		ChunksDir:   r.config.Split.ChunksDir,
		DocsDir:     r.config.Split.DocsDir,
		MasterIndex: r.config.Split.MasterIndex,
	}

	// Stage 1: Load
	loadStart := time.Now()
	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageLoading,
		Message: fmt.Sprintf("Loading %s...", input),
	})
	slog.Info("split_load_started", slog.String("path", input))

	collection, err := corpus.Load(input)
	if err != nil {
		return nil, err
	}
	timing.Load = time.Since(loadStart)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Partition and render
	buildStart := time.Now()
	total := len(collection.Documents)
	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageSplitting,
		Total:   total,
		Message: fmt.Sprintf("Found %d documents, splitting into chunks of %d...", total, size),
	})

	chunks, err := chunk.Partition(collection.Documents, size)
	if err != nil {
		return nil, err
	}
	rendered, err := Render(collection, chunks, layout)
	if err != nil {
		return nil, err
	}
	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageSplitting,
		Current: total,
		Total:   total,
		Message: fmt.Sprintf("Rendered %d chunks", len(chunks)),
	})
	timing.Build = time.Since(buildStart)

	// Stage 3: Write
	writeStart := time.Now()
	report, bytes, err := r.write(ctx, rendered, layout)
	if err != nil {
		return nil, err
	}
	report.Documents = total
	report.DocsPerChunk = size
	timing.Write = time.Since(writeStart)

	duration := time.Since(startTime)
	artifacts := len(rendered.Chunks) + len(rendered.Docs) + 1

	r.renderer.Complete(ui.CompletionStats{
		Job:       "split",
		Documents: total,
		Artifacts: artifacts,
		Bytes:     bytes,
		Duration:  duration,
		Stages:    timing,
	})

	slog.Info("split_complete",
		slog.Int("documents", total),
		slog.Int("chunks", report.Chunks),
		slog.Int("docs_per_chunk", size),
		slog.Int("artifacts", artifacts),
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

func (r *Runner) write(ctx context.Context, rendered *Rendered, layout Layout) (ui.SplitReport, int64, error) {
	report := ui.SplitReport{ChunkFiles: make([]ui.FileSize, 0, len(rendered.Chunks))}
	var total int64

	for _, dir := range []string{layout.ChunksDir, layout.DocsDir} {
		if err := r.store.MakeDir(ctx, dir); err != nil {
			return report, 0, err
		}
	}

	count := len(rendered.Chunks) + len(rendered.Docs) + 1
	done := 0
	put := func(a Artifact) error {
		r.renderer.UpdateProgress(ui.ProgressEvent{
			Stage:       ui.StageWriting,
			Current:     done,
			Total:       count,
			CurrentFile: a.Name,
		})
		if err := r.store.Put(ctx, a.Name, a.Data); err != nil {
			return err
		}
		done++
		total += int64(len(a.Data))
		return nil
	}

	for _, a := range rendered.Chunks {
		if err := put(a); err != nil {
			return report, 0, err
		}
		report.ChunkFiles = append(report.ChunkFiles, ui.FileSize{Name: path.Base(a.Name), Bytes: int64(len(a.Data))})
		slog.Debug("split_chunk_written",
			slog.String("name", a.Name),
			slog.Int("bytes", len(a.Data)))
	}
	for _, a := range rendered.Docs {
		if err := put(a); err != nil {
			return report, 0, err
		}
	}
	if err := put(rendered.Master); err != nil {
		return report, 0, err
	}

	r.renderer.UpdateProgress(ui.ProgressEvent{
		Stage:   ui.StageWriting,
		Current: count,
		Total:   count,
		Message: "Written",
	})

	report.Chunks = len(rendered.Chunks)
	report.MasterIndex = ui.FileSize{Name: rendered.Master.Name, Bytes: int64(len(rendered.Master.Data))}
	return report, total, nil
}

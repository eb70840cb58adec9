package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewTUIRenderer_ReturnsErrorForNonTTY(t *testing.T) {
	// Given: a non-TTY buffer
	cfg := NewConfig(&bytes.Buffer{})

	// When: creating TUI renderer
	r, err := NewTUIRenderer(cfg)

	// Then: it refuses
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestRunModel_StageIndicators(t *testing.T) {
	tests := []struct {
		stage Stage
		build string
	}{
		{StageLoading, "Build"},
		{StageIndexing, "Index"},
		{StageSplitting, "Split"},
		{StageWriting, "Build"},
	}

	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			tracker := NewProgressTracker()
			tracker.SetStage(tt.stage, 0)
			model := newRunModel(tracker, "", "")
			model.styles = NoColorStyles()

			view := model.View()

			assert.Contains(t, view, "Load")
			assert.Contains(t, view, tt.build)
			assert.Contains(t, view, "Write")
			assert.Contains(t, view, "Maamarim")
		})
	}
}

func TestRunModel_ProgressDisplay(t *testing.T) {
	// Given: a model in the write stage
	tracker := NewProgressTracker()
	tracker.SetStage(StageWriting, 4)
	tracker.Update(2, "maamarim_master_index.json")
	model := newRunModel(tracker, "Split • corpus.json", "line")
	model.styles = NoColorStyles()

	// When: rendering
	view := model.View()

	// Then: count, percentage and current file are shown
	assert.Contains(t, view, "2 / 4")
	assert.Contains(t, view, "50%")
	assert.Contains(t, view, "maamarim_master_index.json")
	assert.Contains(t, view, "Split • corpus.json")
}

func TestRunModel_CompleteView(t *testing.T) {
	model := newRunModel(NewProgressTracker(), "", "")
	model.styles = NoColorStyles()

	_, cmd := model.Update(completeMsg(CompletionStats{
		Job:       "index",
		Documents: 7,
		Artifacts: 2,
		Bytes:     512,
		Duration:  250 * time.Millisecond,
	}))

	assert.NotNil(t, cmd)
	view := model.View()
	assert.Contains(t, view, "Index complete")
	assert.Contains(t, view, "7")
	assert.Contains(t, view, "2 (512 B)")
}

func TestRunModel_CtrlCQuits(t *testing.T) {
	model := newRunModel(NewProgressTracker(), "", "")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.Equal(t, "Cancelled.\n", model.View())
}

func TestRunModel_WindowResize(t *testing.T) {
	model := newRunModel(NewProgressTracker(), "", "")

	model.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Equal(t, 20, model.progressBar.Width)

	model.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	assert.Equal(t, 100, model.progressBar.Width)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m 30s"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	assert.Equal(t, "short", truncateMiddle("short", 10))
	assert.Equal(t, "abc...xyz", truncateMiddle("abcdefghijklmnopqrstuvwxyz", 9))
	assert.Equal(t, "...", truncateMiddle("abcdef", 2))
}

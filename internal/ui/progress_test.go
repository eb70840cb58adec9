package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_StagesAndProgress(t *testing.T) {
	// Given: a new tracker
	p := NewProgressTracker()
	assert.Equal(t, StageLoading, p.Stats().Stage)
	assert.Equal(t, 0.0, p.Progress())

	// When: moving to writing and updating
	p.SetStage(StageWriting, 4)
	p.Update(1, "a.json")
	p.Update(3, "")

	// Then: progress reflects the last update and keeps the last file
	stats := p.Stats()
	assert.Equal(t, StageWriting, stats.Stage)
	assert.Equal(t, 0.75, stats.Progress)
	assert.Equal(t, "a.json", stats.CurrentFile)

	// Overshoot is clamped
	p.Update(9, "")
	assert.Equal(t, 1.0, p.Progress())

	// New stage resets counters
	p.SetStage(StageComplete, 0)
	assert.Equal(t, 0, p.Stats().Current)
	assert.Empty(t, p.Stats().CurrentFile)
}

func TestProgressTracker_ErrorsAndWarnings(t *testing.T) {
	p := NewProgressTracker()

	p.AddError(ErrorEvent{Err: errors.New("e1")})
	p.AddError(ErrorEvent{Err: errors.New("w1"), IsWarn: true})
	p.AddError(ErrorEvent{Err: errors.New("w2"), IsWarn: true})

	stats := p.Stats()
	assert.Equal(t, 1, stats.ErrorCount)
	assert.Equal(t, 2, stats.WarnCount)
	assert.Len(t, p.Errors(), 1)
	assert.Len(t, p.Warnings(), 2)
	assert.GreaterOrEqual(t, p.Elapsed(), time.Duration(0))
}

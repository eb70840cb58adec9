package preflight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aman-CERP/maamarim/internal/corpus"
	merrors "github.com/Aman-CERP/maamarim/internal/errors"
)

// CheckStatus represents the result of a preflight check.
type CheckStatus int

const (
	// StatusPass indicates the check passed successfully.
	StatusPass CheckStatus = iota
	// StatusWarn indicates a non-critical warning.
	StatusWarn
	// StatusFail indicates the check failed.
	StatusFail
)

// String returns the string representation of a CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// CheckResult holds the result of a single preflight check.
type CheckResult struct {
	Name     string      `json:"name"`
	Status   CheckStatus `json:"status"`
	Message  string      `json:"message"`
	Details  string      `json:"details,omitempty"`
	Required bool        `json:"required"`
}

// IsCritical returns true if this is a required check that failed.
func (r CheckResult) IsCritical() bool {
	return r.Required && r.Status == StatusFail
}

// Target describes the run being checked.
type Target struct {
	Input     string
	OutputDir string
	// Remote is set when artifacts go to an object store instead of OutputDir.
	Remote bool
}

// Checker performs preflight validation checks.
type Checker struct {
	verbose bool
	output  io.Writer
	probe   func(context.Context) error
}

// Option configures a Checker.
type Option func(*Checker)

// WithVerbose enables verbose output.
func WithVerbose(verbose bool) Option {
	return func(c *Checker) {
		c.verbose = verbose
	}
}

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.output = w
	}
}

// WithStoreProbe sets the function used to reach a remote store.
func WithStoreProbe(probe func(context.Context) error) Option {
	return func(c *Checker) {
		c.probe = probe
	}
}

// New creates a new Checker with the given options.
func New(opts ...Option) *Checker {
	c := &Checker{
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunAll runs all preflight checks and returns the results.
func (c *Checker) RunAll(ctx context.Context, target Target) []CheckResult {
	var results []CheckResult

	results = append(results, c.CheckInput(target.Input))

	if target.Remote {
		results = append(results, c.CheckStore(ctx))
		return results
	}

	results = append(results, c.CheckWritePermissions(target.OutputDir))

	var need uint64 = MinDiskSpaceBytes
	if info, err := os.Stat(target.Input); err == nil {
		need = max(need, 3*uint64(info.Size()))
	}
	results = append(results, c.CheckDiskSpace(target.OutputDir, need))

	return results
}

// HasCriticalFailures returns true if any required check failed.
func (c *Checker) HasCriticalFailures(results []CheckResult) bool {
	for _, r := range results {
		if r.IsCritical() {
			return true
		}
	}
	return false
}

// SummaryStatus returns a summary status string for the results.
func (c *Checker) SummaryStatus(results []CheckResult) string {
	hasWarnings := false
	hasCriticalFailure := false

	for _, r := range results {
		if r.IsCritical() {
			hasCriticalFailure = true
		}
		if r.Status == StatusWarn || (r.Status == StatusFail && !r.Required) {
			hasWarnings = true
		}
	}

	if hasCriticalFailure {
		return "failed"
	}
	if hasWarnings {
		return "ready_with_warnings"
	}
	return "ready"
}

// PrintResults prints check results to the configured output.
func (c *Checker) PrintResults(results []CheckResult) {
	_, _ = fmt.Fprintln(c.output, "Maamarim Preflight Check")
	_, _ = fmt.Fprintln(c.output, "========================")
	_, _ = fmt.Fprintln(c.output)

	for _, r := range results {
		_, _ = fmt.Fprintf(c.output, "[%s] %s: %s\n", r.Status, r.Name, r.Message)
		if c.verbose && r.Details != "" {
			_, _ = fmt.Fprintf(c.output, "      %s\n", r.Details)
		}
	}

	_, _ = fmt.Fprintln(c.output)
	_, _ = fmt.Fprintf(c.output, "Status: %s\n", strings.ToUpper(c.SummaryStatus(results)))

	var warnings, failures []string
	for _, r := range results {
		if r.IsCritical() {
			failures = append(failures, r.Name+": "+r.Message)
		} else if r.Status == StatusWarn {
			warnings = append(warnings, r.Name+": "+r.Message)
		}
	}

	if len(failures) > 0 {
		_, _ = fmt.Fprintln(c.output)
		_, _ = fmt.Fprintf(c.output, "%d error(s):\n", len(failures))
		for _, e := range failures {
			_, _ = fmt.Fprintf(c.output, "  - %s\n", e)
		}
	}

	if len(warnings) > 0 {
		_, _ = fmt.Fprintln(c.output)
		_, _ = fmt.Fprintf(c.output, "%d warning(s):\n", len(warnings))
		for _, w := range warnings {
			_, _ = fmt.Fprintf(c.output, "  - %s\n", w)
		}
	}
}

// CheckInput checks that the input collection can be read and decoded.
func (c *Checker) CheckInput(path string) CheckResult {
	result := CheckResult{
		Name:     "input",
		Required: true,
	}

	col, err := corpus.Load(path)
	if err != nil {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("%s: %s", path, merrors.GetCode(err))
		result.Details = err.Error()
		return result
	}

	if len(col.Documents) == 0 {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("%s has no documents", path)
		return result
	}

	result.Status = StatusPass
	result.Message = fmt.Sprintf("%s (%d documents)", path, len(col.Documents))
	return result
}

// CheckWritePermissions checks that files can be created in the output root.
// A missing root is checked at its nearest existing parent.
func (c *Checker) CheckWritePermissions(path string) CheckResult {
	result := CheckResult{
		Name:     "write_permissions",
		Required: true,
	}

	dir := existingParent(path)
	f, err := os.CreateTemp(dir, ".maamarim-preflight-*")
	if err != nil {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("permission denied: %v", err)
		return result
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)

	result.Status = StatusPass
	result.Message = "OK"
	if dir != path {
		result.Details = fmt.Sprintf("%s will be created under %s", path, dir)
	}
	return result
}

// CheckStore checks that the remote store is reachable.
func (c *Checker) CheckStore(ctx context.Context) CheckResult {
	result := CheckResult{
		Name:     "store",
		Required: true,
	}

	if c.probe == nil {
		result.Status = StatusWarn
		result.Message = "no store probe configured"
		return result
	}

	if err := c.probe(ctx); err != nil {
		result.Status = StatusFail
		result.Message = err.Error()
		var me *merrors.MaamarimError
		if errors.As(err, &me) {
			result.Message = me.Message
			result.Details = me.Suggestion
		}
		return result
	}

	result.Status = StatusPass
	result.Message = "bucket reachable"
	return result
}

// existingParent returns path, or its closest ancestor that exists.
func existingParent(path string) string {
	dir := filepath.Clean(path)
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

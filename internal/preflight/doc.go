// Package preflight checks that an index or split run can succeed before
// it starts.
//
// The checks cover:
//   - The input collection is readable and parses
//   - The output root is writable
//   - Free disk space at the output root (three times the input size, 10 MB minimum)
//   - The object store is reachable when publishing to MinIO
//
// Use the Checker type to run all checks:
//
//	checker := preflight.New()
//	results := checker.RunAll(ctx, preflight.Target{Input: "maamarim_structured.json", OutputDir: "."})
//	if checker.HasCriticalFailures(results) {
//	    // Handle failures
//	}
package preflight

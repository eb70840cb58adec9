package preflight

import "fmt"

// MinDiskSpaceBytes is the minimum required free disk space (10MB).
const MinDiskSpaceBytes = 10 * 1024 * 1024

// CheckDiskSpace checks that at least need bytes are free at path.
func (c *Checker) CheckDiskSpace(path string, need uint64) CheckResult {
	result := CheckResult{
		Name:     "disk_space",
		Required: true,
	}

	availableBytes, err := freeBytes(existingParent(path))
	if err != nil {
		result.Status = StatusWarn
		result.Message = fmt.Sprintf("failed to check disk space: %v", err)
		return result
	}

	result.Message = fmt.Sprintf("%s free (need %s)", formatBytes(availableBytes), formatBytes(need))
	if availableBytes < need {
		result.Status = StatusFail
		return result
	}

	result.Status = StatusPass
	return result
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1f TB", float64(bytes)/TB)
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}

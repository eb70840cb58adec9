//go:build windows

package store

import "os"

// renameio does not support Windows; fall back to a plain write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

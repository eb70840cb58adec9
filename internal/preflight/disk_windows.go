//go:build windows

package preflight

import "errors"

func freeBytes(string) (uint64, error) {
	return 0, errors.New("not supported on windows")
}

//go:build windows

package snapshot

import "os"

// writeFile truncates and rewrites filename; renameio has no Windows support
func writeFile(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}

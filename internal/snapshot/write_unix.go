//go:build !windows

package snapshot

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFile replaces filename via temp file + rename so readers never see a
// truncated snapshot
func writeFile(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}

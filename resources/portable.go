package resources

import (
	"os"
	"path/filepath"
)

const portableMarker = "portable.txt"
const portableDir = "axial_UserData"

// portablePath returns the portable resource path and true if the portable
// marker file is next to the executable
func portablePath() (string, bool) {
	exe, err := os.Executable()
	if err != nil {
		return "", false
	}
	dir := filepath.Dir(exe)
	if _, err := os.Stat(filepath.Join(dir, portableMarker)); err != nil {
		return "", false
	}
	return filepath.Join(dir, portableDir), true
}

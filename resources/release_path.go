//go:build release

package resources

import (
	"fmt"
	"os"
	"path/filepath"
)

// release builds keep resources with the user's other configuration files
func resourcePath() (string, error) {
	p, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resources: %w", err)
	}
	return filepath.Join(p, "axial"), nil
}

//go:build !release

package resources

// development builds keep resources in the working directory
const configDir = ".axial"

func resourcePath() (string, error) {
	return configDir, nil
}

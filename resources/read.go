package resources

import (
	"errors"
	"io/fs"
	"os"
)

// Read returns the contents of the named file in the resources directory. A
// file that does not exist is returned as an empty string without error.
func Read(filename string) (string, error) {
	pth, err := JoinPath(filename)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	return string(b), nil
}

// Write replaces the contents of the named file in the resources directory.
func Write(filename string, content string) error {
	pth, err := JoinPath(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(pth, []byte(content), 0600)
}

package manifest

import (
	"os"
	"path/filepath"
)

// On Windows, Chrome locates the manifest through a registry value rather
// than a fixed directory, so the manifest conventionally lives next to the
// host executable.

// UserDir returns the default manifest directory for the calling user.
func UserDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// SystemDir returns the default manifest directory for a system-wide
// install.
func SystemDir() (string, error) {
	return UserDir()
}

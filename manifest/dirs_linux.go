package manifest

import (
	"os/user"
	"path/filepath"
)

// systemInstallDir is the system-wide install location on Linux.
const systemInstallDir = "/etc/opt/chrome/native-messaging-hosts"

// userSubDir is the user-specific install location, relative to a user's
// home directory on Linux.
const userSubDir = ".config/google-chrome/NativeMessagingHosts"

// UserDir returns the manifest directory Chrome scans for the calling user.
func UserDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, userSubDir), nil
}

// SystemDir returns the system-wide manifest directory Chrome scans.
func SystemDir() (string, error) {
	return systemInstallDir, nil
}

// Package manifest models the Chrome native messaging host manifest JSON
// and its on-disk install locations.
//
// See the official Chrome documentation at:
// https://developer.chrome.com/docs/apps/nativeMessaging/#native-messaging-host
package manifest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Manifest models the native messaging host manifest JSON.
type Manifest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Path           string   `json:"path"`
	AllowedOrigins []string `json:"allowed_origins"`
	Typ            string   `json:"type"`
}

// manifestType is the (only supported) value for the "type" field in the
// manifest.
const manifestType = "stdio"

// namePattern is the grammar Chrome accepts for host names: dot-separated
// runs of lowercase alphanumerics and underscores.
var namePattern = regexp.MustCompile(`^([a-z0-9_]+)(\.[a-z0-9_]+)*$`)

// ValidateName reports whether name is an acceptable host name.
func ValidateName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidateOrigins checks that every entry is a parseable origin URL with no
// wildcard: Chrome rejects manifests with wildcard patterns in
// allowed_origins, so they are refused up front rather than discovered at
// connect time.
func ValidateOrigins(origins []string) error {
	if len(origins) == 0 {
		return fmt.Errorf("manifest: at least one allowed origin is required")
	}
	for _, o := range origins {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("manifest: empty allowed origin")
		}
		if strings.Contains(o, "*") {
			return fmt.Errorf("manifest: wildcard origin %q is not allowed", o)
		}
		if _, err := url.Parse(o); err != nil {
			return fmt.Errorf("manifest: invalid origin %q: %w", o, err)
		}
	}
	return nil
}

// Marshal returns the on-disk encoding of the manifest.
func (m Manifest) Marshal() ([]byte, error) {
	m.Typ = manifestType
	return json.Marshal(m)
}

// Filename is the appropriate name for the manifest file (with no path).
func (m Manifest) Filename() string {
	return m.Name + ".json"
}

// PathFor is the canonical manifest location for a host named name
// installed under dir.
func PathFor(dir, name string) string {
	return filepath.Join(dir, Manifest{Name: name}.Filename())
}

// Write serializes m and writes it to path, replacing any previous
// manifest there.  The containing directory is created if needed: on a
// fresh machine the browser's manifest directory does not exist until the
// first host is installed.
func Write(path string, m Manifest) error {
	buf, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf(`creating manifest directory: %w`, err)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf(`writing manifest: %w`, err)
	}
	return nil
}

// Load reads and decodes the manifest at path.
func Load(path string) (Manifest, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf(`reading manifest: %w`, err)
	}
	var m Manifest
	if err := json.Unmarshal(buf, &m); err != nil {
		return Manifest{}, fmt.Errorf(`decoding manifest %s: %w`, path, err)
	}
	return m, nil
}

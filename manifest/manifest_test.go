package manifest

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"
)

func TestValidateName(t *testing.T) {
	var tests = []struct {
		name string
		ok   bool
	}{
		{"com.example.echo", true},
		{"echo", true},
		{"my_host.v2", true},
		{"Com.Example", false},
		{"com..example", false},
		{"", false},
		{"com.example-host", false},
	}

	for _, tt := range tests {
		if got := ValidateName(tt.name); got != tt.ok {
			t.Errorf("ValidateName(%q) = %v, want %v", tt.name, got, tt.ok)
		}
	}
}

func TestValidateOrigins(t *testing.T) {
	ok := []string{"chrome-extension://knldjmfmopnpolahpmmgbagdohdnhkik/"}
	if err := ValidateOrigins(ok); err != nil {
		t.Errorf("ValidateOrigins(%v) error: %v", ok, err)
	}

	var bad = [][]string{
		nil,
		{""},
		{"chrome-extension://*/"},
		{"chrome-extension://abc/", "https://*.example.com/"},
	}
	for _, origins := range bad {
		if err := ValidateOrigins(origins); err == nil {
			t.Errorf("ValidateOrigins(%v) = nil, want error", origins)
		}
	}
}

func TestMarshalForcesType(t *testing.T) {
	m := Manifest{
		Name:           "com.example.echo",
		Description:    "Echo host",
		Path:           "/opt/echo/echo-host",
		AllowedOrigins: []string{"chrome-extension://abc/"},
	}

	buf, err := m.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got["type"] != "stdio" {
		t.Errorf(`type = %v, want "stdio"`, got["type"])
	}
	if got["name"] != m.Name {
		t.Errorf("name = %v, want %v", got["name"], m.Name)
	}
}

func TestFilename(t *testing.T) {
	m := Manifest{Name: "com.example.echo"}
	if got, want := m.Filename(), "com.example.echo.json"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestWriteCreatesMissingDirectory(t *testing.T) {
	// A fresh machine has no NativeMessagingHosts directory until the
	// first host is installed.
	dir := filepath.Join(t.TempDir(), "google-chrome", "NativeMessagingHosts")
	m := Manifest{
		Name:           "com.example.echo",
		Description:    "Echo host",
		Path:           "/opt/echo/echo-host",
		AllowedOrigins: []string{"chrome-extension://abc/"},
	}

	path := PathFor(dir, m.Name)
	if err := Write(path, m); err != nil {
		t.Fatalf("Write() into missing directory error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Name != m.Name {
		t.Errorf("Load() name = %q, want %q", got.Name, m.Name)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := Manifest{
		Name:           "com.example.echo",
		Description:    "Echo host",
		Path:           "/opt/echo/echo-host",
		AllowedOrigins: []string{"chrome-extension://abc/"},
	}

	path := PathFor(dir, m.Name)
	if want := filepath.Join(dir, "com.example.echo.json"); path != want {
		t.Fatalf("PathFor() = %q, want %q", path, want)
	}

	if err := Write(path, m); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	m.Typ = manifestType
	if !reflect.DeepEqual(got, m) {
		t.Errorf("Load() = %+v, want %+v", got, m)
	}

	// A second Write replaces the previous manifest.
	m.Description = "Updated"
	if err := Write(path, m); err != nil {
		t.Fatalf("Write() overwrite error: %v", err)
	}
	if got, _ := Load(path); got.Description != "Updated" {
		t.Errorf("Description after overwrite = %q, want %q", got.Description, "Updated")
	}
}

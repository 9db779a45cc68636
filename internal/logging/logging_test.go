package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewRejectsUnknownSettings(t *testing.T) {
	if _, err := New("verbose", "text"); err == nil {
		t.Error(`New("verbose", ...) accepted an unknown level`)
	}
	if _, err := New("info", "logfmt"); err == nil {
		t.Error(`New(..., "logfmt") accepted an unknown format`)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := newWithWriter("debug", "json", &buf)
	if err != nil {
		t.Fatalf("newWithWriter() error: %v", err)
	}

	log.Debug("handshake", "host", "com.example.echo")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "handshake" {
		t.Errorf("msg = %v, want %q", entry["msg"], "handshake")
	}
	if entry["host"] != "com.example.echo" {
		t.Errorf("host = %v, want %q", entry["host"], "com.example.echo")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := newWithWriter("warn", "json", &buf)
	if err != nil {
		t.Fatalf("newWithWriter() error: %v", err)
	}

	log.Info("suppressed")
	if buf.Len() != 0 {
		t.Errorf("info record emitted at warn level: %q", buf.String())
	}
}

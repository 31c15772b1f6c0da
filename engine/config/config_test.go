package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spaghettifunk/orbitview/engine/components"
	"github.com/spaghettifunk/orbitview/engine/core"
)

func TestDecode(t *testing.T) {
	doc := `
log_level = "debug"

[camera]
fov_y_degrees = 45.0
width = 1280
height = 720
initial_shift = [1.0, 2.0, -10.0]
`
	cfg, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := components.DefaultOrbitCameraConfig()
	want.FovYDegrees = 45
	want.Width = 1280
	want.Height = 720
	want.InitialShift = [3]float32{1, 2, -10}
	if cfg.Camera != want {
		t.Errorf("camera = %+v, want %+v", cfg.Camera, want)
	}
	if cfg.Level() != core.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestDecodeEmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad toml", "[camera"},
		{"unknown key", "[camera]\nzoom = 2.0"},
		{"bad log level", `log_level = "loud"`},
		{"far before near", "[camera]\nnear = 10.0\nfar = 1.0"},
		{"zero height", "[camera]\nheight = 0"},
		{"NaN shift", "[camera]\ninitial_shift = [0.0, 0.0, nan]"},
		{"NaN dolly out", "[camera]\ndolly_out = nan"},
		{"infinite far", "[camera]\nfar = inf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.Camera.DollyIn = 0.75

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.toml")
	if err := os.WriteFile(path, []byte("[camera]\nfov_y_degrees = 30.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[camera]\nfov_y_degrees = 60.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			// A write may be observed in several chunks; wait for the final content.
			if cfg.Camera.FovYDegrees == 60 {
				return
			}
		case <-w.Errors():
			// Partial writes can fail to parse; the next event carries the full file.
		case <-timeout:
			t.Fatal("no reload observed")
		}
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); !errors.Is(err, core.ErrWatcherClosed) {
		t.Errorf("second Close = %v, want ErrWatcherClosed", err)
	}
	if _, ok := <-w.Updates(); ok {
		t.Errorf("Updates not closed")
	}
}

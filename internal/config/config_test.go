package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("READPAPER_EMAIL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("missing config errored: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("missing config not empty: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("READPAPER_EMAIL", "")

	in := &Config{
		Email:        "reader@example.org",
		PDFReader:    "zathura",
		ExifTool:     "/opt/bin/exiftool",
		DisableCache: true,
	}
	if err := in.Save(); err != nil {
		t.Fatal(err)
	}

	out, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestLoadEmailEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := &Config{Email: "file@example.org"}
	if err := in.Save(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("READPAPER_EMAIL", "env@example.org")
	out, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if out.Email != "env@example.org" {
		t.Errorf("email = %q, want env override", out.Email)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "readpaper", "config.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("email: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("malformed config did not error")
	}
}

func TestValidateReader(t *testing.T) {
	for _, reader := range append([]string{""}, ValidReaders...) {
		if err := ValidateReader(reader); err != nil {
			t.Errorf("ValidateReader(%q) = %v", reader, err)
		}
	}
	if err := ValidateReader("acrobat"); err == nil {
		t.Error("unsupported reader accepted")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scaleup.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_AppliesValues(t *testing.T) {
	path := writeConfigFile(t, "model: realesrgan-x4plus\nworkers: 3\nscale: 2\ngpu: \"1\"\n")

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Model != "realesrgan-x4plus" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.ScaleFactor != 2 {
		t.Errorf("ScaleFactor = %d, want 2", cfg.ScaleFactor)
	}
	if cfg.GPUID != "1" {
		t.Errorf("GPUID = %q, want %q", cfg.GPUID, "1")
	}
}

func TestLoadFile_KeepsDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfigFile(t, "workers: 2\n")

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if cfg.Model != "realesr-animevideov3-x4" {
		t.Errorf("Model default lost: %q", cfg.Model)
	}
	if cfg.TmpFramesDir != "tmp_frames" {
		t.Errorf("TmpFramesDir default lost: %q", cfg.TmpFramesDir)
	}
}

func TestLoadFile_MissingDefaultFileIsFine(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := DefaultConfig()
	if err := LoadFile("", &cfg); err != nil {
		t.Errorf("LoadFile with no default file should not error, got: %v", err)
	}
}

func TestLoadFile_MissingExplicitFileErrors(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Error("LoadFile should fail for an explicit missing path")
	}
}

func TestLoadFile_MalformedYAMLErrors(t *testing.T) {
	path := writeConfigFile(t, "workers: [not a number\n")

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err == nil {
		t.Error("LoadFile should fail on malformed YAML")
	}
}

func TestParseFlags_FlagsOverrideFile(t *testing.T) {
	path := writeConfigFile(t, "workers: 3\nmodel: from-file\n")

	cfg := DefaultConfig()
	args := []string{"--config", path, "-i", "in.mp4", "-o", "out.mp4", "--workers", "5"}
	if err := ParseFlags(&cfg, "1.0.0-test", args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	if cfg.Workers != 5 {
		t.Errorf("Workers = %d, want flag value 5", cfg.Workers)
	}
	if cfg.Model != "from-file" {
		t.Errorf("Model = %q, want file value to survive", cfg.Model)
	}
	if cfg.InputVideo != "in.mp4" || cfg.OutputVideo != "out.mp4" {
		t.Errorf("videos = %q, %q", cfg.InputVideo, cfg.OutputVideo)
	}
}

func TestParseFlags_RejectsPositionalArgs(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "1.0.0-test", []string{"-i", "in.mp4", "-o", "out.mp4", "stray"}); err == nil {
		t.Error("ParseFlags should reject positional arguments")
	}
}

func TestParseFlags_ColorOverrides(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "1.0.0-test", []string{"-i", "a", "-o", "b", "--no-color"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorNever)
	}

	cfg = DefaultConfig()
	if err := ParseFlags(&cfg, "1.0.0-test", []string{"-i", "a", "-o", "b", "--color"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorAlways)
	}
}

func TestParseFlags_ValueNamedConfig(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "1.0.0-test", []string{"-i", "config", "-o", "out.mp4"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.InputVideo != "config" {
		t.Errorf("InputVideo = %q, want %q", cfg.InputVideo, "config")
	}
	if cfg.ConfigFile != "" {
		t.Errorf("ConfigFile = %q, want empty", cfg.ConfigFile)
	}
}

func TestPeekConfigFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate value", []string{"--config", "a.yaml"}, "a.yaml"},
		{"equals form", []string{"--config=b.yaml"}, "b.yaml"},
		{"single dash", []string{"-config", "c.yaml"}, "c.yaml"},
		{"absent", []string{"-i", "in.mp4"}, ""},
		{"no args", nil, ""},
		{"bare word config is a value, not a flag", []string{"-i", "config", "-o", "out.mp4"}, ""},
		{"bare word config= is a value", []string{"-m", "config=weird"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := peekConfigFlag(tt.args); got != tt.want {
				t.Errorf("peekConfigFlag(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

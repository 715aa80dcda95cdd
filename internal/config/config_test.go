package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travelog/internal/config"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "travelog.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExpandsPathsAndAppliesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := writeConfig(t, t.TempDir(), `
[paths]
source_dir = "~/camino"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected resolved existing config, got exists=%v path=%q", exists, resolved)
	}

	wantSource := filepath.Join(tempHome, "camino")
	if cfg.Paths.SourceDir != wantSource {
		t.Fatalf("source dir = %q, want %q", cfg.Paths.SourceDir, wantSource)
	}
	if cfg.Paths.SiteDir != filepath.Join(wantSource, "site") {
		t.Fatalf("site dir should default under source, got %q", cfg.Paths.SiteDir)
	}
	if cfg.Images.MaxEdge != 1600 || cfg.Images.ThumbMaxEdge != 480 {
		t.Fatalf("unexpected image defaults: %+v", cfg.Images)
	}
	if !cfg.Video.Transcode || cfg.Video.MaxWidth != 1280 {
		t.Fatalf("unexpected video defaults: %+v", cfg.Video)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.Exiftool != "exiftool" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if cfg.Build.Workers != 4 {
		t.Fatalf("unexpected worker default: %d", cfg.Build.Workers)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadMissingSourceDirFails(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	_, _, _, err := config.Load("")
	if err == nil {
		t.Fatal("expected error when source_dir is unset")
	}
	if !strings.Contains(err.Error(), "paths.source_dir") {
		t.Fatalf("error should name the missing key, got %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "zero max edge",
			body: "[paths]\nsource_dir = \"/src\"\n[images]\nmax_edge = 0\n",
			want: "images.max_edge",
		},
		{
			name: "thumb above full",
			body: "[paths]\nsource_dir = \"/src\"\n[images]\nmax_edge = 400\nthumb_max_edge = 800\n",
			want: "images.thumb_max_edge",
		},
		{
			name: "crf out of range",
			body: "[paths]\nsource_dir = \"/src\"\n[video]\ncrf = 77\n",
			want: "video.crf",
		},
		{
			name: "zero workers",
			body: "[paths]\nsource_dir = \"/src\"\n[build]\nworkers = -1\n",
			want: "build.workers",
		},
		{
			name: "bad log format",
			body: "[paths]\nsource_dir = \"/src\"\n[logging]\nformat = \"xml\"\n",
			want: "logging.format",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.body)
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %v should mention %q", err, tc.want)
			}
		})
	}
}

func TestEnsureDirectoriesCreatesAssetTree(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "src")
	cfg.Paths.SiteDir = filepath.Join(base, "site")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.DataDir(), cfg.ImageDir(), cfg.ThumbDir(), cfg.VideoDir(), cfg.PosterDir()} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("missing output dir %s: %v", dir, err)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Fatalf("sample config missing [paths] section")
	}
}

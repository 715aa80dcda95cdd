package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"travelog/internal/scan"
)

func TestRenderConflictsTitleCasesKinds(t *testing.T) {
	conflicts := []scan.Conflict{
		{
			Stem:    "IMG_0003",
			Kind:    scan.KindImage,
			Kept:    "/src/IMG_0003.jpg",
			Dropped: []string{"/src/IMG_0003.jpeg"},
		},
	}
	rendered := renderConflicts(conflicts)
	for _, want := range []string{"IMG_0003", "Image", "IMG_0003.jpg", "IMG_0003.jpeg"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("conflict table missing %q:\n%s", want, rendered)
		}
	}
}

func TestCountDerivedFiltersByPrefix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img_aaa.jpg", "img_bbb.jpg", "thumb_aaa.jpg", ".img_ccc.scratch.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if got := countDerived(dir, "img_"); got != 2 {
		t.Fatalf("countDerived(img_) = %d, want 2", got)
	}
	if got := countDerived(dir, "thumb_"); got != 1 {
		t.Fatalf("countDerived(thumb_) = %d, want 1", got)
	}
	if got := countDerived(filepath.Join(dir, "missing"), "img_"); got != 0 {
		t.Fatalf("countDerived on missing dir = %d, want 0", got)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"config", "init", "--path", target})

	if err := root.Execute(); err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out.String())
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("sample config not written: %v", err)
	}
	if !strings.Contains(string(data), "source_dir") {
		t.Fatalf("sample config missing source_dir:\n%s", data)
	}

	root = newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"config", "init", "--path", target})
	if err := root.Execute(); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
}

func TestYesNo(t *testing.T) {
	if yesNo(true) != "yes" || yesNo(false) != "no" {
		t.Fatal("yesNo misbehaves")
	}
}

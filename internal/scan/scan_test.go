package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestScanListsTopLevelFilesSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "IMG_0002.jpg")
	touch(t, dir, "IMG_0001.HEIC")
	touch(t, dir, "clip.mov")
	touch(t, dir, "notes.txt")
	if err := os.MkdirAll(filepath.Join(dir, "site", "assets"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	touch(t, filepath.Join(dir, "site"), "nested.jpg")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("expected 4 top-level files, got %d", len(files))
	}
	wantNames := []string{"IMG_0001.HEIC", "IMG_0002.jpg", "clip.mov", "notes.txt"}
	for i, want := range wantNames {
		if files[i].Name != want {
			t.Fatalf("files[%d] = %s, want %s", i, files[i].Name, want)
		}
	}
	if files[0].Kind != KindImage || files[0].Stem != "IMG_0001" {
		t.Fatalf("HEIC misclassified: %+v", files[0])
	}
	if files[2].Kind != KindVideo {
		t.Fatalf("mov misclassified: %+v", files[2])
	}
	if files[3].Kind != KindOther {
		t.Fatalf("txt misclassified: %+v", files[3])
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestKindForExtCaseInsensitive(t *testing.T) {
	if KindForExt(".JPG") != KindImage {
		t.Fatal(".JPG should be an image")
	}
	if KindForExt(".MOV") != KindVideo {
		t.Fatal(".MOV should be a video")
	}
	if KindForExt(".gif") != KindOther {
		t.Fatal(".gif is not a recognized extension")
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"travelog/internal/logging"
	"travelog/internal/notes"
)

func loadStore(t *testing.T, body string) *notes.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	store, err := notes.Load(path, logging.NewNop())
	if err != nil {
		t.Fatalf("load notes: %v", err)
	}
	return store
}

func imageEntry(id, date, clock string, size int64) Entry {
	return Entry{ID: id, Type: TypeImage, Date: date, Time: clock, Size: size, Mime: "image/jpeg"}
}

func TestAssembleSortsDayByTime(t *testing.T) {
	entries := []Entry{
		imageEntry("a", "2024-05-01", "09:00", 1),
		imageEntry("b", "2024-05-01", "07:30", 1),
		imageEntry("c", "2024-05-01", "12:00", 1),
	}
	manifest := Assemble(entries, loadStore(t, "{}"), time.Now())

	if len(manifest.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(manifest.Days))
	}
	var times []string
	for _, item := range manifest.Days[0].Items {
		times = append(times, item.Time)
	}
	want := []string{"07:30", "09:00", "12:00"}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("day order %v, want %v", times, want)
		}
	}
}

func TestAssemblePortfolioTopThreeBySize(t *testing.T) {
	sizes := []int64{10, 50, 30, 90, 20}
	entries := make([]Entry, 0, len(sizes))
	for i, size := range sizes {
		entries = append(entries, imageEntry(string(rune('a'+i)), "2024-05-01", "08:00", size))
	}
	manifest := Assemble(entries, loadStore(t, "{}"), time.Now())

	items := manifest.Portfolio[0].Items
	if len(items) != 3 {
		t.Fatalf("portfolio should truncate to 3, got %d", len(items))
	}
	wantSizes := []int64{90, 50, 30}
	for i := range wantSizes {
		if items[i].Size != wantSizes[i] {
			t.Fatalf("portfolio sizes %v, want %v", items, wantSizes)
		}
	}
}

func TestAssembleCountsLivePairsOnceAsImages(t *testing.T) {
	entries := []Entry{
		{ID: "a", Type: TypeImage, Date: "2024-05-01", Time: "08:00", LiveVideo: "video/vid_a.mp4", LiveMime: "video/mp4"},
		imageEntry("b", "2024-05-01", "09:00", 1),
		{ID: "c", Type: TypeVideo, Date: "2024-05-02", Time: "10:00"},
	}
	manifest := Assemble(entries, loadStore(t, "{}"), time.Now())

	counts := manifest.Counts
	if counts.Images != 2 || counts.Videos != 1 || counts.Live != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestAssembleDaysAscendAndCarryAnnotations(t *testing.T) {
	store := loadStore(t, `{"2024-05-01":{"title":"Day one"},"2024-06-01":{"title":"No media"}}`)
	entries := []Entry{
		imageEntry("b", "2024-05-02", "08:00", 1),
		imageEntry("a", "2024-05-01", "08:00", 1),
	}
	manifest := Assemble(entries, store, time.Now())

	if len(manifest.Days) != 2 {
		t.Fatalf("annotation-only dates must not fabricate days: %+v", manifest.Days)
	}
	if manifest.Days[0].Date != "2024-05-01" || manifest.Days[1].Date != "2024-05-02" {
		t.Fatalf("days out of order: %+v", manifest.Days)
	}
	if string(manifest.Days[0].Notes) != `{"title":"Day one"}` {
		t.Fatalf("annotation not verbatim: %s", manifest.Days[0].Notes)
	}
	if string(manifest.Days[1].Notes) != "{}" {
		t.Fatalf("unannotated day should carry empty object: %s", manifest.Days[1].Notes)
	}
	if string(manifest.Portfolio[0].Notes) != `{"title":"Day one"}` {
		t.Fatalf("portfolio should share the day annotation: %s", manifest.Portfolio[0].Notes)
	}
}

func TestAssembleStampGeneratedAt(t *testing.T) {
	now := time.Date(2024, 5, 3, 18, 4, 5, 0, time.Local)
	manifest := Assemble(nil, loadStore(t, "{}"), now)
	if manifest.GeneratedAt != "2024-05-03T18:04:05" {
		t.Fatalf("generated_at = %q", manifest.GeneratedAt)
	}
}

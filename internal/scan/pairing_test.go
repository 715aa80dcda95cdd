package scan

import "testing"

func file(name string, kind Kind) SourceFile {
	stem := name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			stem = name[:i]
			break
		}
	}
	return SourceFile{Path: "/src/" + name, Name: name, Stem: stem, Kind: kind}
}

func TestClassifyLivePair(t *testing.T) {
	groups, conflicts := Classify([]SourceFile{
		file("IMG_001.jpg", KindImage),
		file("IMG_001.mov", KindVideo),
	})
	if len(conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %+v", conflicts)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if !groups[0].Live() {
		t.Fatalf("expected live pair: %+v", groups[0])
	}
	if groups[0].Image.Name != "IMG_001.jpg" || groups[0].Video.Name != "IMG_001.mov" {
		t.Fatalf("wrong members: %+v", groups[0])
	}
}

func TestClassifyVideoOnly(t *testing.T) {
	groups, _ := Classify([]SourceFile{file("IMG_002.mov", KindVideo)})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Image != nil || groups[0].Video == nil {
		t.Fatalf("expected video-only group: %+v", groups[0])
	}
	if groups[0].Live() {
		t.Fatal("video-only group must not be live")
	}
}

func TestClassifyIgnoresUnrecognizedExtensions(t *testing.T) {
	groups, conflicts := Classify([]SourceFile{
		file("notes.txt", KindOther),
		file("IMG_003.jpg", KindImage),
	})
	if len(groups) != 1 || groups[0].Stem != "IMG_003" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if len(conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %+v", conflicts)
	}
}

func TestClassifyFirstWinsWithConflictReport(t *testing.T) {
	groups, conflicts := Classify([]SourceFile{
		file("IMG_004.heic", KindImage),
		file("IMG_004.jpg", KindImage),
		file("IMG_004.mov", KindVideo),
		file("IMG_004.mp4", KindVideo),
	})
	if len(groups) != 1 {
		t.Fatalf("ambiguity must not drop the group: %+v", groups)
	}
	group := groups[0]
	if group.Image.Name != "IMG_004.heic" || group.Video.Name != "IMG_004.mov" {
		t.Fatalf("first in enumeration order should win: %+v", group)
	}
	if len(conflicts) != 2 {
		t.Fatalf("expected image and video conflicts, got %+v", conflicts)
	}
	for _, conflict := range conflicts {
		if conflict.Stem != "IMG_004" || len(conflict.Dropped) != 1 {
			t.Fatalf("unexpected conflict: %+v", conflict)
		}
	}
}

func TestClassifyStemMatchIsCaseSensitive(t *testing.T) {
	groups, _ := Classify([]SourceFile{
		file("IMG_005.jpg", KindImage),
		file("img_005.mov", KindVideo),
	})
	if len(groups) != 2 {
		t.Fatalf("case-different stems must not pair: %+v", groups)
	}
}

func TestClassifyKeepsDiscoveryOrder(t *testing.T) {
	groups, _ := Classify([]SourceFile{
		file("b.jpg", KindImage),
		file("a.jpg", KindImage),
		file("c.mov", KindVideo),
	})
	want := []string{"b", "a", "c"}
	for i, stem := range want {
		if groups[i].Stem != stem {
			t.Fatalf("group order %v, want %v", groups, want)
		}
	}
}

package identity

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestTokenStable(t *testing.T) {
	path := filepath.Join("/camino", "IMG_0001.HEIC")
	first := Token(path)
	second := Token(path)
	if first != second {
		t.Fatalf("token changed between calls: %q vs %q", first, second)
	}
	if len(first) != TokenLength {
		t.Fatalf("token length = %d, want %d", len(first), TokenLength)
	}
}

func TestTokenRelativeMatchesAbsolute(t *testing.T) {
	abs, err := filepath.Abs("IMG_0002.jpg")
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	if Token("IMG_0002.jpg") != Token(abs) {
		t.Fatal("relative and absolute paths should share a token")
	}
}

func TestTokenDistinctPaths(t *testing.T) {
	seen := make(map[string]string)
	for i := 0; i < 200; i++ {
		path := fmt.Sprintf("/camino/IMG_%04d.jpg", i)
		tok := Token(path)
		if prev, ok := seen[tok]; ok {
			t.Fatalf("token collision between %q and %q", prev, path)
		}
		seen[tok] = path
	}
}

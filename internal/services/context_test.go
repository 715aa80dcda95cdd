package services

import (
	"context"
	"testing"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := RunIDFromContext(ctx); ok {
		t.Fatal("empty context should carry no run id")
	}
	ctx = WithRunID(ctx, "run-123")
	id, ok := RunIDFromContext(ctx)
	if !ok || id != "run-123" {
		t.Fatalf("got %q ok=%v", id, ok)
	}
}

func TestStageAndSourceRoundTrip(t *testing.T) {
	ctx := WithStage(context.Background(), "derive")
	ctx = WithSourceFile(ctx, "/camino/IMG_0001.jpg")

	stage, ok := StageFromContext(ctx)
	if !ok || stage != "derive" {
		t.Fatalf("stage = %q ok=%v", stage, ok)
	}
	src, ok := SourceFileFromContext(ctx)
	if !ok || src != "/camino/IMG_0001.jpg" {
		t.Fatalf("source = %q ok=%v", src, ok)
	}
}

func TestEmptyValuesIgnored(t *testing.T) {
	ctx := context.Background()
	if WithRunID(ctx, "") != ctx {
		t.Fatal("empty run id should return the original context")
	}
	if WithStage(ctx, "") != ctx {
		t.Fatal("empty stage should return the original context")
	}
}

package store

import (
	"bytes"
	"context"
	"testing"
)

func TestFileKV_RoundTrip(t *testing.T) {
	kv, err := NewFileKV("theater1", t.TempDir())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	ctx := context.Background()
	if _, found, err := kv.Get(ctx, "currentLayout"); err != nil || found {
		t.Fatalf("expected absent slot, got found=%v err=%v", found, err)
	}

	payload := []byte(`{"seats":{}}`)
	if err := kv.Put(ctx, "currentLayout", payload); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	data, found, err := kv.Get(ctx, "currentLayout")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !found {
		t.Fatal("expected slot to be found after put")
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("expected %q, got %q", payload, data)
	}
}

func TestFileKV_TheatersAreIsolated(t *testing.T) {
	base := t.TempDir()
	first, err := NewFileKV("t1", base)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second, err := NewFileKV("t2", base)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	ctx := context.Background()
	if err := first.Put(ctx, "currentLayout", []byte("one")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, found, _ := second.Get(ctx, "currentLayout"); found {
		t.Fatal("expected theater slots to be isolated")
	}
}

func TestFileKV_RequiresTheaterID(t *testing.T) {
	if _, err := NewFileKV("  ", t.TempDir()); err == nil {
		t.Fatal("expected error for blank theater id")
	}
}

func TestFileKV_DefaultsToUserCacheDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)

	kv, err := NewFileKV("t1", "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := kv.Put(context.Background(), "currentLayout", []byte("x")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, found, err := kv.Get(context.Background(), "currentLayout"); err != nil || !found {
		t.Fatalf("expected round-trip under cache dir, got found=%v err=%v", found, err)
	}
}

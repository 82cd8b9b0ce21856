package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)

	raw := []byte(`{"groupedItineraryResponse":{}}`)
	if err := s.Put(ctx, "doc-1", raw); err != nil {
		t.Fatalf("Put: %v", err)
	}
	raw[0] = 'X'

	got, ok, err := s.Get(ctx, "doc-1")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if string(got) != `{"groupedItineraryResponse":{}}` {
		t.Errorf("Get = %q, expected the bytes as stored", got)
	}

	if _, ok, _ := s.Get(ctx, "doc-2"); ok {
		t.Error("Get(doc-2) found a document never stored")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if err := s.Put(ctx, "doc", []byte("{}")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, ok, _ := s.Get(ctx, "doc"); !ok {
		t.Error("document expired early")
	}

	now = now.Add(2 * time.Second)
	if _, ok, _ := s.Get(ctx, "doc"); ok {
		t.Error("document outlived its ttl")
	}
}

func TestMemoryStoreKeepsReplacedEntry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	_ = s.Put(ctx, "doc", []byte("old"))

	// Get saw the old entry expired; a Put lands before the delete.
	expiredAt := now.Add(2 * time.Minute)
	now = expiredAt
	_ = s.Put(ctx, "doc", []byte("new"))

	got, ok, err := s.dropIfExpired("doc", expiredAt)
	if err != nil || !ok || string(got) != "new" {
		t.Errorf("dropIfExpired = %q, %v, %v; expected the replacement to survive", got, ok, err)
	}
	if _, ok, _ := s.Get(ctx, "doc"); !ok {
		t.Error("replacement document lost")
	}
}

func TestMemoryStoreSweepsUnreadEntries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_ = s.Put(ctx, "a", []byte("{}"))
	_ = s.Put(ctx, "b", []byte("{}"))

	now = now.Add(2 * time.Minute)
	_ = s.Put(ctx, "c", []byte("{}"))

	if len(s.entries) != 1 {
		t.Errorf("entries = %d, expected only the fresh document", len(s.entries))
	}
	if _, ok := s.entries["c"]; !ok {
		t.Error("fresh document swept")
	}
}

func TestMemoryStoreClose(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	_ = s.Put(ctx, "doc", []byte("{}"))

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "doc"); ok {
		t.Error("document survived Close")
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sample.json"), []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := NewFileStore(dir)

	got, ok, err := s.Get(ctx, "sample.json")
	if err != nil || !ok || string(got) != `{"a":1}` {
		t.Errorf("Get(sample.json) = %q, %v, %v", got, ok, err)
	}

	if _, ok, err := s.Get(ctx, "missing.json"); ok || err != nil {
		t.Errorf("Get(missing.json) = %v, %v; expected not found without error", ok, err)
	}

	if _, ok, _ := s.Get(ctx, "../sample.json"); !ok {
		t.Error("Get(../sample.json) should stay inside root")
	}

	err = s.Put(ctx, "new.json", []byte("{}"))
	var storeErr *StoreError
	if !errors.As(err, &storeErr) || !errors.Is(err, ErrReadOnly) {
		t.Errorf("Put error = %v, expected read-only StoreError", err)
	}
}

func TestFileStoreAbsolutePaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, ok, err := NewFileStore("").Get(context.Background(), path); !ok || err != nil {
		t.Errorf("Get(%s) = %v, %v", path, ok, err)
	}
}

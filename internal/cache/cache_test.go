package cache

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestDocumentKey(t *testing.T) {
	a := DocumentKey([]byte("POLICY NUMBER: ABC-123"))
	b := DocumentKey([]byte("POLICY NUMBER: ABC-123"))
	c := DocumentKey([]byte("POLICY NUMBER: XYZ-999"))

	if a != b {
		t.Error("same bytes must yield the same key")
	}
	if a == c {
		t.Error("different bytes must yield different keys")
	}
	if !strings.HasPrefix(a, "fnoltriage:v1:") {
		t.Errorf("key %q missing namespace prefix", a)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("absent"); found {
		t.Error("empty cache reported a hit")
	}

	if err := c.Set("k", []byte("extracted text"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || !bytes.Equal(val, []byte("extracted text")) {
		t.Errorf("Get = %q (found=%v), want extracted text", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("deleted key still present")
	}
}

func TestDiskCache(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("text"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || !bytes.Equal(val, []byte("text")) {
		t.Errorf("Get = %q (found=%v), want text", val, found)
	}
}

func TestDiskCache_ExpiredEntryDropped(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("text"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("expired entry reported as a hit")
	}
}

func TestLayeredCache_DiskHitPromotedToMemory(t *testing.T) {
	dir := t.TempDir()

	first := NewLayeredCache(time.Minute, dir, time.Hour)
	if err := first.Set("k", []byte("text"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh layered cache over the same directory has a cold memory
	// layer; the value must come back from disk and get promoted.
	second := NewLayeredCache(time.Minute, dir, time.Hour)
	val, found := second.Get("k")
	if !found || !bytes.Equal(val, []byte("text")) {
		t.Fatalf("Get = %q (found=%v), want disk hit", val, found)
	}

	if err := second.disk.Clear(); err != nil {
		t.Fatalf("Clear disk: %v", err)
	}
	if _, found := second.Get("k"); !found {
		t.Error("promoted entry missing from memory layer")
	}
}

func TestLayeredCache_Clear(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("text"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("cleared cache reported a hit")
	}
}

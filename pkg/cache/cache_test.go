package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	wgerrors "github.com/matzehuels/wikigraph/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "wiki:Go", []byte(`{"parse":{}}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "wiki:Go")
	if err != nil || !hit {
		t.Fatalf("Get() = %v, %v; want hit", hit, err)
	}
	if string(data) != `{"parse":{}}` {
		t.Errorf("Get() data = %q", data)
	}

	if _, hit, _ := c.Get(ctx, "wiki:Rust"); hit {
		t.Error("Get() hit for missing key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("Get() returned hit for expired key")
	}
	if _, err := os.Stat(c.path("key")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCache_NoTTL(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); !hit {
		t.Error("entry without TTL should never expire")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, hit, err := c.Get(ctx, "key")
	if err != nil || hit {
		t.Errorf("Get() corrupt = %v, %v; want miss without error", hit, err)
	}
}

func TestFileCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete of missing key should not fail: %v", err)
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() removed %d entries, want 2", n)
	}
	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("entry survived Clear")
	}
}

func TestFileCache_PathSharding(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	p1 := c.path("test")
	p2 := c.path("test")
	if p1 != p2 {
		t.Error("path should be deterministic")
	}
	if p1 == c.path("other") {
		t.Error("different keys should produce different paths")
	}
	shard := filepath.Base(filepath.Dir(p1))
	if len(shard) != 2 {
		t.Errorf("shard dir = %q, want 2 characters", shard)
	}
}

func TestNewFileCache_EmptyDir(t *testing.T) {
	if _, err := NewFileCache(""); !errors.Is(err, ErrNoDir) {
		t.Errorf("NewFileCache(\"\") error = %v, want ErrNoDir", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	c, err := New(ctx, Config{})
	if err != nil {
		t.Fatalf("New(default): %v", err)
	}
	if _, ok := c.(NullCache); !ok {
		t.Errorf("New(default) = %T, want NullCache", c)
	}

	c, err = New(ctx, Config{Backend: BackendFile, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("New(file): %v", err)
	}
	if _, ok := c.(*FileCache); !ok {
		t.Errorf("New(file) = %T, want *FileCache", c)
	}

	_, err = New(ctx, Config{Backend: "memcached"})
	var ube *UnknownBackendError
	if !errors.As(err, &ube) {
		t.Errorf("New(memcached) error = %v, want UnknownBackendError", err)
	}
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Port 1 is reserved and refuses connections.
	_, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("NewRedisCache() should fail when Redis is unreachable")
	}
	if !wgerrors.Is(err, wgerrors.ErrCodeNetwork) {
		t.Errorf("NewRedisCache() code = %q, want %s", wgerrors.GetCode(err), wgerrors.ErrCodeNetwork)
	}
}

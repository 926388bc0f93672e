package cache

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Errorf("Get = (%q, %v), want miss", data, hit)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get(missing) should miss")
	}

	if err := c.Set(ctx, "svg", []byte("<svg/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "svg")
	if err != nil || !hit {
		t.Fatalf("Get = (%v, %v), want hit", hit, err)
	}
	if !bytes.Equal(data, []byte("<svg/>")) {
		t.Errorf("Get = %q, want <svg/>", data)
	}

	if err := c.Delete(ctx, "svg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "svg"); err != nil {
		t.Errorf("Delete twice: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("Get(corrupt) = (%v, %v), want silent miss", hit, err)
	}
}

func TestFileCacheClearAndPrune(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_ = c.Set(ctx, "live", []byte("1"), time.Hour)
	_ = c.Set(ctx, "forever", []byte("2"), 0)
	_ = c.Set(ctx, "stale", []byte("3"), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	n, err := c.Prune()
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("Prune removed %d, want 1", n)
	}
	if _, hit, _ := c.Get(ctx, "live"); !hit {
		t.Error("Prune removed a live entry")
	}

	n, err = c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear removed %d, want 2", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("Clear left %d entries in %s", len(entries), c.Dir())
	}
}

func TestFileCacheClearMissingDir(t *testing.T) {
	c := &FileCache{dir: filepath.Join(t.TempDir(), "gone")}
	if n, err := c.Clear(); n != 0 || err != nil {
		t.Errorf("Clear = (%d, %v), want (0, nil)", n, err)
	}
}

func TestScoped(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	a := Scoped(inner, "a:")
	b := Scoped(inner, "b:")

	_ = a.Set(ctx, "k", []byte("from a"), 0)
	if _, hit, _ := b.Get(ctx, "k"); hit {
		t.Error("scopes should not share keys")
	}
	if data, hit, _ := inner.Get(ctx, "a:k"); !hit || string(data) != "from a" {
		t.Errorf("inner Get(a:k) = (%q, %v)", data, hit)
	}
	if err := a.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := inner.Get(ctx, "a:k"); hit {
		t.Error("scoped Delete should remove the prefixed key")
	}

	if _, hit, err := Scoped(nil, "x:").Get(ctx, "k"); hit || err != nil {
		t.Error("Scoped(nil) should behave as a null cache")
	}
}

func TestKey(t *testing.T) {
	k1 := Key("artifact", "abc", "svg")
	k2 := Key("artifact", "abc", "svg")
	k3 := Key("artifact", "abc", "png")

	if k1 != k2 {
		t.Error("Key should be deterministic")
	}
	if k1 == k3 {
		t.Error("different parts should give different keys")
	}
	if !strings.HasPrefix(k1, "artifact:") {
		t.Errorf("Key = %q, want artifact: prefix", k1)
	}
	if got := len(strings.TrimPrefix(k1, "artifact:")); got != 64 {
		t.Errorf("hash length = %d, want 64", got)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		input []byte
		want  string
	}{
		{[]byte(""), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{[]byte("hello"), "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}
	for _, tt := range tests {
		if got := Hash(tt.input); got != tt.want {
			t.Errorf("Hash(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestRetryWithBackoff(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = time.Second })
	ctx := context.Background()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 3 {
			return Retryable(errors.New("flaky"))
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("got (%v, %d calls), want success on third call", err, calls)
	}

	calls = 0
	permanent := errors.New("permanent")
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) || calls != 1 {
		t.Errorf("got (%v, %d calls), want permanent after 1 call", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(errors.New("down"))
	})
	if !IsRetryable(err) || calls != 3 {
		t.Errorf("got (%v, %d calls), want retryable after 3 calls", err, calls)
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
	inner := errors.New("inner")
	err := Retryable(inner)
	if !errors.Is(err, inner) {
		t.Error("Retryable should unwrap to inner")
	}
	if err.Error() != "inner" {
		t.Errorf("Error() = %q", err.Error())
	}
	if IsRetryable(inner) {
		t.Error("plain error should not be retryable")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = time.Second })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("NewRedisCache(unreachable) = %v, want ErrNetwork", err)
	}
}

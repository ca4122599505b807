package cubislang

import (
	"testing"
	"time"
)

func TestMemoryCachePutGet(t *testing.T) {
	c := NewMemoryCache(time.Hour, 10)

	c.Put("Hello", "en", "es", "Hola")
	got, ok := c.Get("Hello", "en", "es")
	if !ok || got != "Hola" {
		t.Fatalf("Get = %q, %v; want Hola, true", got, ok)
	}
	if _, ok := c.Get("Hello", "en", "fr"); ok {
		t.Error("different locale pair should miss")
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d; want 1", c.Size())
	}
}

func TestMemoryCacheEmptyTranslationNotStored(t *testing.T) {
	c := NewMemoryCache(time.Hour, 10)
	c.Put("Hello", "en", "es", "")
	if c.Size() != 0 {
		t.Fatalf("Size = %d; want 0", c.Size())
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, 10)
	c.Put("Hello", "en", "es", "Hola")
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("Hello", "en", "es"); ok {
		t.Fatal("expired entry should miss")
	}
	if c.Size() != 0 {
		t.Errorf("Size after expired Get = %d; want 0", c.Size())
	}
}

func TestMemoryCacheNoExpiryWhenTTLZero(t *testing.T) {
	c := NewMemoryCache(0, 10)
	c.Put("Hello", "en", "es", "Hola")
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("Hello", "en", "es"); !ok {
		t.Fatal("entry should not expire with zero TTL")
	}
}

func TestMemoryCacheEvictsOldest(t *testing.T) {
	c := NewMemoryCache(time.Hour, 2)
	c.Put("one", "en", "es", "uno")
	time.Sleep(time.Millisecond)
	c.Put("two", "en", "es", "dos")
	time.Sleep(time.Millisecond)
	c.Put("three", "en", "es", "tres")

	if c.Size() != 2 {
		t.Fatalf("Size = %d; want 2", c.Size())
	}
	if _, ok := c.Get("one", "en", "es"); ok {
		t.Error("oldest entry should be evicted")
	}
	if _, ok := c.Get("three", "en", "es"); !ok {
		t.Error("newest entry should survive")
	}
}

func TestMemoryCacheOverwriteDoesNotEvict(t *testing.T) {
	c := NewMemoryCache(time.Hour, 2)
	c.Put("one", "en", "es", "uno")
	c.Put("two", "en", "es", "dos")
	c.Put("one", "en", "es", "UNO")

	if c.Size() != 2 {
		t.Fatalf("Size = %d; want 2", c.Size())
	}
	if got, _ := c.Get("one", "en", "es"); got != "UNO" {
		t.Errorf("overwritten value = %q; want UNO", got)
	}
}

func TestMemoryCacheCleanupExpired(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, 10)
	c.Put("one", "en", "es", "uno")
	c.Put("two", "en", "es", "dos")
	time.Sleep(20 * time.Millisecond)
	c.Put("three", "en", "es", "tres")

	if removed := c.CleanupExpired(); removed != 2 {
		t.Fatalf("CleanupExpired = %d; want 2", removed)
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d; want 1", c.Size())
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache(time.Hour, 10)
	c.Put("one", "en", "es", "uno")
	c.Put("two", "en", "es", "dos")
	c.Clear()
	if c.Size() != 0 {
		t.Fatalf("Size after Clear = %d; want 0", c.Size())
	}
}

package cubislang

import (
	"sync"
	"testing"
	"time"
)

func TestOnLoadedFires(t *testing.T) {
	var mu sync.Mutex
	var loaded []string
	lang := New(
		WithResourcePath(standardFixtures(t)),
		WithOnLoaded(func(locale string) {
			mu.Lock()
			loaded = append(loaded, locale)
			mu.Unlock()
		}),
	)
	defer lang.Close()

	lang.SetLocale("fr")
	// Switching to an already loaded locale still notifies.
	lang.SetLocale("en")

	mu.Lock()
	defer mu.Unlock()
	if len(loaded) != 3 {
		t.Fatalf("loaded notifications = %v; want 3 entries", loaded)
	}
	if loaded[0] != "en" || loaded[1] != "fr" || loaded[2] != "en" {
		t.Errorf("loaded order = %v", loaded)
	}
}

func TestOnErrorFires(t *testing.T) {
	var mu sync.Mutex
	var failures []string
	lang := New(
		WithResourcePath(t.TempDir()),
		WithOnError(func(locale string, err error) {
			mu.Lock()
			failures = append(failures, locale)
			mu.Unlock()
		}),
	)
	defer lang.Close()

	mu.Lock()
	defer mu.Unlock()
	// The eager default locale load fails against an empty directory.
	if len(failures) != 1 || failures[0] != "en" {
		t.Fatalf("error notifications = %v; want [en]", failures)
	}
}

func TestOnMissingFires(t *testing.T) {
	var mu sync.Mutex
	var missed []string
	lang := New(
		WithResourcePath(standardFixtures(t)),
		WithOnMissing(func(locale, key string) {
			mu.Lock()
			missed = append(missed, locale+":"+key)
			mu.Unlock()
		}),
	)
	defer lang.Close()

	lang.Get("greeting")
	lang.Get("absent.key")
	// Context lookups report the qualified key they were asked for.
	lang.GetWithContext("ui", "absent_button")

	mu.Lock()
	defer mu.Unlock()
	want := []string{"en:absent.key", "en:ui.absent_button"}
	if len(missed) != 2 || missed[0] != want[0] || missed[1] != want[1] {
		t.Fatalf("missing notifications = %v; want %v", missed, want)
	}
}

func TestListenerPanicIsContained(t *testing.T) {
	lang := New(
		WithResourcePath(standardFixtures(t)),
		WithOnMissing(func(locale, key string) {
			panic("listener bug")
		}),
	)
	defer lang.Close()

	// Must not panic through to the caller.
	if got := lang.Get("absent.key"); got != "absent.key" {
		t.Errorf("Get = %q", got)
	}
}

func TestPreloadLocales(t *testing.T) {
	lang := New(
		WithResourcePath(standardFixtures(t)),
		WithPreloadLocales("fr", "zh"),
	)
	defer lang.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(lang.LoadedLocales()) == 3 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	got := lang.LoadedLocales()
	if len(got) != 3 {
		t.Fatalf("LoadedLocales after preload = %v; want [en fr zh]", got)
	}
}

package cubislang

import (
	"log"
	"os"
	"sync"
	"time"
)

// Watch polls the locale files of every loaded locale and reloads the
// ones whose modification time changes. It returns a stop function
// that is safe to call more than once. Watching also stops when the
// instance is closed.
func (l *Lang) Watch(interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}
	if l.closed.Load() {
		return func() {}
	}
	quit := make(chan struct{})
	var once sync.Once

	mtimes := make(map[string]time.Time)
	snapshot := func() {
		for _, locale := range l.LoadedLocales() {
			if info, err := os.Stat(l.localeFilePath(locale)); err == nil {
				mtimes[locale] = info.ModTime()
			}
		}
	}
	snapshot()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				for _, locale := range l.LoadedLocales() {
					info, err := os.Stat(l.localeFilePath(locale))
					if err != nil {
						continue
					}
					last, seen := mtimes[locale]
					if seen && info.ModTime().Equal(last) {
						continue
					}
					mtimes[locale] = info.ModTime()
					if seen {
						if l.opts.Debug {
							log.Printf("cubislang: %s changed on disk, reloading", locale)
						}
						l.Reload(locale)
					}
				}
			case <-quit:
				return
			case <-l.done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(quit) }) }
}

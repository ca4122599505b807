package cubislang

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/CUBETIQ/cubis-lang-go/internal/nested"
)

// writebackQueue collects missing keys per locale and writes them to
// the locale files as empty entries, so translators see exactly what
// is needed. Keys are deduplicated; a flush happens when the batch
// size is reached, on the flush interval, and on Close.
type writebackQueue struct {
	lang      *Lang
	batchSize int

	mu   sync.Mutex
	keys map[string]map[string]struct{}
}

func newWritebackQueue(l *Lang, batchSize int) *writebackQueue {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &writebackQueue{
		lang:      l,
		batchSize: batchSize,
		keys:      make(map[string]map[string]struct{}),
	}
}

// run flushes on a fixed interval until the instance closes. The
// caller holds the WaitGroup slot.
func (q *writebackQueue) run(interval time.Duration) {
	defer q.lang.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			q.flush()
		case <-q.lang.done:
			return
		}
	}
}

func (q *writebackQueue) add(locale, key string) {
	if locale == "" || key == "" {
		return
	}
	q.mu.Lock()
	if q.keys[locale] == nil {
		q.keys[locale] = make(map[string]struct{})
	}
	q.keys[locale][key] = struct{}{}
	batched := len(q.keys[locale])
	q.mu.Unlock()

	if batched >= q.batchSize {
		q.flush()
	}
}

// flush writes every collected key to disk and returns the first
// write failure. Failures are also reported through the error
// listeners and the affected keys are kept for the next attempt.
func (q *writebackQueue) flush() error {
	q.mu.Lock()
	batch := q.keys
	q.keys = make(map[string]map[string]struct{})
	q.mu.Unlock()

	var firstErr error
	for locale, set := range batch {
		if len(set) == 0 {
			continue
		}
		keys := make([]string, 0, len(set))
		for key := range set {
			keys = append(keys, key)
		}
		if err := q.lang.appendMissingKeys(locale, keys); err != nil {
			if q.lang.opts.Debug {
				log.Printf("cubislang: write missing keys for %s: %v", locale, err)
			}
			q.lang.notifyError(locale, err)
			if firstErr == nil {
				firstErr = err
			}
			q.mu.Lock()
			if q.keys[locale] == nil {
				q.keys[locale] = make(map[string]struct{})
			}
			for key := range set {
				q.keys[locale][key] = struct{}{}
			}
			q.mu.Unlock()
		}
	}
	return firstErr
}

func (q *writebackQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	total := 0
	for _, set := range q.keys {
		total += len(set)
	}
	return total
}

// appendMissingKeys adds the given keys to a locale file with empty
// string values. Keys that already exist in the file keep their value.
func (l *Lang) appendMissingKeys(locale string, keys []string) error {
	tree, err := readLocaleFile(l.localeFilePath(locale))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		tree = make(map[string]any)
	}
	changed := false
	for _, key := range keys {
		if _, exists := nested.Lookup(tree, key); exists {
			continue
		}
		nested.Set(tree, key, "")
		changed = true
	}
	if !changed {
		return nil
	}
	return writeJSONFile(filepath.Join(l.opts.ResourcePath, locale+".json"), tree)
}

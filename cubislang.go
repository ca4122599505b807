// Package cubislang is a lightweight localization library. Locale
// files are JSON, TOML or YAML trees of dot addressable keys, loaded
// from disk or a remote endpoint, with fallback resolution, message
// formatting, combined multi-locale output and optional machine
// translation of missing entries.
package cubislang

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"

	"github.com/CUBETIQ/cubis-lang-go/internal/nested"
)

// Lang is a localization instance. All methods are safe for concurrent
// use.
type Lang struct {
	opts   Options
	client *http.Client

	mu      sync.RWMutex
	store   map[string]map[string]any
	current string
	pending map[string]map[string]string

	missing *writebackQueue

	closeOnce sync.Once
	closed    atomic.Bool
	closeErr  error
	done      chan struct{}
	wg        sync.WaitGroup
}

// New creates an instance, loads the default locale eagerly and
// preloads any configured locales in the background.
func New(opts ...Option) *Lang {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Lang{
		opts:    o,
		client:  &http.Client{Timeout: 30 * time.Second},
		store:   make(map[string]map[string]any),
		current: normalizeLocale(o.DefaultLocale),
		pending: make(map[string]map[string]string),
		done:    make(chan struct{}),
	}
	l.missing = newWritebackQueue(l, o.MissingBatchSize)

	l.ensureLocale(l.current)

	for _, locale := range o.PreloadLocales {
		locale := normalizeLocale(locale)
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			l.ensureLocale(locale)
		}()
	}

	if o.WriteMissingKeys && o.MissingFlushInterval > 0 {
		l.wg.Add(1)
		go l.missing.run(o.MissingFlushInterval)
	}

	return l
}

// normalizeLocale canonicalizes a locale tag, keeping unknown tags
// verbatim so custom locale names still work.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}

// ensureLocale loads a locale into memory if it is not already there.
// It reports whether the locale is available afterwards.
func (l *Lang) ensureLocale(locale string) bool {
	if locale == "" || l.closed.Load() {
		return false
	}
	l.mu.RLock()
	_, ok := l.store[locale]
	l.mu.RUnlock()
	if ok {
		return true
	}

	tree, err := l.loadLocale(locale)
	if err != nil {
		if l.opts.Debug {
			log.Printf("cubislang: load %s: %v", locale, err)
		}
		l.notifyError(locale, err)
		return false
	}
	if tree == nil {
		tree = make(map[string]any)
	}

	l.mu.Lock()
	l.store[locale] = tree
	l.mu.Unlock()

	if l.opts.Debug {
		log.Printf("cubislang: loaded locale %s", locale)
	}
	l.notifyLoaded(locale)
	return true
}

// lookup resolves a key against a single loaded locale.
func (l *Lang) lookup(locale, key string) (string, bool) {
	l.mu.RLock()
	tree, ok := l.store[locale]
	l.mu.RUnlock()
	if !ok {
		return "", false
	}
	return nested.String(tree, key)
}

// resolve finds the value for a key in the given locale, falling back
// to the fallback locale and, when enabled, machine translating the
// fallback value into the requested locale.
func (l *Lang) resolve(locale, key string) (string, bool) {
	if l.ensureLocale(locale) {
		if value, ok := l.lookup(locale, key); ok {
			return value, true
		}
	}

	fallback := normalizeLocale(l.opts.FallbackLocale)
	if fallback == "" || fallback == locale {
		return "", false
	}
	if !l.ensureLocale(fallback) {
		return "", false
	}
	value, ok := l.lookup(fallback, key)
	if !ok {
		return "", false
	}

	if l.opts.AutoTranslate && l.opts.Adapter != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		translated, err := l.opts.Adapter.Translate(ctx, value, fallback, locale)
		if err == nil && translated != "" {
			return translated, true
		}
		if l.opts.Debug && err != nil {
			log.Printf("cubislang: auto translate %q to %s: %v", key, locale, err)
		}
	}
	return value, true
}

func (l *Lang) combineActive() bool {
	return l.opts.CombineEnabled && len(l.opts.CombineLocales) > 0
}

// Get returns the value for a key in the active locale, applying
// positional {{0}} style placeholders. When combined locales are
// configured the values from each are joined instead.
func (l *Lang) Get(key string, args ...any) string {
	if l.combineActive() {
		return l.GetCombined(key, args...)
	}
	l.mu.RLock()
	locale := l.current
	l.mu.RUnlock()

	value, ok := l.resolve(locale, key)
	if !ok {
		l.reportMissing(locale, key)
		return key
	}
	return formatPositional(value, args...)
}

// GetCombined resolves a key against every combined locale without
// fallback hops and joins the hits with the configured separator. Each
// per-locale miss is reported; if every locale misses the key itself
// is returned. Positional args apply to the joined result.
func (l *Lang) GetCombined(key string, args ...any) string {
	values := make([]string, 0, len(l.opts.CombineLocales))
	for _, locale := range l.opts.CombineLocales {
		locale = normalizeLocale(locale)
		if !l.ensureLocale(locale) {
			l.reportMissing(locale, key)
			continue
		}
		value, ok := l.lookup(locale, key)
		if !ok {
			l.reportMissing(locale, key)
			continue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return key
	}
	return formatPositional(strings.Join(values, l.opts.CombineSeparator), args...)
}

// GetPlural returns the value for a key with the count substituted and
// a naive singular form applied when count is one.
func (l *Lang) GetPlural(key string, count int) string {
	l.mu.RLock()
	locale := l.current
	l.mu.RUnlock()

	value, ok := l.resolve(locale, key)
	if !ok {
		l.reportMissing(locale, key)
		return key
	}
	return formatCount(value, count)
}

// GetWithContext tries the context-qualified key first ("ctx.key") and
// falls back to the bare key before giving up.
func (l *Lang) GetWithContext(contextName, key string, args ...any) string {
	l.mu.RLock()
	locale := l.current
	l.mu.RUnlock()

	missingKey := key
	if contextName != "" {
		missingKey = contextName + "." + key
		if value, ok := l.resolve(locale, missingKey); ok {
			return formatPositional(value, args...)
		}
	}
	if value, ok := l.resolve(locale, key); ok {
		return formatPositional(value, args...)
	}
	l.reportMissing(locale, missingKey)
	return key
}

// GetWithKeywords returns the value for a key with {{name}} style
// placeholders filled from the given map.
func (l *Lang) GetWithKeywords(key string, data map[string]any) string {
	l.mu.RLock()
	locale := l.current
	l.mu.RUnlock()

	value, ok := l.resolve(locale, key)
	if !ok {
		l.reportMissing(locale, key)
		return key
	}
	return formatKeywords(value, data)
}

// T resolves a key for an explicit locale with keyword placeholders.
// It does not change the active locale.
func (l *Lang) T(locale, key string, data map[string]any) string {
	locale = normalizeLocale(locale)
	value, ok := l.resolve(locale, key)
	if !ok {
		l.reportMissing(locale, key)
		return key
	}
	return formatKeywords(value, data)
}

// SetLocale switches the active locale, loading it on first use.
func (l *Lang) SetLocale(locale string) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}
	l.mu.Lock()
	l.current = locale
	_, loaded := l.store[locale]
	l.mu.Unlock()

	if loaded {
		l.notifyLoaded(locale)
		return
	}
	l.ensureLocale(locale)
}

// CurrentLocale returns the active locale.
func (l *Lang) CurrentLocale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// LoadedLocales returns the locales currently held in memory, sorted.
func (l *Lang) LoadedLocales() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	locales := make([]string, 0, len(l.store))
	for locale := range l.store {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Reload drops a locale from memory and loads it again from its
// source. It reports whether the reload succeeded.
func (l *Lang) Reload(locale string) bool {
	locale = normalizeLocale(locale)
	l.mu.Lock()
	delete(l.store, locale)
	l.mu.Unlock()
	return l.ensureLocale(locale)
}

// ClearCache drops every loaded locale from memory. Locales are loaded
// again on next use.
func (l *Lang) ClearCache() {
	l.mu.Lock()
	l.store = make(map[string]map[string]any)
	l.mu.Unlock()
}

// Set stores a value for a key in the active locale, both in memory
// and in the pending change set written by Commit.
func (l *Lang) Set(key, value string) {
	l.mu.RLock()
	locale := l.current
	l.mu.RUnlock()
	l.SetIn(locale, key, value)
}

// SetIn stores a value for a key in an explicit locale.
func (l *Lang) SetIn(locale, key, value string) {
	locale = normalizeLocale(locale)
	if locale == "" || key == "" {
		return
	}
	l.ensureLocale(locale)

	l.mu.Lock()
	defer l.mu.Unlock()
	tree, ok := l.store[locale]
	if !ok {
		tree = make(map[string]any)
		l.store[locale] = tree
	}
	nested.Set(tree, key, value)
	if l.pending[locale] == nil {
		l.pending[locale] = make(map[string]string)
	}
	l.pending[locale][key] = value
}

// Commit writes all pending changes to their locale files and reports
// the number of keys written. Pending changes are cleared on success.
func (l *Lang) Commit() (int, error) {
	if l.closed.Load() {
		return 0, ErrClosed
	}
	l.mu.Lock()
	pending := l.pending
	l.pending = make(map[string]map[string]string)
	l.mu.Unlock()

	total := 0
	for locale, kv := range pending {
		n, err := l.mergeIntoFile(locale, kv)
		if err != nil {
			l.mu.Lock()
			if l.pending[locale] == nil {
				l.pending[locale] = kv
			} else {
				for k, v := range kv {
					l.pending[locale][k] = v
				}
			}
			l.mu.Unlock()
			return total, err
		}
		total += n
	}
	return total, nil
}

// FlushMissingKeys writes all collected missing keys to disk now.
func (l *Lang) FlushMissingKeys() error {
	return l.missing.flush()
}

// Close flushes pending missing keys, stops background work and drops
// all loaded locales. It is safe to call more than once; later calls
// report the first call's flush outcome.
func (l *Lang) Close() error {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
		if l.opts.WriteMissingKeys {
			l.closeErr = l.missing.flush()
		}
		l.wg.Wait()
		l.mu.Lock()
		l.store = make(map[string]map[string]any)
		l.mu.Unlock()
	})
	return l.closeErr
}

// Closed reports whether Close has been called.
func (l *Lang) Closed() bool {
	return l.closed.Load()
}

func (l *Lang) reportMissing(locale, key string) {
	l.notifyMissing(locale, key)
	if l.opts.WriteMissingKeys {
		l.missing.add(locale, key)
	}
}

// Listener panics are contained so a misbehaving callback cannot take
// down the caller.
func (l *Lang) notifyLoaded(locale string) {
	for _, fn := range l.opts.OnLoaded {
		l.safeCall(func() { fn(locale) })
	}
}

func (l *Lang) notifyError(locale string, err error) {
	for _, fn := range l.opts.OnError {
		l.safeCall(func() { fn(locale, err) })
	}
}

func (l *Lang) notifyMissing(locale, key string) {
	for _, fn := range l.opts.OnMissing {
		l.safeCall(func() { fn(locale, key) })
	}
}

func (l *Lang) safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil && l.opts.Debug {
			log.Printf("cubislang: listener panic: %v", r)
		}
	}()
	fn()
}

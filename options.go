package cubislang

import "time"

// Default configuration values applied by New when no overriding
// option is given.
const (
	DefaultLocale           = "en"
	DefaultResourcePath     = "./resources/lang/"
	DefaultCachePath        = "./resources/cache/lang/"
	DefaultCacheTTL         = 24 * time.Hour
	DefaultCombineSeparator = " / "
	DefaultBatchSize        = 50
	DefaultFlushInterval    = 30 * time.Second
)

// LoadedFunc is notified after a locale has been loaded into memory.
type LoadedFunc func(locale string)

// ErrorFunc is notified when loading or flushing fails. The locale may
// be empty when the failure is not tied to a single locale.
type ErrorFunc func(locale string, err error)

// MissingFunc is notified when a key cannot be resolved for a locale.
type MissingFunc func(locale, key string)

// Options holds the full configuration of a Lang instance. Use the
// Option helpers rather than constructing it directly.
type Options struct {
	DefaultLocale  string
	FallbackLocale string
	ResourcePath   string

	RemoteEnabled     bool
	RemoteURL         string
	EncryptionEnabled bool
	DecryptionKey     []byte
	CacheRemote       bool
	CacheTTL          time.Duration
	CachePath         string

	CombineEnabled   bool
	CombineLocales   []string
	CombineSeparator string

	PreloadLocales []string

	AutoTranslate bool
	Adapter       Adapter

	WriteMissingKeys     bool
	MissingBatchSize     int
	MissingFlushInterval time.Duration

	Debug bool

	OnLoaded  []LoadedFunc
	OnError   []ErrorFunc
	OnMissing []MissingFunc
}

// Option mutates an Options value during New.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		DefaultLocale:        DefaultLocale,
		FallbackLocale:       DefaultLocale,
		ResourcePath:         DefaultResourcePath,
		CacheRemote:          true,
		CacheTTL:             DefaultCacheTTL,
		CachePath:            DefaultCachePath,
		CombineEnabled:       true,
		CombineSeparator:     DefaultCombineSeparator,
		MissingBatchSize:     DefaultBatchSize,
		MissingFlushInterval: DefaultFlushInterval,
	}
}

// WithDefaultLocale sets the locale used until SetLocale is called.
func WithDefaultLocale(locale string) Option {
	return func(o *Options) { o.DefaultLocale = locale }
}

// WithFallbackLocale sets the locale consulted when a key is missing
// from the active locale.
func WithFallbackLocale(locale string) Option {
	return func(o *Options) { o.FallbackLocale = locale }
}

// WithResourcePath sets the directory holding locale files.
func WithResourcePath(path string) Option {
	return func(o *Options) { o.ResourcePath = path }
}

// WithRemoteTranslations enables loading locale files over HTTP from
// the given base URL. The locale name plus ".json" is appended to it.
func WithRemoteTranslations(url string) Option {
	return func(o *Options) {
		o.RemoteEnabled = true
		o.RemoteURL = url
	}
}

// WithDecryptionKey enables decryption of remote payloads with the
// given AES key. The key length is validated by New.
func WithDecryptionKey(key []byte) Option {
	return func(o *Options) {
		o.EncryptionEnabled = true
		o.DecryptionKey = key
	}
}

// WithCacheRemote controls whether remote payloads are cached on disk.
func WithCacheRemote(enabled bool) Option {
	return func(o *Options) { o.CacheRemote = enabled }
}

// WithCachePath sets the directory for cached remote payloads.
func WithCachePath(path string) Option {
	return func(o *Options) { o.CachePath = path }
}

// WithCacheTTL sets how long a cached remote payload stays fresh.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *Options) { o.CacheTTL = ttl }
}

// WithDebug enables verbose logging.
func WithDebug(enabled bool) Option {
	return func(o *Options) { o.Debug = enabled }
}

// WithCombineLocales sets the locales joined together by Get when
// combining is active.
func WithCombineLocales(locales ...string) Option {
	return func(o *Options) { o.CombineLocales = locales }
}

// WithCombineSeparator sets the string placed between combined values.
func WithCombineSeparator(sep string) Option {
	return func(o *Options) { o.CombineSeparator = sep }
}

// WithCombineEnabled toggles combined lookups without clearing the
// configured locale list.
func WithCombineEnabled(enabled bool) Option {
	return func(o *Options) { o.CombineEnabled = enabled }
}

// WithPreloadLocales loads the given locales in the background when
// the instance is created.
func WithPreloadLocales(locales ...string) Option {
	return func(o *Options) { o.PreloadLocales = locales }
}

// WithAutoTranslate enables machine translation of fallback values
// using the given adapter.
func WithAutoTranslate(a Adapter) Option {
	return func(o *Options) {
		o.AutoTranslate = true
		o.Adapter = a
	}
}

// WithWriteMissingKeys enables writing missing keys back to the locale
// files on disk.
func WithWriteMissingKeys(enabled bool) Option {
	return func(o *Options) { o.WriteMissingKeys = enabled }
}

// WithMissingKeysBatchSize sets how many distinct missing keys are
// collected before a flush is triggered.
func WithMissingKeysBatchSize(n int) Option {
	return func(o *Options) { o.MissingBatchSize = n }
}

// WithMissingKeysFlushInterval sets how often collected missing keys
// are flushed to disk.
func WithMissingKeysFlushInterval(d time.Duration) Option {
	return func(o *Options) { o.MissingFlushInterval = d }
}

// WithOnLoaded registers a listener invoked after a locale loads.
func WithOnLoaded(fn LoadedFunc) Option {
	return func(o *Options) { o.OnLoaded = append(o.OnLoaded, fn) }
}

// WithOnError registers a listener invoked on load or flush failures.
func WithOnError(fn ErrorFunc) Option {
	return func(o *Options) { o.OnError = append(o.OnError, fn) }
}

// WithOnMissing registers a listener invoked when a key misses.
func WithOnMissing(fn MissingFunc) Option {
	return func(o *Options) { o.OnMissing = append(o.OnMissing, fn) }
}

package cubislang

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by OptionsFromEnv.
const (
	envDefaultLocale    = "CUBISLANG_DEFAULT_LOCALE"
	envFallbackLocale   = "CUBISLANG_FALLBACK_LOCALE"
	envResourcePath     = "CUBISLANG_RESOURCE_PATH"
	envRemoteURL        = "CUBISLANG_REMOTE_URL"
	envDecryptKey       = "CUBISLANG_DECRYPT_KEY"
	envCachePath        = "CUBISLANG_CACHE_PATH"
	envCacheTTL         = "CUBISLANG_CACHE_TTL"
	envDebug            = "CUBISLANG_DEBUG"
	envPreload          = "CUBISLANG_PRELOAD"
	envCombine          = "CUBISLANG_COMBINE"
	envCombineSeparator = "CUBISLANG_COMBINE_SEPARATOR"
)

// OptionsFromEnv builds options from environment variables, loading a
// .env file first when one is present. Unset variables are skipped so
// the result can be layered under explicit options.
func OptionsFromEnv() ([]Option, error) {
	_ = godotenv.Load()

	var opts []Option

	if v := os.Getenv(envDefaultLocale); v != "" {
		opts = append(opts, WithDefaultLocale(v))
	}
	if v := os.Getenv(envFallbackLocale); v != "" {
		opts = append(opts, WithFallbackLocale(v))
	}
	if v := os.Getenv(envResourcePath); v != "" {
		opts = append(opts, WithResourcePath(v))
	}
	if v := os.Getenv(envRemoteURL); v != "" {
		opts = append(opts, WithRemoteTranslations(v))
	}
	if v := os.Getenv(envDecryptKey); v != "" {
		key := []byte(v)
		switch len(key) {
		case 16, 24, 32:
			opts = append(opts, WithDecryptionKey(key))
		default:
			return nil, fmt.Errorf("%s: %w", envDecryptKey, ErrBadKeySize)
		}
	}
	if v := os.Getenv(envCachePath); v != "" {
		opts = append(opts, WithCachePath(v))
	}
	if v := os.Getenv(envCacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envCacheTTL, err)
		}
		opts = append(opts, WithCacheTTL(ttl))
	}
	if v := os.Getenv(envDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envDebug, err)
		}
		opts = append(opts, WithDebug(debug))
	}
	if v := os.Getenv(envPreload); v != "" {
		opts = append(opts, WithPreloadLocales(splitList(v)...))
	}
	if v := os.Getenv(envCombine); v != "" {
		opts = append(opts, WithCombineLocales(splitList(v)...))
	}
	if v := os.Getenv(envCombineSeparator); v != "" {
		opts = append(opts, WithCombineSeparator(v))
	}

	return opts, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package cubislang

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/CUBETIQ/cubis-lang-go/internal/nested"
)

type localeCodec struct {
	ext       string
	unmarshal func([]byte, any) error
}

// Locale files are looked up in this order. JSON is the primary format
// and the one written back to.
var localeCodecs = []localeCodec{
	{".json", json.Unmarshal},
	{".toml", func(b []byte, v any) error { return toml.Unmarshal(b, v) }},
	{".yaml", func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
	{".yml", func(b []byte, v any) error { return yaml.Unmarshal(b, v) }},
}

// loadLocale fetches a locale tree, trying each source in order: the
// disk cache when fresh, the remote endpoint, and finally the local
// resource directory, so a dead remote still serves on-disk files.
func (l *Lang) loadLocale(locale string) (map[string]any, error) {
	if l.opts.RemoteEnabled {
		if l.opts.CacheRemote {
			if tree, err := l.loadFromDiskCache(locale); err == nil {
				return tree, nil
			}
		}
		tree, err := l.loadFromRemote(locale)
		if err == nil {
			if l.opts.CacheRemote {
				if cerr := l.saveToDiskCache(locale, tree); cerr != nil && l.opts.Debug {
					log.Printf("cubislang: caching %s failed: %v", locale, cerr)
				}
			}
			return tree, nil
		}
		if l.opts.Debug {
			log.Printf("cubislang: remote load %s failed, trying local file: %v", locale, err)
		}
		if tree, ferr := l.loadFromFile(locale); ferr == nil {
			return tree, nil
		}
		return nil, err
	}
	return l.loadFromFile(locale)
}

func (l *Lang) loadFromFile(locale string) (map[string]any, error) {
	for _, codec := range localeCodecs {
		path := filepath.Join(l.opts.ResourcePath, locale+codec.ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var tree map[string]any
		if err := codec.unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("cubislang: parse %s: %w", path, err)
		}
		return tree, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrLocaleNotLoaded, locale)
}

func (l *Lang) loadFromRemote(locale string) (map[string]any, error) {
	url := l.opts.RemoteURL + locale + ".json"
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("cubislang: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cubislang: fetch %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if l.opts.EncryptionEnabled {
		body, err = decryptAES(strings.TrimSpace(string(body)), l.opts.DecryptionKey)
		if err != nil {
			return nil, err
		}
	}
	var tree map[string]any
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("cubislang: parse remote %s: %w", locale, err)
	}
	return tree, nil
}

// loadFromDiskCache returns the cached remote payload for a locale if
// the file exists and is younger than the configured TTL.
func (l *Lang) loadFromDiskCache(locale string) (map[string]any, error) {
	path := filepath.Join(l.opts.CachePath, locale+".json")
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if l.opts.CacheTTL > 0 && time.Since(info.ModTime()) > l.opts.CacheTTL {
		return nil, fmt.Errorf("cubislang: cache for %s is stale", locale)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (l *Lang) saveToDiskCache(locale string, tree map[string]any) error {
	return writeJSONFile(filepath.Join(l.opts.CachePath, locale+".json"), tree)
}

// localeFilePath returns the on-disk path for a locale, preferring the
// format that already exists. It falls back to the JSON path so new
// locales are created as JSON.
func (l *Lang) localeFilePath(locale string) string {
	for _, codec := range localeCodecs {
		path := filepath.Join(l.opts.ResourcePath, locale+codec.ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(l.opts.ResourcePath, locale+".json")
}

func readLocaleFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	for _, codec := range localeCodecs {
		if strings.EqualFold(filepath.Ext(path), codec.ext) {
			if err := codec.unmarshal(data, &tree); err != nil {
				return nil, fmt.Errorf("cubislang: parse %s: %w", path, err)
			}
			return tree, nil
		}
	}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("cubislang: parse %s: %w", path, err)
	}
	return tree, nil
}

func writeJSONFile(path string, tree map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// mergeIntoFile writes key/value pairs into a locale file on disk,
// creating it when absent, and reports how many keys were written.
// Writes always target the JSON file for the locale; non-JSON sources
// are merged in first so nothing is lost.
func (l *Lang) mergeIntoFile(locale string, kv map[string]string) (int, error) {
	tree, err := readLocaleFile(l.localeFilePath(locale))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return 0, err
		}
		tree = make(map[string]any)
	}
	for key, value := range kv {
		nested.Set(tree, key, value)
	}
	path := filepath.Join(l.opts.ResourcePath, locale+".json")
	if err := writeJSONFile(path, tree); err != nil {
		return 0, err
	}
	return len(kv), nil
}

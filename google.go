package cubislang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleTranslateURL = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslate is an Adapter backed by the public Google Translate
// endpoint. Results are cached so repeated lookups of the same text do
// not hit the network.
type GoogleTranslate struct {
	client  *http.Client
	baseURL string
	cache   Cache
}

// GoogleOption configures a GoogleTranslate adapter.
type GoogleOption func(*GoogleTranslate)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) GoogleOption {
	return func(g *GoogleTranslate) { g.client = c }
}

// WithBaseURL points the adapter at a different endpoint.
func WithBaseURL(u string) GoogleOption {
	return func(g *GoogleTranslate) { g.baseURL = u }
}

// WithCache replaces the default in-memory translation cache.
func WithCache(c Cache) GoogleOption {
	return func(g *GoogleTranslate) { g.cache = c }
}

// NewGoogleTranslate returns a ready adapter with a 10 second request
// timeout and a bounded 24 hour in-memory cache.
func NewGoogleTranslate(opts ...GoogleOption) *GoogleTranslate {
	g := &GoogleTranslate{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: googleTranslateURL,
		cache:   NewMemoryCache(24*time.Hour, 1000),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GoogleTranslate) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if sourceLocale == "" || targetLocale == "" {
		return "", fmt.Errorf("cubislang: source and target locales are required")
	}
	if sourceLocale == targetLocale {
		return text, nil
	}
	if g.cache != nil {
		if cached, ok := g.cache.Get(text, sourceLocale, targetLocale); ok {
			return cached, nil
		}
	}

	translated, err := g.request(ctx, text, sourceLocale, targetLocale)
	if err != nil {
		return "", err
	}
	if g.cache != nil {
		g.cache.Put(text, sourceLocale, targetLocale, translated)
	}
	return translated, nil
}

// TranslateBatch translates each text individually. Blank texts map to
// themselves and failed texts are omitted from the result.
func (g *GoogleTranslate) TranslateBatch(ctx context.Context, texts []string, sourceLocale, targetLocale string) (map[string]string, error) {
	out := make(map[string]string, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			out[text] = text
			continue
		}
		translated, err := g.Translate(ctx, text, sourceLocale, targetLocale)
		if err != nil {
			continue
		}
		out[text] = translated
	}
	return out, nil
}

func (g *GoogleTranslate) request(ctx context.Context, text, src, tgt string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", src)
	params.Set("tl", tgt)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cubislang: translate request failed with status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated text from the endpoint's
// nested array response, e.g. [[["Hola","Hello",null,null,1]],...].
func parseGoogleResponse(body []byte) (string, error) {
	var outer []any
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("cubislang: malformed translate response: %w", err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("cubislang: empty translate response")
	}
	sentences, ok := outer[0].([]any)
	if !ok {
		return "", fmt.Errorf("cubislang: unexpected translate response shape")
	}
	var b strings.Builder
	for _, s := range sentences {
		parts, ok := s.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if segment, ok := parts[0].(string); ok {
			b.WriteString(segment)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("cubislang: translate response contained no text")
	}
	return b.String(), nil
}

// ClearCache drops all cached translations.
func (g *GoogleTranslate) ClearCache() {
	if g.cache != nil {
		g.cache.Clear()
	}
}

// CacheSize reports the number of cached translations.
func (g *GoogleTranslate) CacheSize() int {
	if g.cache == nil {
		return 0
	}
	return g.cache.Size()
}

// CleanupCache evicts expired cache entries and reports the count.
func (g *GoogleTranslate) CleanupCache() int {
	if g.cache == nil {
		return 0
	}
	return g.cache.CleanupExpired()
}

package cubislang

import "context"

// Adapter translates a single text between two locales.
type Adapter interface {
	Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error)
}

// BatchTranslator is implemented by adapters that can translate many
// texts in one call. Generators prefer it when available.
type BatchTranslator interface {
	TranslateBatch(ctx context.Context, texts []string, sourceLocale, targetLocale string) (map[string]string, error)
}

// AdapterFunc adapts a plain function to the Adapter interface.
type AdapterFunc func(ctx context.Context, text, sourceLocale, targetLocale string) (string, error)

func (f AdapterFunc) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	return f(ctx, text, sourceLocale, targetLocale)
}

// Probe checks that an adapter is reachable by translating a trivial
// phrase. A nil adapter reports ErrNilAdapter.
func Probe(ctx context.Context, a Adapter) error {
	if a == nil {
		return ErrNilAdapter
	}
	_, err := a.Translate(ctx, "hello", "en", "es")
	return err
}

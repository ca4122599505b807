package cubislang

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/CUBETIQ/cubis-lang-go/internal/nested"
)

// Generator produces translated locale files from a source locale file
// using a translation adapter.
type Generator struct {
	adapter Adapter
	debug   bool
}

// NewGenerator returns a generator backed by the given adapter.
func NewGenerator(a Adapter) (*Generator, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	return &Generator{adapter: a}, nil
}

// SetDebug enables progress logging.
func (g *Generator) SetDebug(enabled bool) { g.debug = enabled }

// GenerateFile reads a source locale file, translates every string
// leaf and writes the result as JSON to the output path. Strings that
// fail to translate keep their source value.
func (g *Generator) GenerateFile(ctx context.Context, sourceFile, sourceLocale, targetLocale, outFile string) error {
	tree, err := readLocaleFile(sourceFile)
	if err != nil {
		return err
	}
	translated := g.translateTree(ctx, tree, sourceLocale, targetLocale)
	return writeJSONFile(outFile, translated)
}

func (g *Generator) translateTree(ctx context.Context, tree map[string]any, src, tgt string) map[string]any {
	out := make(map[string]any, len(tree))
	for key, value := range tree {
		switch v := value.(type) {
		case string:
			translated, err := g.adapter.Translate(ctx, v, src, tgt)
			if err != nil || translated == "" {
				if g.debug && err != nil {
					log.Printf("cubislang: translate %q: %v", key, err)
				}
				out[key] = v
				continue
			}
			out[key] = translated
		case map[string]any:
			out[key] = g.translateTree(ctx, v, src, tgt)
		default:
			out[key] = value
		}
	}
	return out
}

// GenerateFileBatch is GenerateFile using a single batch call when the
// adapter supports it. Texts missing from the batch result keep their
// source value.
func (g *Generator) GenerateFileBatch(ctx context.Context, sourceFile, sourceLocale, targetLocale, outFile string) error {
	tree, err := readLocaleFile(sourceFile)
	if err != nil {
		return err
	}
	flat := nested.Flatten(tree)
	texts := make([]string, 0, len(flat))
	for _, text := range flat {
		texts = append(texts, text)
	}

	var translations map[string]string
	if batcher, ok := g.adapter.(BatchTranslator); ok {
		translations, err = batcher.TranslateBatch(ctx, texts, sourceLocale, targetLocale)
		if err != nil {
			return fmt.Errorf("cubislang: batch translate: %w", err)
		}
	} else {
		translations = make(map[string]string, len(texts))
		for _, text := range texts {
			translated, err := g.adapter.Translate(ctx, text, sourceLocale, targetLocale)
			if err != nil {
				continue
			}
			translations[text] = translated
		}
	}

	out := nested.Clone(tree)
	for key, text := range flat {
		translated, ok := translations[text]
		if !ok || translated == "" {
			translated = text
		}
		nested.Set(out, key, translated)
	}
	return writeJSONFile(outFile, out)
}

// GenerateAll translates the source file into every target locale,
// writing <locale>.json files into outDir. It returns the per-locale
// errors; an empty map means every locale succeeded.
func (g *Generator) GenerateAll(ctx context.Context, sourceFile, sourceLocale, outDir string, targetLocales ...string) map[string]error {
	failures := make(map[string]error)
	for _, locale := range targetLocales {
		out := outDir + string(os.PathSeparator) + locale + ".json"
		if err := g.GenerateFile(ctx, sourceFile, sourceLocale, locale, out); err != nil {
			failures[locale] = err
		}
	}
	return failures
}

// MergeFile fills the gaps of an existing target locale file with
// translated source values, leaving already translated keys untouched.
// A missing target file is treated as empty.
func (g *Generator) MergeFile(ctx context.Context, sourceFile, targetFile, sourceLocale, targetLocale string) error {
	source, err := readLocaleFile(sourceFile)
	if err != nil {
		return err
	}
	target, err := readLocaleFile(targetFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		target = make(map[string]any)
	}
	merged := g.mergeTrees(ctx, source, target, sourceLocale, targetLocale)
	return writeJSONFile(targetFile, merged)
}

func (g *Generator) mergeTrees(ctx context.Context, source, target map[string]any, src, tgt string) map[string]any {
	out := nested.Clone(target)
	for key, value := range source {
		switch v := value.(type) {
		case string:
			if _, exists := out[key]; exists {
				continue
			}
			translated, err := g.adapter.Translate(ctx, v, src, tgt)
			if err != nil || translated == "" {
				translated = v
			}
			out[key] = translated
		case map[string]any:
			existing, ok := out[key].(map[string]any)
			if !ok {
				existing = make(map[string]any)
			}
			out[key] = g.mergeTrees(ctx, v, existing, src, tgt)
		default:
			if _, exists := out[key]; !exists {
				out[key] = value
			}
		}
	}
	return out
}

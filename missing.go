package cubislang

import (
	"sort"

	"github.com/CUBETIQ/cubis-lang-go/internal/nested"
)

// AllKeys returns every dot addressable key of a locale, sorted. An
// unknown locale yields an empty slice.
func (l *Lang) AllKeys(locale string) []string {
	locale = normalizeLocale(locale)
	if !l.ensureLocale(locale) {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return nested.Keys(l.store[locale])
}

// FindMissingKeys returns the keys present in the reference locale but
// absent from the target locale, sorted.
func (l *Lang) FindMissingKeys(reference, target string) []string {
	refFlat, tgtFlat := l.flatPair(reference, target)
	if refFlat == nil {
		return nil
	}
	missing := make([]string, 0)
	for key := range refFlat {
		if _, ok := tgtFlat[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// MissingWithValues returns the missing keys of the target locale
// mapped to their reference locale values, so translators see the
// source text alongside each gap.
func (l *Lang) MissingWithValues(reference, target string) map[string]string {
	refFlat, tgtFlat := l.flatPair(reference, target)
	if refFlat == nil {
		return nil
	}
	out := make(map[string]string)
	for key, value := range refFlat {
		if _, ok := tgtFlat[key]; !ok {
			out[key] = value
		}
	}
	return out
}

// MissingAsTree returns the missing keys of the target locale as a
// nested tree carrying the reference values, ready to be serialized as
// a locale file skeleton.
func (l *Lang) MissingAsTree(reference, target string) map[string]any {
	tree := make(map[string]any)
	for key, value := range l.MissingWithValues(reference, target) {
		nested.Set(tree, key, value)
	}
	return tree
}

func (l *Lang) flatPair(reference, target string) (map[string]string, map[string]string) {
	reference = normalizeLocale(reference)
	target = normalizeLocale(target)
	if !l.ensureLocale(reference) {
		return nil, nil
	}
	l.ensureLocale(target)

	l.mu.RLock()
	defer l.mu.RUnlock()
	refFlat := nested.Flatten(l.store[reference])
	tgtFlat := map[string]string{}
	if tree, ok := l.store[target]; ok {
		tgtFlat = nested.Flatten(tree)
	}
	return refFlat, tgtFlat
}

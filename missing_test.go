package cubislang

import (
	"reflect"
	"testing"
)

func diffFixtures(t *testing.T) string {
	t.Helper()
	return writeFixtures(t, map[string]map[string]any{
		"en": {
			"greeting": "Hello",
			"farewell": "Goodbye",
			"app": map[string]any{
				"title":    "My App",
				"subtitle": "The best app",
			},
			"ui": map[string]any{
				"save":   "Save",
				"cancel": "Cancel",
				"delete": "Delete",
			},
		},
		"fr": {
			"greeting": "Bonjour",
			"ui": map[string]any{
				"save": "Enregistrer",
			},
		},
	})
}

func TestAllKeys(t *testing.T) {
	lang := New(WithResourcePath(diffFixtures(t)))
	defer lang.Close()

	want := []string{
		"app.subtitle", "app.title", "farewell", "greeting",
		"ui.cancel", "ui.delete", "ui.save",
	}
	if got := lang.AllKeys("en"); !reflect.DeepEqual(got, want) {
		t.Fatalf("AllKeys(en) = %v; want %v", got, want)
	}
	if got := lang.AllKeys("nope"); got != nil {
		t.Fatalf("AllKeys(nope) = %v; want nil", got)
	}
}

func TestFindMissingKeys(t *testing.T) {
	lang := New(WithResourcePath(diffFixtures(t)))
	defer lang.Close()

	want := []string{"app.subtitle", "app.title", "farewell", "ui.cancel", "ui.delete"}
	if got := lang.FindMissingKeys("en", "fr"); !reflect.DeepEqual(got, want) {
		t.Fatalf("FindMissingKeys = %v; want %v", got, want)
	}
	if got := lang.FindMissingKeys("fr", "en"); len(got) != 0 {
		t.Fatalf("FindMissingKeys(fr, en) = %v; want empty", got)
	}
}

func TestMissingWithValues(t *testing.T) {
	lang := New(WithResourcePath(diffFixtures(t)))
	defer lang.Close()

	got := lang.MissingWithValues("en", "fr")
	want := map[string]string{
		"app.subtitle": "The best app",
		"app.title":    "My App",
		"farewell":     "Goodbye",
		"ui.cancel":    "Cancel",
		"ui.delete":    "Delete",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingWithValues = %v; want %v", got, want)
	}
}

func TestMissingAsTree(t *testing.T) {
	lang := New(WithResourcePath(diffFixtures(t)))
	defer lang.Close()

	got := lang.MissingAsTree("en", "fr")
	want := map[string]any{
		"farewell": "Goodbye",
		"app": map[string]any{
			"title":    "My App",
			"subtitle": "The best app",
		},
		"ui": map[string]any{
			"cancel": "Cancel",
			"delete": "Delete",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingAsTree = %v; want %v", got, want)
	}
}

func TestDiffUnknownReference(t *testing.T) {
	lang := New(WithResourcePath(diffFixtures(t)))
	defer lang.Close()

	if got := lang.FindMissingKeys("nope", "fr"); got != nil {
		t.Fatalf("FindMissingKeys(nope, fr) = %v; want nil", got)
	}
	if got := lang.MissingWithValues("nope", "fr"); got != nil {
		t.Fatalf("MissingWithValues(nope, fr) = %v; want nil", got)
	}
	if got := lang.MissingAsTree("nope", "fr"); len(got) != 0 {
		t.Fatalf("MissingAsTree(nope, fr) = %v; want empty", got)
	}
}

// Diffing against a locale with no file treats the target as empty.
func TestDiffMissingTargetLocale(t *testing.T) {
	lang := New(WithResourcePath(diffFixtures(t)))
	defer lang.Close()

	got := lang.FindMissingKeys("en", "de")
	if len(got) != 7 {
		t.Fatalf("FindMissingKeys(en, de) = %v; want all 7 keys", got)
	}
}

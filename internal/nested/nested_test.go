package nested

import (
	"reflect"
	"testing"
)

func sampleTree() map[string]any {
	return map[string]any{
		"greeting":  "Hello",
		"app.title": "My Application",
		"ui": map[string]any{
			"menu": "Menu",
			"button": map[string]any{
				"save":   "Save",
				"cancel": "Cancel",
			},
		},
		"count": float64(3),
	}
}

func TestLookup(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		path string
		want any
		ok   bool
	}{
		{"greeting", "Hello", true},
		{"ui.menu", "Menu", true},
		{"ui.button.save", "Save", true},
		{"app.title", "My Application", true},
		{"ui.button.missing", nil, false},
		{"ui.menu.deeper", nil, false},
		{"missing", nil, false},
		{"", nil, false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tree, tt.path)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLookupFlatKeyWinsOverDescent(t *testing.T) {
	tree := map[string]any{
		"app.title": "Flat",
		"app":       map[string]any{"title": "Nested"},
	}
	got, ok := Lookup(tree, "app.title")
	if !ok || got != "Flat" {
		t.Fatalf("Lookup(app.title) = %v, %v; want Flat, true", got, ok)
	}
}

func TestStringRejectsNonStringLeaves(t *testing.T) {
	tree := sampleTree()
	if _, ok := String(tree, "count"); ok {
		t.Fatal("String(count) should reject a numeric leaf")
	}
	if _, ok := String(tree, "ui.button"); ok {
		t.Fatal("String(ui.button) should reject an object")
	}
	if got, ok := String(tree, "ui.button.save"); !ok || got != "Save" {
		t.Fatalf("String(ui.button.save) = %q, %v", got, ok)
	}
}

func TestSet(t *testing.T) {
	tree := map[string]any{}
	Set(tree, "greeting", "Hello")
	Set(tree, "ui.button.save", "Save")
	Set(tree, "ui.button.cancel", "Cancel")

	if got, _ := String(tree, "greeting"); got != "Hello" {
		t.Errorf("greeting = %q", got)
	}
	if got, _ := String(tree, "ui.button.save"); got != "Save" {
		t.Errorf("ui.button.save = %q", got)
	}
	if got, _ := String(tree, "ui.button.cancel"); got != "Cancel" {
		t.Errorf("ui.button.cancel = %q", got)
	}
}

func TestSetReplacesScalarWithObject(t *testing.T) {
	tree := map[string]any{"ui": "oops"}
	Set(tree, "ui.menu", "Menu")
	if got, _ := String(tree, "ui.menu"); got != "Menu" {
		t.Fatalf("ui.menu = %q", got)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(sampleTree())
	want := map[string]string{
		"greeting":         "Hello",
		"app.title":        "My Application",
		"ui.menu":          "Menu",
		"ui.button.save":   "Save",
		"ui.button.cancel": "Cancel",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %v; want %v", got, want)
	}
}

func TestKeysSorted(t *testing.T) {
	got := Keys(sampleTree())
	want := []string{"app.title", "greeting", "ui.button.cancel", "ui.button.save", "ui.menu"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys = %v; want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tree := sampleTree()
	clone := Clone(tree)
	Set(clone, "ui.button.save", "Changed")
	if got, _ := String(tree, "ui.button.save"); got != "Save" {
		t.Fatalf("mutating the clone leaked into the original: %q", got)
	}
}

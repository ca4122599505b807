package cubislang

import (
	"fmt"
	"strconv"
	"strings"
)

// formatPositional substitutes {{0}}, {{1}}, ... placeholders with the
// given arguments in order. Placeholders without a matching argument
// are left untouched.
func formatPositional(text string, args ...any) string {
	if len(args) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	for i, arg := range args {
		ph := "{{" + strconv.Itoa(i) + "}}"
		text = strings.ReplaceAll(text, ph, fmt.Sprint(arg))
	}
	return text
}

// formatKeywords substitutes {{name}} placeholders from the given map.
// Both {{name}} and the spaced {{ name }} form are recognized.
func formatKeywords(text string, data map[string]any) string {
	if len(data) == 0 || !strings.Contains(text, "{{") {
		return text
	}
	pairs := make([]string, 0, len(data)*4)
	for k, v := range data {
		s := fmt.Sprint(v)
		pairs = append(pairs,
			"{{"+k+"}}", s,
			"{{ "+k+" }}", s,
		)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// formatCount substitutes the {{count}} placeholder and applies the
// naive singular rule: when count is exactly 1, every "items" in the
// text becomes "item". Anything else, including "(s)" markers, is left
// verbatim.
func formatCount(text string, count int) string {
	text = strings.ReplaceAll(text, "{{count}}", strconv.Itoa(count))
	text = strings.ReplaceAll(text, "{{ count }}", strconv.Itoa(count))
	if count == 1 {
		text = strings.ReplaceAll(text, "items", "item")
	}
	return text
}

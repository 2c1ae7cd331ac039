package tts

import "strings"

// abbreviations expanded before synthesis so espeak doesn't read them
// letter by letter. Literal replacement, applied in order.
var abbreviations = []struct{ from, to string }{
	{"Dr.", "Doctor"},
	{"Mr.", "Mister"},
	{"Mrs.", "Missus"},
	{"Ms.", "Miss"},
	{"Prof.", "Professor"},
}

// CleanText collapses runs of whitespace and expands common abbreviations.
func CleanText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	for _, a := range abbreviations {
		text = strings.ReplaceAll(text, a.from, a.to)
	}
	return text
}

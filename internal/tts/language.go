package tts

import "unicode"

// DetectLanguage classifies text as "hi" or "en" by the share of Devanagari
// codepoints among alphabetic ones. More than 30% Devanagari reads as Hindi.
func DetectLanguage(text string) string {
	var hindi, total int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		if r >= 0x0900 && r <= 0x097F {
			hindi++
		}
	}

	if total > 0 && float64(hindi)/float64(total) > 0.3 {
		return "hi"
	}
	return "en"
}

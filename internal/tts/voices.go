package tts

import "sort"

// VoiceProfile holds the resolved synthesis parameters for one voice.
type VoiceProfile struct {
	Language string // language code ("en", "hi")
	ID       string // OpenAI-style voice id ("alloy", "onyx", ...)
	Tag      string // underlying espeak-ng voice tag ("en+f3")
	Speed    int    // words per minute
	Pitch    int    // 0-100
}

// Voice describes an available voice for listing endpoints.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

const (
	// DefaultLanguage is used when a requested language has no voice table.
	DefaultLanguage = "en"
	// DefaultVoice is used when a requested voice id is absent from a table.
	DefaultVoice = "alloy"
)

// voiceTables maps language code -> voice id -> profile. Static; every table
// must contain DefaultVoice so resolution is total.
var voiceTables = map[string]map[string]VoiceProfile{
	"en": {
		"alloy":   {Language: "en", ID: "alloy", Tag: "en+f3", Speed: 175, Pitch: 50},
		"echo":    {Language: "en", ID: "echo", Tag: "en+f4", Speed: 160, Pitch: 45},
		"fable":   {Language: "en", ID: "fable", Tag: "en+f5", Speed: 180, Pitch: 55},
		"onyx":    {Language: "en", ID: "onyx", Tag: "en+m1", Speed: 150, Pitch: 40},
		"nova":    {Language: "en", ID: "nova", Tag: "en+f1", Speed: 190, Pitch: 60},
		"shimmer": {Language: "en", ID: "shimmer", Tag: "en+f2", Speed: 170, Pitch: 52},
	},
	"hi": {
		"hindi_voice": {Language: "hi", ID: "hindi_voice", Tag: "hi+f1", Speed: 165, Pitch: 48},
		"alloy":       {Language: "hi", ID: "alloy", Tag: "hi+f1", Speed: 165, Pitch: 48},
	},
}

// ResolveVoice returns the profile for (language, voice). Unknown voices fall
// back to the language's default voice; unknown languages fall back to the
// English table. It never fails.
func ResolveVoice(language, voice string) VoiceProfile {
	table, ok := voiceTables[language]
	if !ok {
		table = voiceTables[DefaultLanguage]
	}
	if p, ok := table[voice]; ok {
		return p
	}
	return table[DefaultVoice]
}

// SupportedLanguages returns the language codes with a voice table.
func SupportedLanguages() []string {
	return []string{"en", "hi"}
}

// VoicesByLanguage returns the voice ids available per language, sorted for
// stable listings.
func VoicesByLanguage() map[string][]string {
	out := make(map[string][]string, len(voiceTables))
	for lang, table := range voiceTables {
		ids := make([]string, 0, len(table))
		for id := range table {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[lang] = ids
	}
	return out
}

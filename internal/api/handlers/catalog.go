package handlers

import (
	"net/http"
	"strings"

	"github.com/echovoice/echovoice/internal/tts"
)

// CatalogHandler serves the static model/voice/language listings.
type CatalogHandler struct {
	engineName  string
	engineReady func() bool
}

// NewCatalogHandler takes the active engine's name and a readiness probe for
// the /api/status capability report.
func NewCatalogHandler(engineName string, engineReady func() bool) *CatalogHandler {
	return &CatalogHandler{engineName: engineName, engineReady: engineReady}
}

// Models lists TTS models in the OpenAI list shape.
func (h *CatalogHandler) Models(w http.ResponseWriter, r *http.Request) {
	type model struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		Created int64  `json:"created"`
		OwnedBy string `json:"owned_by"`
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"object": "list",
		"data": []model{
			{ID: "tts-1", Object: "model", Created: 1677610602, OwnedBy: "enhanced-tts"},
			{ID: "tts-1-hd", Object: "model", Created: 1677610602, OwnedBy: "enhanced-tts"},
		},
	})
}

// Voices flattens the per-language voice tables into one list.
func (h *CatalogHandler) Voices(w http.ResponseWriter, r *http.Request) {
	type voice struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Language    string `json:"language"`
		Description string `json:"description"`
	}

	byLanguage := tts.VoicesByLanguage()

	var voices []voice
	for _, lang := range tts.SupportedLanguages() {
		for _, id := range byLanguage[lang] {
			voices = append(voices, voice{
				ID:          id,
				Name:        titleCase(id),
				Language:    lang,
				Description: "Voice for " + strings.ToUpper(lang) + " language",
			})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"voices": voices})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Languages returns the supported language codes.
func (h *CatalogHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"languages": tts.SupportedLanguages(),
		"default":   tts.DefaultLanguage,
	})
}

// Status reports the engine and its capabilities.
func (h *CatalogHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	if h.engineReady != nil && !h.engineReady() {
		// Still serving: synthesis degrades to the fallback tone.
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":              status,
		"engine":              h.engineName,
		"supported_languages": tts.SupportedLanguages(),
		"supported_voices":    tts.VoicesByLanguage(),
		"capabilities": map[string]bool{
			"multiple_voices":    true,
			"language_detection": true,
			"openai_compatible":  true,
		},
	})
}

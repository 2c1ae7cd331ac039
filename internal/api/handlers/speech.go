package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/echovoice/echovoice/internal/cache"
	"github.com/echovoice/echovoice/internal/tts"
)

// SpeechRequest is the OpenAI-compatible request body for /v1/audio/speech.
type SpeechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	ResponseFormat string  `json:"response_format"`
	Speed          float64 `json:"speed"`
}

// contentTypes maps response_format to the Content-Type of the reply.
var contentTypes = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"opus": "audio/opus",
	"aac":  "audio/aac",
	"flac": "audio/flac",
}

// AudioCache is the slice of the cache the handler needs; both methods must
// tolerate being called on an absent cache.
type AudioCache interface {
	Get(ctx context.Context, key string) []byte
	Set(ctx context.Context, key string, audio []byte)
}

type SpeechHandler struct {
	svc   *tts.Service
	cache AudioCache
}

func NewSpeechHandler(svc *tts.Service, audioCache AudioCache) *SpeechHandler {
	if audioCache == nil {
		audioCache = (*cache.AudioCache)(nil) // nil-safe no-op
	}
	return &SpeechHandler{svc: svc, cache: audioCache}
}

// Create handles POST /v1/audio/speech.
func (h *SpeechHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No JSON data provided"})
		return
	}

	if strings.TrimSpace(req.Input) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Input text is required"})
		return
	}

	if req.Voice == "" {
		req.Voice = tts.DefaultVoice
	}
	format := req.ResponseFormat
	if format == "" {
		format = "wav"
	}

	language := tts.DetectLanguage(req.Input)

	slog.Info("synthesizing speech", "language", language, "voice", req.Voice, "chars", len(req.Input))

	key := cache.Key(h.svc.EngineName(), language, req.Voice, req.Speed, req.Input)
	if audio := h.cache.Get(r.Context(), key); audio != nil {
		writeAudio(w, audio, format)
		return
	}

	result, err := h.svc.Synthesize(r.Context(), req.Input, language, req.Voice, req.Speed)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Internal server error: %v", err)})
		return
	}
	if result == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate speech"})
		return
	}

	// Fallback tones are transient by definition: caching one would keep
	// serving the beep long after the synthesizer recovers.
	if !result.Fallback {
		h.cache.Set(r.Context(), key, result.Audio)
	}
	writeAudio(w, result.Audio, format)
}

func writeAudio(w http.ResponseWriter, audio []byte, format string) {
	contentType, ok := contentTypes[format]
	if !ok {
		contentType = "audio/wav"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "speech."+format))
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

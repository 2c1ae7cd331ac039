package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echovoice/echovoice/internal/audio"
	"github.com/echovoice/echovoice/internal/tts"
)

// fakeEngine returns canned audio, or an error to force the fallback path.
type fakeEngine struct {
	audio []byte
	err   error
	text  string
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Synthesize(_ context.Context, text string, _ tts.VoiceProfile) (*tts.Result, error) {
	f.text = text
	if f.err != nil {
		return nil, f.err
	}
	return &tts.Result{Audio: f.audio, ContentType: "audio/wav"}, nil
}

// memCache is an in-memory AudioCache recording stores.
type memCache struct {
	entries map[string][]byte
	sets    int
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string) []byte { return m.entries[key] }

func (m *memCache) Set(_ context.Context, key string, audio []byte) {
	m.sets++
	m.entries[key] = audio
}

func newSpeechHandler(eng tts.Engine) *SpeechHandler {
	return NewSpeechHandler(tts.NewService(eng, 22050), nil)
}

func postSpeech(t *testing.T, h *SpeechHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/audio/speech", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestCreate_ReturnsAudio(t *testing.T) {
	wav := audio.EncodeWAV(make([]float64, 100), 22050)
	h := newSpeechHandler(&fakeEngine{audio: wav})

	rec := postSpeech(t, h, `{"input":"Hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/wav", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestCreate_MissingInput(t *testing.T) {
	h := newSpeechHandler(&fakeEngine{})

	for _, body := range []string{`{}`, `{"input":""}`, `{"input":"   "}`} {
		rec := postSpeech(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.JSONEq(t, `{"error":"Input text is required"}`, rec.Body.String())
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	h := newSpeechHandler(&fakeEngine{})

	rec := postSpeech(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreate_EngineFailureStillReturnsAudio(t *testing.T) {
	h := newSpeechHandler(&fakeEngine{err: errors.New("espeak missing")})

	rec := postSpeech(t, h, `{"input":"Hello there"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/wav", rec.Header().Get("Content-Type"))

	f, err := audio.ParseHeader(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 22050, f.SampleRate)
	assert.Equal(t, 1, f.Channels)
}

func TestCreate_SuccessfulAudioIsCached(t *testing.T) {
	c := newMemCache()
	eng := &fakeEngine{audio: []byte("real audio")}
	h := NewSpeechHandler(tts.NewService(eng, 22050), c)

	rec := postSpeech(t, h, `{"input":"Hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, c.sets)

	// Second request is served from cache without another engine call.
	eng.err = errors.New("engine gone")
	rec = postSpeech(t, h, `{"input":"Hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "real audio", rec.Body.String())
}

func TestCreate_FallbackAudioIsNotCached(t *testing.T) {
	c := newMemCache()
	eng := &fakeEngine{err: errors.New("espeak missing")}
	h := NewSpeechHandler(tts.NewService(eng, 22050), c)

	rec := postSpeech(t, h, `{"input":"Hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, c.sets, "fallback tone must not be cached")
	assert.Empty(t, c.entries)

	// Once the engine recovers, the same text gets real audio again.
	eng.err = nil
	eng.audio = []byte("real audio")
	rec = postSpeech(t, h, `{"input":"Hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "real audio", rec.Body.String())
}

func TestCreate_ContentTypePerFormat(t *testing.T) {
	tests := []struct{ format, want string }{
		{"mp3", "audio/mpeg"},
		{"wav", "audio/wav"},
		{"opus", "audio/opus"},
		{"aac", "audio/aac"},
		{"flac", "audio/flac"},
		{"xyz", "audio/wav"},
	}

	for _, tt := range tests {
		h := newSpeechHandler(&fakeEngine{audio: []byte("audio")})
		rec := postSpeech(t, h, `{"input":"Hello","response_format":"`+tt.format+`"}`)
		assert.Equal(t, tt.want, rec.Header().Get("Content-Type"), "format %s", tt.format)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "speech."+tt.format)
	}
}

func TestCreate_AbbreviationsExpandedBeforeEngine(t *testing.T) {
	eng := &fakeEngine{audio: []byte("audio")}
	h := newSpeechHandler(eng)

	rec := postSpeech(t, h, `{"input":"Dr. Who"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Doctor Who", eng.text)
}

func TestCreate_HindiInputDetected(t *testing.T) {
	eng := &fakeEngine{err: errors.New("down")}
	h := newSpeechHandler(eng)

	recHi := postSpeech(t, h, `{"input":"नमस्ते दुनिया कैसे हो"}`)
	recEn := postSpeech(t, h, `{"input":"namaste duniya kaise ho"}`)

	require.Equal(t, http.StatusOK, recHi.Code)
	require.Equal(t, http.StatusOK, recEn.Code)
	// Same text length, different fallback frequency per detected language.
	assert.NotEqual(t, recEn.Body.Bytes(), recHi.Body.Bytes())
}

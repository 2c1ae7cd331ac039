package tts

import "context"

// Result holds synthesized audio and its content type. Fallback marks
// placeholder audio substituted for a failed engine, so callers can treat it
// as transient (e.g. not cache it) while still serving it.
type Result struct {
	Audio       []byte
	ContentType string
	Fallback    bool
}

// Engine is the interface for speech synthesis backends.
type Engine interface {
	// Synthesize renders text with the given voice profile. Engines return
	// an error on failure; substituting fallback audio is the Service's job.
	Synthesize(ctx context.Context, text string, profile VoiceProfile) (*Result, error)
	Name() string
}

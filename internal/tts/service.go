package tts

import (
	"context"
	"log/slog"
)

// espeak accepts speech rates between 80 and 450 words per minute.
const (
	minWPM = 80
	maxWPM = 450
)

// Service orchestrates text-to-speech: normalize the text, resolve a voice
// profile, run the engine, and substitute a fallback tone when the engine
// fails. It is safe for concurrent use; all state is read-only after
// construction.
type Service struct {
	engine     Engine
	sampleRate int
}

// NewService creates a Service around the given engine.
func NewService(engine Engine, sampleRate int) *Service {
	if sampleRate <= 0 {
		sampleRate = 22050
	}
	return &Service{engine: engine, sampleRate: sampleRate}
}

// EngineName reports the configured backend, for status listings.
func (s *Service) EngineName() string { return s.engine.Name() }

// Synthesize converts text to audio. A blank input yields (nil, nil). Engine
// failures are absorbed: the result is then a generated placeholder tone, so
// the only way to get no audio is to ask for none.
func (s *Service) Synthesize(ctx context.Context, text, language, voice string, speed float64) (*Result, error) {
	text = CleanText(text)
	if text == "" {
		return nil, nil
	}

	profile := ResolveVoice(language, voice)
	if speed > 0 {
		profile.Speed = clampWPM(int(float64(profile.Speed) * speed))
	}

	result, err := s.engine.Synthesize(ctx, text, profile)
	if err != nil {
		slog.Warn("synthesis failed, using fallback tone",
			"engine", s.engine.Name(), "language", profile.Language, "voice", profile.ID, "error", err)
		return &Result{
			Audio:       FallbackTone(text, profile.Language, s.sampleRate),
			ContentType: "audio/wav",
			Fallback:    true,
		}, nil
	}

	return result, nil
}

func clampWPM(wpm int) int {
	if wpm < minWPM {
		return minWPM
	}
	if wpm > maxWPM {
		return maxWPM
	}
	return wpm
}

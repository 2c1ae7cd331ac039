package tts

import (
	"math"
	"unicode/utf8"

	"github.com/echovoice/echovoice/internal/audio"
)

const (
	fallbackAmplitude   = 0.3
	fallbackSecsPerChar = 0.08
	fallbackMaxSeconds  = 10.0
)

// toneFrequencies gives each supported language a distinct fallback pitch.
var toneFrequencies = map[string]float64{
	"en": 440.0, // A4
	"hi": 523.0, // C5
}

// FallbackTone generates a decaying sine tone as an audible placeholder when
// real synthesis is unavailable. Duration scales with text length, capped at
// 10 seconds; the envelope is exponential with a third of the duration as
// time constant. Samples stay within [-1, 1].
func FallbackTone(text, language string, sampleRate int) []byte {
	duration := math.Min(float64(utf8.RuneCountInString(text))*fallbackSecsPerChar, fallbackMaxSeconds)

	freq, ok := toneFrequencies[language]
	if !ok {
		freq = toneFrequencies[DefaultLanguage]
	}

	n := int(float64(sampleRate) * duration)
	samples := make([]float64, n)
	decay := duration / 3
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = fallbackAmplitude * math.Sin(2*math.Pi*freq*t) * math.Exp(-t/decay)
	}

	return audio.EncodeWAV(samples, sampleRate)
}

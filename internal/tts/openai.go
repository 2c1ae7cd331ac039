package tts

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds configuration for the remote OpenAI speech backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string // default: api.openai.com
	Model   string // default: "tts-1"
}

// OpenAIEngine delegates synthesis to the OpenAI speech API, requesting WAV
// so the response shape matches the local engine.
type OpenAIEngine struct {
	client *openai.Client
	model  string
}

// NewOpenAIEngine creates an OpenAIEngine with defaults applied.
func NewOpenAIEngine(cfg OpenAIConfig) *OpenAIEngine {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "tts-1"
	}
	return &OpenAIEngine{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (o *OpenAIEngine) Name() string { return "openai" }

// Synthesize calls the speech endpoint with the profile's voice id. The
// espeak tag, wpm and pitch have no remote equivalent and are not sent.
func (o *OpenAIEngine) Synthesize(ctx context.Context, text string, profile VoiceProfile) (*Result, error) {
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.model),
		Input:          text,
		Voice:          openai.SpeechVoice(profile.ID),
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read openai audio: %w", err)
	}

	return &Result{Audio: data, ContentType: "audio/wav"}, nil
}

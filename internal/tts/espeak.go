package tts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EspeakConfig holds configuration for the espeak-ng subprocess backend.
type EspeakConfig struct {
	BinPath    string        // default: "espeak-ng"
	SampleRate int           // default: 22050
	Timeout    time.Duration // per-invocation bound, default: 30s
	TempDir    string        // where output WAVs are staged, default: os.TempDir()
}

// EspeakEngine synthesizes speech by invoking the espeak-ng binary with the
// profile's voice tag, speed and pitch, writing WAV to a temp file.
type EspeakEngine struct {
	cfg EspeakConfig

	mu        sync.Mutex
	available bool
}

// NewEspeakEngine creates an EspeakEngine and probes binary availability once.
// The probe result is advisory: synthesis is attempted regardless, and the
// flag is refreshed after a failure rather than trusted permanently.
func NewEspeakEngine(cfg EspeakConfig) *EspeakEngine {
	if cfg.BinPath == "" {
		cfg.BinPath = "espeak-ng"
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 22050
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	e := &EspeakEngine{cfg: cfg}
	e.available = e.probe()
	return e
}

func (e *EspeakEngine) Name() string { return "espeak-ng" }

// Available reports the last known state of the espeak-ng binary.
func (e *EspeakEngine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.available
}

// probe runs `espeak-ng --version` with a short deadline.
func (e *EspeakEngine) probe() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, e.cfg.BinPath, "--version").Run() == nil
}

// Synthesize runs espeak-ng and returns the WAV bytes it wrote. The temp
// output file is removed on every exit path.
func (e *EspeakEngine) Synthesize(ctx context.Context, text string, profile VoiceProfile) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	// Unique per call so concurrent requests never share an output path.
	outPath := filepath.Join(e.cfg.TempDir, "speech-"+uuid.NewString()+".wav")
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, e.cfg.BinPath,
		"-v", profile.Tag,
		"-s", strconv.Itoa(profile.Speed),
		"-p", strconv.Itoa(profile.Pitch),
		"-w", outPath,
		text,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.refreshAvailability()
		return nil, fmt.Errorf("espeak-ng failed: %w (stderr: %s)", err, stderr.String())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		e.refreshAvailability()
		return nil, fmt.Errorf("read espeak output: %w", err)
	}

	return &Result{Audio: data, ContentType: "audio/wav"}, nil
}

// refreshAvailability re-probes after a failure so /api/status reflects a
// binary that disappeared at runtime.
func (e *EspeakEngine) refreshAvailability() {
	ok := e.probe()
	e.mu.Lock()
	e.available = ok
	e.mu.Unlock()
}

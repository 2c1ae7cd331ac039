package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	TTS    TTSConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type TTSConfig struct {
	Backend       string // "espeak" or "openai"
	EspeakBinPath string // default: "espeak-ng"
	SampleRate    int    // fallback/placeholder sample rate
	Timeout       time.Duration
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8000)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cacheTTL, err := getEnvInt("TTS_CACHE_TTL_SECONDS", 3600)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_CACHE_TTL_SECONDS: %w", err)
	}

	sampleRate, err := getEnvInt("TTS_SAMPLE_RATE", 22050)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_SAMPLE_RATE: %w", err)
	}

	timeout, err := getEnvInt("TTS_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			CacheTTL: time.Duration(cacheTTL) * time.Second,
		},
		TTS: TTSConfig{
			Backend:       getEnv("TTS_BACKEND", "espeak"),
			EspeakBinPath: getEnv("TTS_ESPEAK_BIN", "espeak-ng"),
			SampleRate:    sampleRate,
			Timeout:       time.Duration(timeout) * time.Second,
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OpenAIBaseURL: getEnv("TTS_OPENAI_BASE_URL", ""),
			OpenAIModel:   getEnv("TTS_OPENAI_MODEL", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func splitOrigins(v string) []string {
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

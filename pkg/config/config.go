// Package config loads process configuration from the environment (and an
// optional .env file for local development), the way the rest of the
// examples in this codebase do.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the environment-derived settings the engine consults.
type Config struct {
	// LLMAPIKey, if set, selects the LLM producer-plan refiner. Empty means
	// deterministic-only refinement.
	LLMAPIKey string
	// LLMModel names the model the refiner should request when LLMAPIKey is
	// set.
	LLMModel string
	// AudioDir is the directory rendered WAV files are written under.
	AudioDir string
}

const (
	envLLMAPIKey = "MUSIC_LLM_API_KEY"
	envLLMModel  = "MUSIC_LLM_MODEL"
	envAudioDir  = "MUSIC_OUTPUT_DIR"

	defaultAudioDir = "static/audio/music"
	defaultModel    = "gpt-4o-mini"
)

// Load reads configuration from the environment, first loading a .env file
// from the working directory if present (a missing .env is not an error).
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded, continuing with process environment")
	}

	cfg := Config{
		LLMAPIKey: os.Getenv(envLLMAPIKey),
		LLMModel:  os.Getenv(envLLMModel),
		AudioDir:  os.Getenv(envAudioDir),
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = defaultModel
	}
	if cfg.AudioDir == "" {
		cfg.AudioDir = defaultAudioDir
	}
	return cfg
}

// HasLLM reports whether an API key is configured, selecting the LLM
// refiner path over the deterministic-only one.
func (c Config) HasLLM() bool {
	return c.LLMAPIKey != ""
}

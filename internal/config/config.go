package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed thresholds.yaml
var thresholdsYAML []byte

// fallbackThreshold is used when neither the model table nor the
// environment provides a threshold.
const fallbackThreshold = 0.45

type Config struct {
	Embedder   EmbedderConfig
	Verify     VerifyConfig
	Web        WebConfig
	Thresholds ThresholdsConfig
}

type EmbedderConfig struct {
	URL   string // embedding server base URL (defaults to http://localhost:8000)
	Model string // model identifier reported to callers (defaults to insightface/buffalo_l)
}

type VerifyConfig struct {
	Threshold float64 // explicit threshold override; 0 means use per-model defaults
}

type WebConfig struct {
	Port int
	Host string
}

type ThresholdsConfig struct {
	Models map[string]float64 `yaml:"models"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat reads an environment variable and parses it as a positive float.
// Returns 0 if the env var is unset, empty, or invalid.
func envFloat(key string) float64 {
	s := os.Getenv(key)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return 0
}

// envStr reads an environment variable with a default.
func envStr(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var thresholds ThresholdsConfig
	if err := yaml.Unmarshal(thresholdsYAML, &thresholds); err != nil {
		// This is an embedded file so this error should never happen in practice.
		panic("failed to unmarshal embedded thresholds.yaml: " + err.Error())
	}

	return &Config{
		Embedder: EmbedderConfig{
			URL:   os.Getenv("EMBEDDER_URL"),
			Model: os.Getenv("EMBEDDER_MODEL"),
		},
		Verify: VerifyConfig{
			Threshold: envFloat("VERIFY_THRESHOLD"),
		},
		Web: WebConfig{
			Port: envInt("WEB_PORT", 8080),
			Host: envStr("WEB_HOST", "0.0.0.0"),
		},
		Thresholds: thresholds,
	}
}

// DefaultThreshold resolves the default cosine distance threshold for a model.
// Precedence: VERIFY_THRESHOLD env override, then the per-model table,
// then the global fallback of 0.45.
func (c *Config) DefaultThreshold(model string) float64 {
	if c.Verify.Threshold > 0 {
		return c.Verify.Threshold
	}
	if t, ok := c.Thresholds.Models[model]; ok && t > 0 {
		return t
	}
	return fallbackThreshold
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/MalithGihan/dqa-service/internal/quality"
)

type Config struct {
	Port           string
	DataRoot       string
	ThresholdsPath string
	Debug          bool
	Thresholds     quality.Thresholds
}

// Load reads .env (if present) and the process environment. When
// DQA_THRESHOLDS names a YAML file it overrides the default thresholds.
func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{
		Port:           getenv("PORT", "8081"),
		DataRoot:       getenv("DATA_ROOT", "./projects"),
		ThresholdsPath: os.Getenv("DQA_THRESHOLDS"),
		Debug:          strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug"),
		Thresholds:     quality.DefaultThresholds(),
	}
	if cfg.ThresholdsPath != "" {
		t, err := LoadThresholds(cfg.ThresholdsPath)
		if err != nil {
			return cfg, err
		}
		cfg.Thresholds = t
	}
	return cfg, nil
}

// LoadThresholds reads a YAML thresholds file. Keys it leaves out keep
// their default values; unknown keys are rejected.
func LoadThresholds(path string) (quality.Thresholds, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return quality.Thresholds{}, err
	}
	t, err := ParseThresholds(b)
	if err != nil {
		return quality.Thresholds{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func ParseThresholds(b []byte) (quality.Thresholds, error) {
	t := quality.DefaultThresholds()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return quality.Thresholds{}, err
	}
	if err := t.Validate(); err != nil {
		return quality.Thresholds{}, err
	}
	return t, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

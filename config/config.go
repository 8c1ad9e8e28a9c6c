package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is read from defaults, then an optional YAML file, then the
// environment. Command line flags override the result.
type Config struct {
	DocPath  string `yaml:"doc_path" json:"doc_path" envconfig:"CONLLU_DOC_PATH"`
	LogLevel string `yaml:"log_level" json:"log_level" envconfig:"CONLLU_LOGLEVEL"`
	Color    bool   `yaml:"color" json:"color" envconfig:"CONLLU_COLOR"`
}

func Default() Config {
	return Config{
		LogLevel: "INFO",
		Color:    true,
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything needed to open a session. Credentials come
// from the environment (or .env), never from the YAML file.
type Config struct {
	Demo       bool
	Timeout    time.Duration
	Identifier string
	Password   string
	APIKey     string
}

type configTmp struct {
	Demo       bool   `yaml:"demo"`
	TimeoutStr string `yaml:"timeout,omitempty"`
}

// Get loads the configuration: YAML file via -config when given,
// defaults otherwise, then credentials from the environment. A .env
// file in the working directory is honored when present.
func Get() (Config, error) {
	path := flag.String("config", "", "path to yaml config")
	demo := flag.Bool("demo", true, "use the demo gateway")
	flag.Parse()

	cfg := Config{Demo: *demo, Timeout: 30 * time.Second}
	if *path != "" {
		var err error
		cfg, err = getYaml(*path)
		if err != nil {
			return Config{}, err
		}
	}

	// best effort; real env vars win over .env entries
	_ = godotenv.Load()

	cfg.Identifier = os.Getenv("IG_IDENTIFIER")
	cfg.Password = os.Getenv("IG_PASSWORD")
	cfg.APIKey = os.Getenv("IG_API_KEY")
	return cfg, nil
}

// Complete reports whether all three credentials are set.
func (c Config) Complete() bool {
	return c.Identifier != "" && c.Password != "" && c.APIKey != ""
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, fmt.Errorf("incorrect yaml config %s: %w", path, err)
	}

	cfg := Config{Demo: tmp.Demo, Timeout: 30 * time.Second}
	if tmp.TimeoutStr != "" {
		timeout, err := time.ParseDuration(tmp.TimeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'timeout' param in yaml config (correct format is 30s), error: %w", err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

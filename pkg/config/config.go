package config

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/adrianliechti/wincher-mcp/pkg/wincher"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var Files = []string{
	".wincher.yaml",
	".wincher.json",
	"wincher.yaml",
	"wincher.json",
}

type Config struct {
	URL    string `json:"url" yaml:"url"`
	APIKey string `json:"api_key" yaml:"api_key"`
}

// Load reads .env, the first config file found in the working directory and
// the environment, in increasing order of precedence. A missing API key is
// not an error here.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		URL: wincher.DefaultURL,
	}

	for _, name := range Files {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			continue
		}

		c, err := Parse(name)

		if err != nil {
			return nil, err
		}

		if c.URL != "" {
			config.URL = c.URL
		}

		if c.APIKey != "" {
			config.APIKey = c.APIKey
		}

		break
	}

	if key := os.Getenv(wincher.APIKeyEnv); key != "" {
		config.APIKey = key
	}

	if url := os.Getenv("WINCHER_URL"); url != "" {
		config.URL = url
	}

	config.APIKey = strings.TrimSpace(config.APIKey)

	return config, nil
}

func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	var config Config

	if err := json.Unmarshal(data, &config); err == nil {
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err == nil {
		return &config, nil
	}

	return nil, errors.New("failed to parse config file")
}

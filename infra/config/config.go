package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// Load loads the config for the given key from the given directory.
func Load(dir, key string, v interface{}) error {

	b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%s.json", key)))
	if err != nil {
		return fmt.Errorf("could not load config for %s: %w", key, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Info().Str("config", key).Str("dir", dir).Msg("loaded config")

	return nil
}

// MustLoad loads the config for the given key from the default location
func MustLoad(key string, v interface{}) {
	if err := Load(path, key, v); err != nil {
		panic(err.Error())
	}
}

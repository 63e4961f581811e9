package bootstrap

import (
	"errors"
	"io/fs"

	"rental-engine/internal/pkg/config"

	"github.com/joho/godotenv"
)

// LoadConfig reads an optional .env file into the environment, then the
// environment into Config. Variables already set win over the file.
func LoadConfig() (config.Config, error) {
	if err := loadDotEnv(); err != nil {
		return config.Config{}, err
	}
	return config.LoadConfig()
}

func LoadDBConfig() (config.DBConfig, error) {
	if err := loadDotEnv(); err != nil {
		return config.DBConfig{}, err
	}
	return config.LoadDBConfig()
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is everything the tools take from the environment. A .env file
// in the working directory is honored when present.
type Config struct {
	OllamaURL string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	DBPath    string `env:"CATDEV_DB" envDefault:"catdev.db"`
	SuitePath string `env:"CATDEV_SUITE" envDefault:"bench.toml"`
	ExportDir string `env:"CATDEV_EXPORT_DIR" envDefault:"exports"`
	CatName   string `env:"CATDEV_CAT_NAME"`

	Workers    int     `env:"CATDEV_WORKERS" envDefault:"2"`
	RequestRPS float64 `env:"CATDEV_RPS" envDefault:"2"`

	ListenAddr string `env:"CATDEV_LISTEN" envDefault:":8787"`
}

// Load reads the .env file (when present) and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

package config

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
}

type AppConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080" yaml:"addr"`
}

type StorageConfig struct {
	Path string `env:"MEMBERS_DB_PATH" envDefault:"members.db" yaml:"path"`
}

// Load читает .env, переменные окружения и необязательный config.yml
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}

	// Необязательный config.yml поверх значений из окружения
	if b, err := os.ReadFile("config.yml"); err == nil {
		if err := yaml.Unmarshal(b, cfg); err != nil {
			log.Fatalf("failed to parse config.yml: %v", err)
		}
	}

	return cfg
}

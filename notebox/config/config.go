package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_sslmode"`
	ListenAddr string `yaml:"listen_addr"`
	LogDir     string `yaml:"log_dir"`
}

// LoadConfig builds the configuration from config.yaml (if present) with
// environment variables taking precedence. A .env file is loaded first
// outside of test mode.
func LoadConfig() Config {
	if os.Getenv("GO_ENV") != "test" {
		_ = godotenv.Load()
	}

	cfg := Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBSSLMode:  "disable",
		ListenAddr: ":8000",
		LogDir:     "./logs",
	}

	if data, err := os.ReadFile(configFile()); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("config: ignoring malformed %s: %v", configFile(), err)
		}
	}

	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBSSLMode = getEnv("DB_SSLMODE", cfg.DBSSLMode)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.LogDir = getEnv("LOG_DIR", cfg.LogDir)

	return cfg
}

func configFile() string {
	if path := os.Getenv("NOTEBOX_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

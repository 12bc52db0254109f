package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Storage driver names
const (
	StorageBadger = "badger"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Auth    AuthConfig    `yaml:"auth"`
	Backend BackendConfig `yaml:"backend"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	BasePath string `yaml:"base_path"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

type StorageConfig struct {
	Driver    string `yaml:"driver"`
	Path      string `yaml:"path"`
	DSN       string `yaml:"dsn"`
	Namespace string `yaml:"namespace"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	SecretKey  string `yaml:"secret_key"`
	TokenTTLMn int    `yaml:"token_ttl_minutes"`
}

// BackendConfig tunes the simulated deal backend
type BackendConfig struct {
	MinLatencyMS int `yaml:"min_latency_ms"`
	MaxLatencyMS int `yaml:"max_latency_ms"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:     8000,
			BasePath: "/api",
			Env:      "dev",
			LogLevel: "debug",
		},
		Storage: StorageConfig{
			Driver:    StorageBadger,
			Path:      "data/storage",
			DSN:       "data/storage.db",
			Namespace: "vobb-atlas-store",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
			DB:   0,
		},
		Auth: AuthConfig{
			SecretKey:  "dev-secret",
			TokenTTLMn: 720,
		},
		Backend: BackendConfig{
			MinLatencyMS: 300,
			MaxLatencyMS: 500,
		},
	}

	// Load from yaml file if exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Server.Env = env
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}
	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if storagePath := os.Getenv("STORAGE_PATH"); storagePath != "" {
		cfg.Storage.Path = storagePath
	}
	if dsn := os.Getenv("STORAGE_DSN"); dsn != "" {
		cfg.Storage.DSN = dsn
	}
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		cfg.Redis.Host = redisHost
	}
	if redisPort := os.Getenv("REDIS_PORT"); redisPort != "" {
		if p, err := strconv.Atoi(redisPort); err == nil {
			cfg.Redis.Port = p
		}
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if secretKey := os.Getenv("SECRET_KEY"); secretKey != "" {
		cfg.Auth.SecretKey = secretKey
	}

	return cfg, nil
}

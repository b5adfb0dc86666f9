package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

const (
	defaultPort             = 16190
	defaultConnectTimeoutMS = 5000
	defaultRequestTimeoutMS = 10000
)

// LoadAppConfig loads and validates the application configuration.
// A missing config.yml is not an error; environment variables
// (TAN_BASE_URL, TAN_PORT, TAN_CONNECT_TIMEOUT_MS, TAN_REQUEST_TIMEOUT_MS)
// override file values, and a .env file, when present, is folded into the
// environment first.
func LoadAppConfig() error {
	_ = godotenv.Load()

	var cfg AppConfig
	paths := []string{"config.yml", "./config/config.yml"}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		break
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Client); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if s := os.Getenv("TAN_BASE_URL"); s != "" {
		cfg.Client.BaseURL = s
	}
	if n, ok := envInt("TAN_PORT"); ok {
		cfg.Server.Port = n
	}
	if n, ok := envInt("TAN_CONNECT_TIMEOUT_MS"); ok {
		cfg.Client.ConnectTimeoutMS = n
	}
	if n, ok := envInt("TAN_REQUEST_TIMEOUT_MS"); ok {
		cfg.Client.RequestTimeoutMS = n
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Client.ConnectTimeoutMS == 0 {
		cfg.Client.ConnectTimeoutMS = defaultConnectTimeoutMS
	}
	if cfg.Client.RequestTimeoutMS == 0 {
		cfg.Client.RequestTimeoutMS = defaultRequestTimeoutMS
	}
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

package config

import (
	"errors"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" env-default:"3000"`
		Env  string `yaml:"env" env:"ENV" env-default:"development"`
	} `yaml:"server"`
	Database struct {
		URI     string `yaml:"uri" env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
		Name    string `yaml:"name" env:"MONGODB_NAME" env-default:"bookhaven"`
		Timeout string `yaml:"timeout" env:"MONGODB_TIMEOUT" env-default:"3s"`
	} `yaml:"database"`
	// JWT.Secret defaults to the value every historic deployment shipped
	// with. Override it per deployment; the default exists only so legacy
	// tokens keep verifying.
	JWT struct {
		Secret      string `yaml:"secret" env:"JWT_SECRET" env-default:"ourSecret"`
		LifetimeHrs int    `yaml:"lifetime_hours" env:"JWT_LIFETIME_HOURS" env-default:"5"`
	} `yaml:"jwt"`
	SMTP struct {
		Enabled  bool   `yaml:"enabled" env:"SMTP_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"SMTP_HOST"`
		Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"25"`
		Username string `yaml:"username" env:"SMTP_USERNAME"`
		Password string `yaml:"password" env:"SMTP_PASSWORD"`
		Sender   string `yaml:"sender" env:"SMTP_SENDER" env-default:"Bookhaven <no-reply@bookhaven.example>"`
	} `yaml:"smtp"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"CORS_TRUSTED_ORIGINS"`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"BASICAUTH_USERNAME"`
		Password string `yaml:"password" env:"BASICAUTH_PASSWORD"`
	} `yaml:"basic_auth"`
}

// Decode reads configuration from the file named by the CONFIG_FILE
// environment variable (if set) and then from the environment itself.
// Environment variables win over file values.
func Decode() (Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		err := cleanenv.ReadConfig(path, &cfg)
		if err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return Config{}, err
	}
	if cfg.Database.URI == "" {
		return Config{}, errors.New("config: database uri must be set")
	}
	return cfg, nil
}

package config

import (
	"errors"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `env:"ENV" env-default:"local"`
	HTTPPort int    `env:"HTTP_PORT" env-default:"8080"`

	CanvasDomain          string        `env:"CANVAS_DOMAIN" env-required:"true"`
	CanvasAPIToken        string        `env:"CANVAS_API_TOKEN" env-required:"true"` //nolint:gosec // config struct, not hardcoded cred
	CanvasRequestTimeout  time.Duration `env:"CANVAS_REQUEST_TIMEOUT" env-default:"30s"`
	CanvasTodoConcurrency int           `env:"CANVAS_TODO_CONCURRENCY" env-default:"4"`

	RetryMaxAttempts        int           `env:"RETRY_MAX_ATTEMPTS" env-default:"3"`
	RetryBaseDelay          time.Duration `env:"RETRY_BASE_DELAY" env-default:"200ms"`
	BreakerFailureThreshold int           `env:"BREAKER_FAILURE_THRESHOLD" env-default:"5"`
	BreakerResetTimeout     time.Duration `env:"BREAKER_RESET_TIMEOUT" env-default:"30s"`
}

func New() (*Config, error) {
	return Load("./config/.env")
}

// Load reads path when it exists and falls back to the process environment.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.CanvasRequestTimeout < 0 {
		return errors.New("CANVAS_REQUEST_TIMEOUT must not be negative")
	}
	if cfg.CanvasTodoConcurrency <= 0 {
		return errors.New("CANVAS_TODO_CONCURRENCY must be positive")
	}
	if cfg.RetryMaxAttempts <= 0 {
		return errors.New("RETRY_MAX_ATTEMPTS must be positive")
	}
	return nil
}

// Package config loads lvtrace settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/kataras/golog"

	"github.com/katalvlaran/lvtrace/explain"
	"github.com/katalvlaran/lvtrace/feedback"
)

// ErrInvalid reports a setting outside its accepted range.
var ErrInvalid = errors.New("config: invalid setting")

var logLevels = []string{"debug", "info", "warn", "error", "disable"}

// Config holds every setting the CLI and server read.
type Config struct {
	Addr     string `env:"LVTRACE_ADDR" envDefault:":8080"`
	LogLevel string `env:"LVTRACE_LOG_LEVEL" envDefault:"info"`
	SpeedMS  int    `env:"LVTRACE_SPEED_MS" envDefault:"500"`

	Feedback   string `env:"LVTRACE_FEEDBACK" envDefault:"memory"`
	RedisAddr  string `env:"LVTRACE_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"LVTRACE_SQLITE_PATH" envDefault:"lvtrace.db"`

	OpenAIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	ExplainRPS    float64       `env:"LVTRACE_EXPLAIN_RPS" envDefault:"1"`
	ExplainBurst  int           `env:"LVTRACE_EXPLAIN_BURST" envDefault:"3"`
	ExplainWait   time.Duration `env:"LVTRACE_EXPLAIN_TIMEOUT" envDefault:"30s"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load parses and validates a Config.
func Load() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	level := strings.ToLower(c.LogLevel)
	var ok bool
	for _, l := range logLevels {
		ok = ok || l == level
	}
	if !ok {
		return fmt.Errorf("%w: log level %q (want one of %s)", ErrInvalid, c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.SpeedMS <= 0 {
		return fmt.Errorf("%w: speed %dms must be positive", ErrInvalid, c.SpeedMS)
	}
	switch strings.ToLower(c.Feedback) {
	case feedback.BackendMemory, feedback.BackendRedis, feedback.BackendSQLite:
	default:
		return fmt.Errorf("%w: feedback backend %q", ErrInvalid, c.Feedback)
	}
	if c.ExplainRPS <= 0 || c.ExplainBurst <= 0 {
		return fmt.Errorf("%w: explain rate %.2f/s burst %d", ErrInvalid, c.ExplainRPS, c.ExplainBurst)
	}

	return nil
}

// Speed is the playback interval.
func (c Config) Speed() time.Duration { return time.Duration(c.SpeedMS) * time.Millisecond }

// Logger builds a golog logger at the configured level.
func (c Config) Logger() *golog.Logger {
	l := golog.New()
	l.SetLevel(strings.ToLower(c.LogLevel))

	return l
}

// FeedbackOptions maps the settings onto feedback.Open.
func (c Config) FeedbackOptions() feedback.Options {
	return feedback.Options{Backend: c.Feedback, RedisAddr: c.RedisAddr, SQLitePath: c.SQLitePath}
}

// ExplainConfig maps the settings onto explain.NewOpenAI.
func (c Config) ExplainConfig() explain.Config {
	return explain.Config{APIKey: c.OpenAIKey, Model: c.OpenAIModel, BaseURL: c.OpenAIBaseURL, Timeout: c.ExplainWait}
}

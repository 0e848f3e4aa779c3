package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// TASKMIND_ prefix with underscores for nesting (TASKMIND_SERVER_PORT).
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TASKMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("llm.provider", "hf")
	v.SetDefault("llm.api_url", "https://api-inference.huggingface.co/models/google/flan-t5-base")
	v.SetDefault("llm.backup_api_url", "https://api-inference.huggingface.co/models/google/flan-t5-small")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_ms", 1000)
	v.SetDefault("llm.max_length", 250)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.top_p", 0.9)

	v.SetDefault("extraction.enabled", true)
	v.SetDefault("extraction.interval_minutes", 60)
	v.SetDefault("extraction.max_messages", 50)
	v.SetDefault("extraction.run_on_startup", true)

	v.SetDefault("reminders.lead_times", []map[string]interface{}{
		{"minutes": 1440, "label": "1 day before"},
		{"minutes": 60, "label": "1 hour before"},
		{"minutes": 10, "label": "10 minutes before"},
	})

	v.SetDefault("notifications.task_extraction", true)
	v.SetDefault("notifications.task_reminders", true)
	v.SetDefault("notifications.system", true)
}

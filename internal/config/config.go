package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"        validate:"required"`
	Database      DatabaseConfig      `mapstructure:"database"`
	LLM           LLMConfig           `mapstructure:"llm"           validate:"required"`
	Extraction    ExtractionConfig    `mapstructure:"extraction"`
	Reminders     RemindersConfig     `mapstructure:"reminders"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Gmail         GmailConfig         `mapstructure:"gmail"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL selects the in-memory task store.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// LLMConfig contains the text-generation integration settings.
//
// Provider selects the backend: "hf" posts raw JSON to hosted-model
// endpoints (APIURL primary, BackupAPIURL tried after the primary is
// exhausted), "gemini" uses the Google genai SDK.
type LLMConfig struct {
	Provider     string `mapstructure:"provider"       validate:"required,oneof=hf gemini"`
	APIURL       string `mapstructure:"api_url"        validate:"required_if=Provider hf,omitempty,url"`
	BackupAPIURL string `mapstructure:"backup_api_url" validate:"omitempty,url"`
	APIToken     string `mapstructure:"api_token"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	ModelName    string `mapstructure:"model_name"`

	// MaxRetries bounds attempts per model; RetryDelayMs is the base of
	// the exponential backoff (delay = base * 2^attempt).
	MaxRetries   int `mapstructure:"max_retries"    validate:"gte=0"`
	RetryDelayMs int `mapstructure:"retry_delay_ms" validate:"gte=0"`

	// Generation parameters.
	MaxLength   int     `mapstructure:"max_length"  validate:"gte=0"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	TopP        float64 `mapstructure:"top_p"       validate:"gte=0,lte=1"`
}

// ExtractionConfig controls the periodic mail extraction run.
type ExtractionConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalMinutes int  `mapstructure:"interval_minutes" validate:"gte=1"`
	MaxMessages     int  `mapstructure:"max_messages"     validate:"gte=1"`
	RunOnStartup    bool `mapstructure:"run_on_startup"`
}

// LeadTimeConfig is one reminder offset before a task's due date.
type LeadTimeConfig struct {
	Minutes int    `mapstructure:"minutes" validate:"required,gt=0"`
	Label   string `mapstructure:"label"   validate:"required"`
}

// RemindersConfig holds the reminder lead times, closest-to-due last.
type RemindersConfig struct {
	LeadTimes []LeadTimeConfig `mapstructure:"lead_times" validate:"dive"`
}

// NotificationsConfig toggles the notification categories.
type NotificationsConfig struct {
	TaskExtraction bool `mapstructure:"task_extraction"`
	TaskReminders  bool `mapstructure:"task_reminders"`
	System         bool `mapstructure:"system"`
}

// GmailConfig points at the OAuth credential files for the mail source.
// Both empty disables mail extraction entirely.
type GmailConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	TokenFile       string `mapstructure:"token_file"`
}

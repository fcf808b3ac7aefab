package config

// ServerConfig holds HTTP server settings for webhook mode and health checks.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds relational storage settings.
// Driver is either "sqlite" (Path is used) or "mysql" (host/port/credentials).
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds redis settings for conversation state and polling offsets.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// TelegramConfig holds bot transport settings.
type TelegramConfig struct {
	BotToken      string  `mapstructure:"bot_token"`
	AdminIDs      []int64 `mapstructure:"admin_ids"`
	WebhookURL    string  `mapstructure:"webhook_url"`
	WebhookSecret string  `mapstructure:"webhook_secret"`
	PollTimeout   int     `mapstructure:"poll_timeout"`
}

// SearchConfig holds fuzzy search thresholds.
type SearchConfig struct {
	Threshold     int `mapstructure:"threshold"`
	AutoThreshold int `mapstructure:"auto_threshold"`
	Limit         int `mapstructure:"limit"`
	MinQueryLen   int `mapstructure:"min_query_len"`
}

// RateLimitConfig bounds inbound updates per chat. A zero value disables
// the corresponding window.
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	PerHour   int `mapstructure:"per_hour"`
}

// BroadcastConfig holds notification fan-out settings.
type BroadcastConfig struct {
	SendDelayMs     int `mapstructure:"send_delay_ms"`
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

// BiztimeConfig holds the business timezone used for date boundaries.
type BiztimeConfig struct {
	Timezone string `mapstructure:"timezone"`
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"freight-rate-watch/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Source    SourceConfig    `mapstructure:"source"`
	Rates     RatesConfig     `mapstructure:"rates"`
	Server    ServerConfig    `mapstructure:"server"`
	Alerting  AlertingConfig  `mapstructure:"alerting"`
	Export    ExportConfig    `mapstructure:"export"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig encapsulates PostgreSQL connectivity.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsPath  string        `mapstructure:"migrations_path"`
}

// SchedulerConfig governs the daily extraction cadence.
type SchedulerConfig struct {
	RunAt        string        `mapstructure:"run_at"`
	StartupDelay time.Duration `mapstructure:"startup_delay"`
}

// SourceConfig covers the upstream bulletin and bunker endpoints.
type SourceConfig struct {
	BulletinURL    string        `mapstructure:"bulletin_url"`
	BunkerURL      string        `mapstructure:"bunker_url"`
	UserAgent      string        `mapstructure:"user_agent"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// RatesConfig tunes the extraction and read-side aggregation. The
// min/max bound is a noise filter on parsed figures, not a market rule.
type RatesConfig struct {
	MinRate      int `mapstructure:"min_rate"`
	MaxRate      int `mapstructure:"max_rate"`
	LookbackDays int `mapstructure:"lookback_days"`
	MaxRows      int `mapstructure:"max_rows"`
	BunkerLimit  int `mapstructure:"bunker_limit"`
}

// ServerConfig parameterises the HTTP API.
type ServerConfig struct {
	ListenAddr        string   `mapstructure:"listen_addr"`
	CronSecret        string   `mapstructure:"cron_secret"`
	TrustedCronHeader string   `mapstructure:"trusted_cron_header"`
	CORSOrigins       []string `mapstructure:"cors_origins"`
}

// AlertingConfig defines failure-notification routing.
type AlertingConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// TelegramConfig describes the Telegram bot channel.
type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
	APIBase  string `mapstructure:"api_base"`
}

// ExportConfig sets CLI export behaviour.
type ExportConfig struct {
	MaxDataPoints int `mapstructure:"max_data_points"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FREIGHTWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "freightwatch")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("scheduler.run_at", "06:30")
	v.SetDefault("scheduler.startup_delay", "0s")

	v.SetDefault("source.user_agent", "freightwatch/1.0 (freight rate bulletin monitor)")
	v.SetDefault("source.request_timeout", "15s")

	v.SetDefault("rates.min_rate", 1000)
	v.SetDefault("rates.max_rate", 200000)
	v.SetDefault("rates.lookback_days", 45)
	v.SetDefault("rates.max_rows", 2000)
	v.SetDefault("rates.bunker_limit", 50)

	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.trusted_cron_header", "")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("alerting.enabled", false)
	v.SetDefault("alerting.telegram.enabled", false)
	v.SetDefault("alerting.telegram.api_base", "https://api.telegram.org")

	v.SetDefault("export.max_data_points", 10000)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.migrations_path", "migrations")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Rates.MinRate <= 0 || c.Rates.MaxRate <= 0 {
		return fmt.Errorf("rates.min_rate and rates.max_rate must be greater than zero")
	}
	if c.Rates.MinRate >= c.Rates.MaxRate {
		return fmt.Errorf("rates.min_rate must be below rates.max_rate")
	}
	if c.Rates.LookbackDays <= 0 {
		return fmt.Errorf("rates.lookback_days must be greater than zero")
	}
	if c.Rates.MaxRows <= 0 {
		return fmt.Errorf("rates.max_rows must be greater than zero")
	}
	if c.Export.MaxDataPoints <= 0 {
		return fmt.Errorf("export.max_data_points must be greater than zero")
	}
	if _, err := time.Parse("15:04", c.Scheduler.RunAt); err != nil {
		return fmt.Errorf("scheduler.run_at must be HH:MM (UTC): %w", err)
	}
	if c.Alerting.Telegram.Enabled {
		if c.Alerting.Telegram.BotToken == "" {
			return fmt.Errorf("alerting.telegram.bot_token is required when telegram is enabled")
		}
		if c.Alerting.Telegram.ChatID == "" {
			return fmt.Errorf("alerting.telegram.chat_id is required when telegram is enabled")
		}
	}
	return nil
}

// RunAtClock parses scheduler.run_at into hour and minute.
func (c *Config) RunAtClock() (hour, minute int) {
	t, err := time.Parse("15:04", c.Scheduler.RunAt)
	if err != nil {
		return 6, 30
	}
	return t.Hour(), t.Minute()
}

// ResolveMaxPoints returns either the CLI override or config default.
func (c *Config) ResolveMaxPoints(override int) int {
	if override > 0 {
		return override
	}
	return c.Export.MaxDataPoints
}

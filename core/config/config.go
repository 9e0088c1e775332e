package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"timeslotfinder/core/logger"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds Postgres settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig holds Redis settings (schedule cache and asynq broker)
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig holds API authentication settings
type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt_secret"`
	APIKey          string `mapstructure:"api_key"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
}

// GraphConfig holds Microsoft Graph settings
type GraphConfig struct {
	ClientID       string `mapstructure:"client_id"`
	TenantID       string `mapstructure:"tenant_id"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	TokenCacheFile string `mapstructure:"token_cache_file"`
	// Mock switches the calendar adapter to generated data, no Azure needed.
	Mock bool `mapstructure:"mock"`
}

// AuthorityURL returns the Azure AD authority for the configured tenant
func (g GraphConfig) AuthorityURL() string {
	return fmt.Sprintf("https://login.microsoftonline.com/%s", g.TenantID)
}

// WorkingHoursConfig holds the working-hours policy.
// Weekday indices are 0=Monday .. 6=Sunday.
type WorkingHoursConfig struct {
	Start           string `mapstructure:"start"` // "HH:MM"
	End             string `mapstructure:"end"`   // "HH:MM"
	ExcludeWeekdays []int  `mapstructure:"exclude_weekdays"`
	Timezone        string `mapstructure:"timezone"`
}

// StartClock parses the working-hours start into hour and minute
func (w WorkingHoursConfig) StartClock() (int, int, error) {
	return parseClock(w.Start)
}

// EndClock parses the working-hours end into hour and minute
func (w WorkingHoursConfig) EndClock() (int, int, error) {
	return parseClock(w.End)
}

// DefaultsConfig holds search defaults
type DefaultsConfig struct {
	DurationMinutes int `mapstructure:"duration_minutes"`
	SearchDays      int `mapstructure:"search_days"`
}

// Colleague maps a short alias to a calendar email address
type Colleague struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// AsynqConfig holds background worker settings
type AsynqConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// Config is the application configuration
type Config struct {
	Env          string             `mapstructure:"env"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Graph        GraphConfig        `mapstructure:"graph"`
	WorkingHours WorkingHoursConfig `mapstructure:"working_hours"`
	Defaults     DefaultsConfig     `mapstructure:"defaults"`
	Colleagues   []Colleague        `mapstructure:"colleagues"`
	Asynq        AsynqConfig        `mapstructure:"asynq"`
}

var (
	instance    *Config
	initialized bool
)

// Load reads config.yaml plus environment overrides into the package instance
func Load() (*Config, error) {
	// .env is optional; real deployments use actual environment variables.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("No config file found, using environment variables only", "error", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if _, _, err := cfg.WorkingHours.StartClock(); err != nil {
		return nil, fmt.Errorf("working_hours.start: %w", err)
	}
	if _, _, err := cfg.WorkingHours.EndClock(); err != nil {
		return nil, fmt.Errorf("working_hours.end: %w", err)
	}

	instance = &cfg
	initialized = true
	return instance, nil
}

func setDefaults() {
	viper.SetDefault("env", "development")
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 7070)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "timeslotfinder")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("auth.token_ttl_minutes", 60)
	viper.SetDefault("graph.timeout_seconds", 30)
	viper.SetDefault("graph.token_cache_file", "")
	viper.SetDefault("graph.mock", false)
	viper.SetDefault("working_hours.start", "09:00")
	viper.SetDefault("working_hours.end", "17:00")
	viper.SetDefault("working_hours.exclude_weekdays", []int{5, 6})
	viper.SetDefault("working_hours.timezone", "Europe/Berlin")
	viper.SetDefault("defaults.duration_minutes", 30)
	viper.SetDefault("defaults.search_days", 7)
	viper.SetDefault("asynq.concurrency", 4)
}

// Get returns the loaded configuration; it panics before Load
func Get() *Config {
	if !initialized {
		panic("config: Get called before Load")
	}
	return instance
}

// GetSafe returns the configuration and whether Load has completed
func GetSafe() (*Config, bool) {
	return instance, initialized
}

// ResolveParticipant resolves an alias or email to a calendar email address.
// Anything containing '@' passes through lowercased; otherwise the colleague
// list is consulted case-insensitively.
func (c *Config) ResolveParticipant(identifier string) (string, error) {
	if strings.Contains(identifier, "@") {
		return strings.ToLower(identifier), nil
	}
	for _, col := range c.Colleagues {
		if strings.EqualFold(col.Name, identifier) {
			return strings.ToLower(col.Email), nil
		}
	}
	return "", fmt.Errorf("unknown participant identifier %q: use an email address or a configured name", identifier)
}

func parseClock(value string) (int, int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour must be between 0 and 23, got %q", parts[0])
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute must be between 0 and 59, got %q", parts[1])
	}
	return hour, minute, nil
}

// Package config loads and validates the tracker configuration from
// flags, environment variables and the credential files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultWindowDays  = 45
	DefaultDBPath      = "credit_statements.db"
	DefaultCredsDir    = "creds"
	DefaultSendersFile = "cc_statements.txt"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 25 * 1024 * 1024 // 25MB
)

// Config holds all configuration for the statement tracker. It is built
// once at startup and passed read-only into each component.
type Config struct {
	// Users to process, each with its own mailbox token and passwords.
	Users []string

	// Credential locations
	CredsDir      string
	PasswordsFile string
	SendersFile   string

	// Pipeline configuration
	WindowDays  int
	MaxFileSize int64
	DBPath      string

	// Application configuration
	Version  string
	LogLevel string
	Schedule string // cron expression; empty means run once and exit
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CredsDir:      DefaultCredsDir,
		PasswordsFile: filepath.Join(DefaultCredsDir, "passwords.json"),
		SendersFile:   DefaultSendersFile,
		WindowDays:    DefaultWindowDays,
		MaxFileSize:   DefaultMaxFileSize,
		DBPath:        DefaultDBPath,
		Version:       "1.0.0",
		LogLevel:      DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.CredsDir != "" {
		if expandedPath, err := filepath.Abs(cfg.CredsDir); err == nil {
			cfg.CredsDir = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("CC_TRACKER")
	viper.AutomaticEnv()

	viper.SetDefault("users", cfg.Users)
	viper.SetDefault("creds", cfg.CredsDir)
	viper.SetDefault("passwords", cfg.PasswordsFile)
	viper.SetDefault("senders", cfg.SendersFile)
	viper.SetDefault("days", cfg.WindowDays)
	viper.SetDefault("db", cfg.DBPath)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("schedule", cfg.Schedule)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.StringSlice("users", cfg.Users, "Users to process (comma separated)")
	pflag.String("creds", cfg.CredsDir, "Directory holding credentials.json and per-user token files")
	pflag.String("passwords", cfg.PasswordsFile, "Per-user, per-issuer PDF password file (JSON)")
	pflag.String("senders", cfg.SendersFile, "Recognized sender domains file (one per line)")
	pflag.Int("days", cfg.WindowDays, "How many days back to search the mailbox")
	pflag.String("db", cfg.DBPath, "SQLite database path")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum statement PDF size in bytes")
	pflag.String("schedule", cfg.Schedule, "Cron expression for repeated runs (empty runs once)")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("users", pflag.Lookup("users"))
	_ = viper.BindPFlag("creds", pflag.Lookup("creds"))
	_ = viper.BindPFlag("passwords", pflag.Lookup("passwords"))
	_ = viper.BindPFlag("senders", pflag.Lookup("senders"))
	_ = viper.BindPFlag("days", pflag.Lookup("days"))
	_ = viper.BindPFlag("db", pflag.Lookup("db"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("schedule", pflag.Lookup("schedule"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nCredit Card Statement Tracker - fetches and parses statement PDFs from Gmail\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --users=rahul                            # one-shot run for one user\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --users=rahul,gulshan --days=90          # wider search window\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --users=rahul --schedule=\"0 8 * * *\"     # re-run daily at 08:00\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  CC_TRACKER_USERS        Users to process\n")
		fmt.Fprintf(os.Stderr, "  CC_TRACKER_CREDS        Credentials directory\n")
		fmt.Fprintf(os.Stderr, "  CC_TRACKER_PASSWORDS    PDF password file\n")
		fmt.Fprintf(os.Stderr, "  CC_TRACKER_SENDERS      Sender domains file\n")
		fmt.Fprintf(os.Stderr, "  CC_TRACKER_DB           SQLite database path\n")
		fmt.Fprintf(os.Stderr, "  CC_TRACKER_LOGLEVEL     Log level\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Users = viper.GetStringSlice("users")
	cfg.CredsDir = viper.GetString("creds")
	cfg.PasswordsFile = viper.GetString("passwords")
	cfg.SendersFile = viper.GetString("senders")
	cfg.WindowDays = viper.GetInt("days")
	cfg.DBPath = viper.GetString("db")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.Schedule = viper.GetString("schedule")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Users) == 0 {
		return errors.New("at least one user must be configured")
	}

	if c.WindowDays <= 0 {
		return errors.New("search window must be positive")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.DBPath == "" {
		return errors.New("database path cannot be empty")
	}

	if c.SendersFile == "" {
		return errors.New("sender domains file cannot be empty")
	}

	if c.PasswordsFile == "" {
		return errors.New("passwords file cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsScheduled returns true when a cron schedule is configured.
func (c *Config) IsScheduled() bool {
	return c.Schedule != ""
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Users: %v, CredsDir: %s, DBPath: %s, WindowDays: %d, LogLevel: %s, Schedule: %q}",
		c.Users, c.CredsDir, c.DBPath, c.WindowDays, c.LogLevel, c.Schedule)
}

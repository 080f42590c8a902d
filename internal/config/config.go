package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from .env, environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	AdminUsername      string
	AdminPassword      string
	TokenSecret        string
	TokenStrategy      string
	TokenTTL           time.Duration
	ShutdownTimeout    time.Duration
	ReadHeaderTimeout  time.Duration
	OrderTokenAttempts int
	CORSOrigins        []string
	Location           *time.Location
	LogLevel           slog.Level
}

const (
	defaultRunAddress         = ":5000"
	defaultAdminUsername      = "admin"
	defaultTokenStrategy      = "jwt"
	defaultTokenTTL           = 12 * time.Hour
	defaultShutdownTimeout    = 10 * time.Second
	defaultReadHeaderTimeout  = 5 * time.Second
	defaultOrderTokenAttempts = 5
	defaultTimezone           = "Local"
	defaultCORSOrigins        = "*"
	defaultLogLevel           = "info"
)

// Load parses configuration from .env file, environment variables and flags.
func Load() (*Config, error) {
	loadDotEnv(".env")
	return load(os.Args[1:], os.LookupEnv)
}

// loadDotEnv exports variables from files that exist. Variables already set in the process win.
func loadDotEnv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		AdminUsername:      getString(lookup, "ADMIN_USERNAME", defaultAdminUsername),
		AdminPassword:      getString(lookup, "ADMIN_PASSWORD", ""),
		TokenSecret:        getString(lookup, "TOKEN_SECRET", ""),
		TokenStrategy:      getString(lookup, "TOKEN_STRATEGY", defaultTokenStrategy),
		TokenTTL:           getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ReadHeaderTimeout:  getDuration(lookup, "READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
		OrderTokenAttempts: getInt(lookup, "ORDER_TOKEN_ATTEMPTS", defaultOrderTokenAttempts),
	}

	fs := flag.NewFlagSet("canteen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		readHeaderStr      = cfg.ReadHeaderTimeout.String()
		timezone           = getString(lookup, "TIMEZONE", defaultTimezone)
		corsOrigins        = getString(lookup, "CORS_ORIGINS", defaultCORSOrigins)
		logLevel           = getString(lookup, "LOG_LEVEL", defaultLogLevel)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AdminUsername, "admin-user", cfg.AdminUsername, "Admin login name")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing admin tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Admin token format: jwt or hmac")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Admin token lifetime")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&readHeaderStr, "read-header-timeout", readHeaderStr, "Time allowed to read request headers")
	fs.IntVar(&cfg.OrderTokenAttempts, "order-token-attempts", cfg.OrderTokenAttempts, "Retries on order token collision")
	fs.StringVar(&timezone, "timezone", timezone, "IANA zone used for the start of day in reports")
	fs.StringVar(&corsOrigins, "cors-origins", corsOrigins, "Comma separated list of allowed CORS origins")
	fs.StringVar(&logLevel, "log-level", logLevel, "Minimum log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ReadHeaderTimeout, err = time.ParseDuration(readHeaderStr); err != nil {
		return nil, fmt.Errorf("invalid read header timeout: %w", err)
	}

	if cfg.Location, err = time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	if passwordFile, ok := lookup("ADMIN_PASSWORD_FILE"); ok && passwordFile != "" {
		content, err := os.ReadFile(passwordFile)
		if err != nil {
			return nil, fmt.Errorf("read admin password file: %w", err)
		}
		cfg.AdminPassword = strings.TrimSpace(string(content))
	}

	cfg.CORSOrigins = splitList(corsOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{defaultCORSOrigins}
	}
	for _, origin := range cfg.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("invalid cors origin %q", origin)
		}
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = defaultReadHeaderTimeout
	}

	if cfg.OrderTokenAttempts <= 0 {
		cfg.OrderTokenAttempts = defaultOrderTokenAttempts
	}

	cfg.TokenStrategy = strings.ToLower(cfg.TokenStrategy)
	if cfg.TokenStrategy != "jwt" && cfg.TokenStrategy != "hmac" {
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password must be provided")
	}

	if strings.TrimSpace(cfg.TokenSecret) == "" {
		return nil, fmt.Errorf("token secret must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

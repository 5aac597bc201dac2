package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the startup configuration for the API process. It is read once
// from the environment and injected where needed; nothing reads env vars
// after startup.
type Config struct {
	// HTTPAddr is the listen address for the gin server, e.g. ":8080".
	HTTPAddr string

	// DatabaseURL is the pgx DSN (DB_URL).
	DatabaseURL string

	// RedisURL backs both the asynq queue and the role cache (REDIS_URL).
	RedisURL string

	// JWTSecret signs access tokens. Required.
	JWTSecret string
	// AccessTokenTTL bounds session lifetime.
	AccessTokenTTL time.Duration

	// FCMServerKey authenticates against the FCM legacy multicast endpoint.
	// Empty means android delivery is skipped (counted, not sent).
	FCMServerKey string
	// FCMEndpoint overrides the gateway URL; used by tests.
	FCMEndpoint string

	// BypassApprovalChecks disables the approval gate on opportunity
	// browsing. Dev-only switch; replaces the old client-side DEV_CONFIG.
	BypassApprovalChecks bool

	// LogFile receives the JSON log stream alongside stderr text output.
	LogFile string

	// AllowedOrigins for CORS; "*" allows any origin.
	AllowedOrigins []string
}

// Load builds a Config from the current environment.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DB_URL")),
		RedisURL:       strings.TrimSpace(os.Getenv("REDIS_URL")),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: getDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		FCMServerKey:   os.Getenv("FCM_SERVER_KEY"),
		FCMEndpoint:    getEnv("FCM_ENDPOINT", "https://fcm.googleapis.com/fcm/send"),
		LogFile:        getEnv("LOG_FILE", "vendor-hub.log"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DB_URL environment variable is not set")
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("config: REDIS_URL environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET environment variable is not set")
	}

	if v := os.Getenv("BYPASS_APPROVAL_CHECKS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("config: BYPASS_APPROVAL_CHECKS must be a boolean")
		}
		cfg.BypassApprovalChecks = b
	}

	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

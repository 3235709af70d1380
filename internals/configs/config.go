package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =======================
// CONFIG
// =======================

type Config struct {
	Env      string
	Port     string
	LogLevel string

	DatabaseURL string

	JWTSecret    string
	JWTExpiresIn time.Duration

	CORSOrigin string

	RateLimitWindow   time.Duration
	RateLimitMax      int
	LoginRateLimitMax int

	UploadDir      string
	UploadMaxBytes int64
	PublicBaseURL  string

	AdminEmail    string
	AdminUsername string
	AdminPassword string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// =======================
// ENV LOADER
// =======================

// LoadEnv reads .env when present. A missing file is not an error; the
// process environment always wins over the file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

// Load builds the Config from the environment. DATABASE_URL and JWT_SECRET
// are only enforced by Validate so that CLI commands which never touch them
// can still start.
func Load() (*Config, error) {
	cfg := &Config{
		Env:           GetEnv("APP_ENV", "development"),
		Port:          GetEnv("PORT", "3000"),
		LogLevel:      GetEnv("LOG_LEVEL", "info"),
		DatabaseURL:   GetEnv("DATABASE_URL"),
		JWTSecret:     GetEnv("JWT_SECRET"),
		CORSOrigin:    GetEnv("CORS_ORIGIN", "*"),
		UploadDir:     GetEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: strings.TrimRight(GetEnv("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),
		AdminEmail:    GetEnv("ADMIN_EMAIL"),
		AdminUsername: GetEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),
	}

	var err error
	if cfg.JWTExpiresIn, err = ParseDuration(GetEnv("JWT_EXPIRES_IN", "7d")); err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}

	windowMS, err := envInt("RATE_LIMIT_WINDOW_MS", 900000)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitWindow = time.Duration(windowMS) * time.Millisecond

	if cfg.RateLimitMax, err = envInt("RATE_LIMIT_MAX_REQUESTS", 100); err != nil {
		return nil, err
	}
	if cfg.LoginRateLimitMax, err = envInt("LOGIN_RATE_LIMIT_MAX", 20); err != nil {
		return nil, err
	}

	maxBytes, err := envInt("UPLOAD_MAX_BYTES", 10<<20)
	if err != nil {
		return nil, err
	}
	cfg.UploadMaxBytes = int64(maxBytes)

	return cfg, nil
}

// Validate checks the settings the HTTP server cannot run without.
func (c *Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}
	if c.RateLimitMax <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit window and max must be positive")
	}
	return nil
}

// ParseDuration accepts Go durations ("168h") and whole days ("7d").
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %q", s)
	}
	return d, nil
}

func envInt(key string, def int) (int, error) {
	v := GetEnv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

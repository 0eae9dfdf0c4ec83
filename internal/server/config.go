package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the HTTP server settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// MaxUploadBytes caps template uploads.
	MaxUploadBytes int64
	// SessionTTL bounds how long an uploaded template stays editable.
	SessionTTL time.Duration
	// ProfilePath optionally points at a YAML naming conventions profile.
	ProfilePath string
}

const (
	defaultAddr           = ":8080"
	defaultMaxUploadBytes = 10 << 20
	defaultSessionTTL     = 30 * time.Minute
)

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; missing files are not an
// error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:           defaultAddr,
		MaxUploadBytes: defaultMaxUploadBytes,
		SessionTTL:     defaultSessionTTL,
	}

	if addr := os.Getenv("DOCUMINT_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if raw := os.Getenv("DOCUMINT_MAX_UPLOAD_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("server: invalid DOCUMINT_MAX_UPLOAD_BYTES %q", raw)
		}
		cfg.MaxUploadBytes = n
	}
	if raw := os.Getenv("DOCUMINT_SESSION_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("server: invalid DOCUMINT_SESSION_TTL %q", raw)
		}
		cfg.SessionTTL = d
	}
	cfg.ProfilePath = os.Getenv("DOCUMINT_PROFILE")

	return cfg, nil
}

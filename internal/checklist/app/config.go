package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries all runtime settings for the checklist service. Values come
// from the environment, with a .env file loaded first when present.
type Config struct {
	// HTTP
	Port string
	Env  string

	// Logging
	LogLevel  string
	LogFormat string

	// Storage
	DatabaseFile string

	// Secrets
	SessionSecretFile string
	PepperFile        string
	SessionTTL        time.Duration

	// Admin identity. Both values must be set for the admin login to be
	// enabled; otherwise it is disabled and a warning is logged at boot.
	AdminUsername string
	AdminPassword string

	// Fleet roster
	VanNumbers []string

	ShutdownGracePeriod time.Duration
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port: getEnvOrDefault("FLEETCHECK_PORT", "8080"),
		Env:  getEnvOrDefault("FLEETCHECK_ENV", "development"),

		LogLevel:  getEnvOrDefault("FLEETCHECK_LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("FLEETCHECK_LOG_FORMAT", "json"),

		DatabaseFile: getEnvOrDefault("FLEETCHECK_DATABASE_FILE", "fleetcheck.db"),

		SessionSecretFile: getEnvOrDefault("FLEETCHECK_SESSION_SECRET_FILE", "session_secret.key"),
		PepperFile:        getEnvOrDefault("FLEETCHECK_PEPPER_FILE", "pepper.key"),

		AdminUsername: os.Getenv("FLEETCHECK_ADMIN_USERNAME"),
		AdminPassword: os.Getenv("FLEETCHECK_ADMIN_PASSWORD"),

		VanNumbers: splitList(getEnvOrDefault("FLEETCHECK_VAN_NUMBERS", defaultVanNumbers)),
	}

	var err error
	cfg.SessionTTL, err = getEnvDuration("FLEETCHECK_SESSION_TTL", 12*time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg.ShutdownGracePeriod, err = getEnvDuration("FLEETCHECK_SHUTDOWN_GRACE_PERIOD", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	if len(cfg.VanNumbers) == 0 {
		return Config{}, fmt.Errorf("FLEETCHECK_VAN_NUMBERS resolves to an empty roster")
	}

	return cfg, nil
}

// AdminEnabled reports whether the admin identity is usable.
func (c Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// defaultVanNumbers mirrors the fleet roster the service launched with:
// a handful of legacy unit numbers plus the 179..240 block. Units 197 and
// 216 were retired and must not be offered on the form.
var defaultVanNumbers = func() string {
	nums := []string{"131", "138", "156", "159", "166", "169", "172", "174", "175", "176", "177"}
	for n := 179; n <= 240; n++ {
		if n == 197 || n == 216 {
			continue
		}
		nums = append(nums, fmt.Sprintf("%d", n))
	}
	return strings.Join(nums, ",")
}()

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

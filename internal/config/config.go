package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	PublicBaseURL string

	// DATABASE_URL is either a path to a local SQLite file or a
	// libsql://... URL for a hosted Turso instance.
	DatabaseURL       string
	DatabaseAuthToken string

	// Admin session tokens.
	AdminJWTSecret string
	AdminTokenTTL  time.Duration

	CORSAllowedOrigins []string

	// SendGrid email configuration for the contact relay.
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Slot generation defaults (overridable per run via CLI flags).
	SlotHorizonDays  int
	SlotDayStart     string
	SlotDayEnd       string
	SlotDurationMins int
	SlotSkipWeekends bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),

		DatabaseURL:       getEnv("DATABASE_URL", "data/neillbeauty.sqlite"),
		DatabaseAuthToken: getEnv("DATABASE_AUTH_TOKEN", ""),

		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		AdminTokenTTL:  getEnvAsDuration("ADMIN_TOKEN_TTL", time.Hour),

		CORSAllowedOrigins: splitEnvList("CORS_ALLOWED_ORIGINS"),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Neill Beauty"),

		SlotHorizonDays:  getEnvAsInt("SLOT_HORIZON_DAYS", 30),
		SlotDayStart:     getEnv("SLOT_DAY_START", "09:00"),
		SlotDayEnd:       getEnv("SLOT_DAY_END", "17:00"),
		SlotDurationMins: getEnvAsInt("SLOT_DURATION_MINS", 30),
		SlotSkipWeekends: getEnvAsBool("SLOT_SKIP_WEEKENDS", true),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitEnvList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

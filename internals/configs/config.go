package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultSheetURL       = "https://sheetdb.io/api/v1/926p9paa5g7jl"
	DefaultMapsSearchBase = "https://www.google.com/maps/search/"
)

// Config menampung seluruh konfigurasi runtime aplikasi.
type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	SheetURL     string
	SheetTimeout time.Duration

	MapsSearchBase string

	SessionIdleTTL     time.Duration
	SessionReaperCron  string
	SessionCookieName  string
	SessionCookieHTTPS bool

	CorsOrigins []string

	// EnvSource: "dotenv", "system", atau "railway"
	EnvSource string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv(files ...string) Config {
	source := "railway"
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(files...); err != nil {
			source = "system"
		} else {
			source = "dotenv"
		}
	}

	return Config{
		AppEnv:             GetEnv("APP_ENV", "production"),
		Port:               GetEnv("PORT", "3000"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		SheetURL:           GetEnv("SHEETDB_URL", DefaultSheetURL),
		SheetTimeout:       GetEnvDuration("SHEETDB_TIMEOUT", 10*time.Second),
		MapsSearchBase:     GetEnv("MAPS_SEARCH_BASE", DefaultMapsSearchBase),
		SessionIdleTTL:     GetEnvDuration("SESSION_IDLE_TTL", 30*time.Minute),
		SessionReaperCron:  GetEnv("SESSION_REAPER_CRON", "@every 5m"),
		SessionCookieName:  GetEnv("SESSION_COOKIE_NAME", "kajian_session"),
		SessionCookieHTTPS: GetEnvBool("SESSION_COOKIE_SECURE", false),
		CorsOrigins:        splitList(GetEnv("CORS_ORIGINS", "http://localhost:3000")),
		EnvSource:          source,
	}
}

// IsDevelopment true kalau APP_ENV=development / dev / local.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.AppEnv) {
	case "development", "dev", "local":
		return true
	}
	return false
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	// angka polos dianggap detik
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	default:
		return false
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

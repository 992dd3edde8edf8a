package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration, loaded from the
// environment (optionally seeded from a .env file).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Printer  PrinterConfig
	Org      OrgConfig
	HTTP     HTTPConfig
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Port string
	Env  string // "development" or "production"
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	Path   string // sqlite file path, ":memory:" allowed
	DSN    string // postgres connection string
}

// PrinterConfig selects the receipt output path.
type PrinterConfig struct {
	Mode   string // "device" or "spooler"
	Device string // device file path for device mode
	Queue  string // queue name for spooler mode
}

// OrgConfig holds cooperative-specific settings.
type OrgConfig struct {
	Name       string
	Timezone   string
	DailyQuota int // max bags per farmer per civil day
}

// HTTPConfig holds middleware settings.
type HTTPConfig struct {
	RateLimitRPS float64
	CORSOrigins  []string
}

// Load reads configuration from the environment. A missing .env file
// is not an error; explicit environment variables always win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			Path:   getEnv("DB_PATH", "pacs.db"),
			DSN:    os.Getenv("DB_DSN"),
		},
		Printer: PrinterConfig{
			Mode:   getEnv("PRINTER_MODE", "device"),
			Device: getEnv("PRINTER_DEVICE", "/dev/usb/lp0"),
			Queue:  os.Getenv("PRINTER_QUEUE"),
		},
		Org: OrgConfig{
			Name:       getEnv("ORG_NAME", "PACS-AIZA"),
			Timezone:   getEnv("ORG_TIMEZONE", "Asia/Kolkata"),
			DailyQuota: getEnvInt("DAILY_BAG_QUOTA", 5),
		},
		HTTP: HTTPConfig{
			RateLimitRPS: getEnvFloat("RATE_LIMIT_RPS", 20),
			CORSOrigins:  splitOrigins(getEnv("CORS_ORIGINS", "*")),
		},
	}

	if cfg.Database.Driver == "postgres" && cfg.Database.DSN == "" {
		return nil, fmt.Errorf("config: DB_DSN is required when DB_DRIVER=postgres")
	}
	return cfg, nil
}

// Location resolves the organization timezone. An unknown zone name
// falls back to IST rather than failing startup, since receipt
// timestamps must keep flowing at the counter.
func (o OrgConfig) Location() *time.Location {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.FixedZone("IST", int(5.5*3600))
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultToastDelay = 5 * time.Second
	defaultTheme      = "classic"
)

// Config is resolved once at startup: .env, then the process environment,
// then command-line flags (applied by the caller).
type Config struct {
	CatalogPath string
	CheckoutURL string
	Theme       string
	ToastDelay  time.Duration
	LogFile     string
	Verbose     bool

	// DotEnvLoaded reports whether a .env file was found.
	DotEnvLoaded bool
}

// Load reads the optional dotenv files (".env" when none are given) and
// the BASKET_* environment variables.
func Load(dotenv ...string) (*Config, error) {
	cfg := &Config{}
	if err := godotenv.Load(dotenv...); err == nil {
		cfg.DotEnvLoaded = true
	} else if len(dotenv) > 0 || !os.IsNotExist(err) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	cfg.CatalogPath = getEnv("BASKET_CATALOG", "")
	cfg.CheckoutURL = getEnv("BASKET_CHECKOUT_URL", "")
	cfg.Theme = getEnv("BASKET_THEME", defaultTheme)
	cfg.LogFile = getEnv("BASKET_LOG_FILE", "")

	cfg.ToastDelay = defaultToastDelay
	if v := getEnv("BASKET_TOAST_SECONDS", ""); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil || secs < 0 {
			return nil, fmt.Errorf("BASKET_TOAST_SECONDS: not a non-negative number: %q", v)
		}
		cfg.ToastDelay = time.Duration(secs * float64(time.Second))
	}
	if v := getEnv("BASKET_VERBOSE", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("BASKET_VERBOSE: %w", err)
		}
		cfg.Verbose = b
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	AuthSecret string `env:"AUTH_SECRET"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	LogLevel    string `env:"LOG_LEVEL"`

	// Client-side settings
	ServerURL      string `env:"-"`
	ClientDBPath   string `env:"CLIENT_DB_PATH"` // каталог профилей; пусто - пользовательский конфиг
	Profile        string `env:"PROFILE"`
	MasterPassword string `env:"SEKKRIT_MASTER_PASSWORD"` // не логировать
	Version        bool   `env:"-"`                       // show client version and exit (flag only)
}

const (
	DefaultAuthSecret = "dev-secret-key"
	DefaultBaseURL    = "localhost:8081"
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the Sekkrit server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	// Client flags
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "directory with client profile databases")
	flag.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile name (default: last used)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые значения и вычисляет ServerURL.
func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = DefaultAuthSecret
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
}

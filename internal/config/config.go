// Package config loads process configuration from the environment into one
// explicit struct that is constructed once at startup and injected everywhere.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
)

// Config holds every knob the process needs. No component reads the
// environment on its own; cmd/api calls Load and passes the result down.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  S3Config
	Google   GoogleConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port         int
	AllowOrigins string
}

// DatabaseConfig holds the Postgres connection parameters. When UseConnStr is
// set the raw connection string wins over the individual fields.
type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	ConnStr    string
	UseConnStr bool
}

// DSN builds the connection string for gorm.
func (d *DatabaseConfig) DSN() (string, error) {
	if d.UseConnStr {
		if d.ConnStr == "" {
			return "", fmt.Errorf("DB_CONNECTION_STR is empty")
		}
		return d.ConnStr, nil
	}
	if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.DBName == "" {
		return "", fmt.Errorf("database configuration is incomplete")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.DBName), nil
}

// S3Config holds the object store credentials and target bucket. Endpoint and
// SSLDisabled support S3-compatible stores such as minio in development.
type S3Config struct {
	Region      string
	AccessKey   string
	SecretKey   string
	Bucket      string
	Endpoint    string
	SSLDisabled bool
	HTTPTimeout time.Duration
}

// GoogleConfig holds the OAuth2 client settings. AuthURL and TokenURL are
// overridable so tests can point the flow at a stub provider; empty values
// fall back to Google's published endpoints.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	HTTPTimeout  time.Duration
}

const (
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	defaultHTTPTimeout = 10 * time.Second
)

// Load reads the configuration from environment variables. The .env file, if
// present, has already been merged in by the godotenv autoload import.
func Load() (*Config, error) {
	port, err := strconv.Atoi(envOr("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("PORT is not a number: %w", err)
	}

	useConnStr := false
	if v := os.Getenv("USE_CONNECTION_STR"); v != "" {
		useConnStr, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("USE_CONNECTION_STR is invalid: %w", err)
		}
	}

	sslDisabled := false
	if v := os.Getenv("S3_DISABLE_SSL"); v != "" {
		sslDisabled, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("S3_DISABLE_SSL is invalid: %w", err)
		}
	}

	timeout := defaultHTTPTimeout
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS is invalid: %w", err)
		}
		timeout = time.Duration(secs) * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         port,
			AllowOrigins: os.Getenv("ALLOW_ORIGIN"),
		},
		Database: DatabaseConfig{
			Host:       os.Getenv("DB_HOST"),
			Port:       os.Getenv("DB_PORT"),
			User:       os.Getenv("DB_USERNAME"),
			Password:   os.Getenv("DB_PASSWORD"),
			DBName:     os.Getenv("DB_DATABASE"),
			ConnStr:    os.Getenv("DB_CONNECTION_STR"),
			UseConnStr: useConnStr,
		},
		Storage: S3Config{
			Region:      os.Getenv("AWS_REGION"),
			AccessKey:   os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Bucket:      os.Getenv("S3_BUCKET"),
			Endpoint:    os.Getenv("S3_ENDPOINT"),
			SSLDisabled: sslDisabled,
			HTTPTimeout: timeout,
		},
		Google: GoogleConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			AuthURL:     os.Getenv("GOOGLE_AUTH_URL"),
			TokenURL:    os.Getenv("GOOGLE_TOKEN_URL"),
			UserInfoURL: envOr("GOOGLE_USERINFO_URL", defaultUserInfoURL),
			HTTPTimeout: timeout,
		},
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minJWTLength = 32
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
	SiteName       string      `mapstructure:"SITE_NAME"`
	SitePhone      string      `mapstructure:"SITE_PHONE"`
}

// DatabaseConfig holds PostgreSQL connection details.
type DatabaseConfig struct {
	Host           string `mapstructure:"HOST"`
	Port           int    `mapstructure:"PORT"`
	User           string `mapstructure:"USER"`
	Password       string `mapstructure:"PASSWORD"`
	Name           string `mapstructure:"NAME"`
	SSLMode        string `mapstructure:"SSL_MODE"`
	MaxConnections int    `mapstructure:"MAX_CONNECTIONS"`
}

// URL returns a postgres:// connection URL suitable for golang-migrate and
// pgxpool.ParseConfig.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details for the rate-limit store.
type RedisConfig struct {
	Address  string `mapstructure:"ADDRESS"`
	Password string `mapstructure:"PASSWORD"`
	DB       int    `mapstructure:"DB"`
}

// EmailConfig holds configuration for outbound notification email.
type EmailConfig struct {
	FromAddress  string `mapstructure:"FROM_ADDRESS"`
	FromName     string `mapstructure:"FROM_NAME"`
	AdminAddress string `mapstructure:"ADMIN_ADDRESS"`
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	// SendTimeoutSeconds bounds each notification send so a slow transport
	// cannot stall the response.
	SendTimeoutSeconds int `mapstructure:"SEND_TIMEOUT_SECONDS"`
}

// RateLimitConfig holds the per-form submission limits.
type RateLimitConfig struct {
	// Contact form: max submissions per IP within ContactWindowSeconds.
	ContactLimit         int `mapstructure:"CONTACT_LIMIT"`
	ContactWindowSeconds int `mapstructure:"CONTACT_WINDOW_SECONDS"`
	// Dealer/distributor form: max submissions per IP within DealerWindowSeconds.
	DealerLimit         int `mapstructure:"DEALER_LIMIT"`
	DealerWindowSeconds int `mapstructure:"DEALER_WINDOW_SECONDS"`
}

// AuthConfig holds admin session token settings.
type AuthConfig struct {
	JWTSecretKey    string `mapstructure:"JWT_SECRET_KEY"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`
}

// UploadConfig holds product image upload settings.
type UploadConfig struct {
	S3Bucket string `mapstructure:"S3_BUCKET"`
	S3Region string `mapstructure:"S3_REGION"`
	// S3Endpoint plus static credentials switch uploads to an S3-compatible
	// provider (e.g. Cloudflare R2). Left empty, the AWS default chain is used.
	S3Endpoint     string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey    string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey    string `mapstructure:"S3_SECRET_KEY"`
	PublicBaseURL  string `mapstructure:"PUBLIC_BASE_URL"`
	MaxSizeBytes   int64  `mapstructure:"MAX_SIZE_BYTES"`
	ThumbnailWidth int    `mapstructure:"THUMBNAIL_WIDTH"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server    ServerConfig    `mapstructure:"SERVER"`
	Database  DatabaseConfig  `mapstructure:"DATABASE"`
	Redis     RedisConfig     `mapstructure:"REDIS"`
	Email     EmailConfig     `mapstructure:"EMAIL"`
	RateLimit RateLimitConfig `mapstructure:"RATE_LIMIT"`
	Auth      AuthConfig      `mapstructure:"AUTH"`
	Upload    UploadConfig    `mapstructure:"UPLOAD"`
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER.ENVIRONMENT", string(EnvDevelopment))
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.SITE_NAME", "Akshayraj Industries")
	v.SetDefault("SERVER.SITE_PHONE", "+91-9877421070")
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_CONNECTIONS", 10)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("EMAIL.FROM_NAME", "Akshayraj Industries")
	v.SetDefault("EMAIL.SEND_TIMEOUT_SECONDS", 10)
	// Legacy policy: contact 5/IP/hour, dealer 3/IP/day.
	v.SetDefault("RATE_LIMIT.CONTACT_LIMIT", 5)
	v.SetDefault("RATE_LIMIT.CONTACT_WINDOW_SECONDS", 3600)
	v.SetDefault("RATE_LIMIT.DEALER_LIMIT", 3)
	v.SetDefault("RATE_LIMIT.DEALER_WINDOW_SECONDS", 86400)
	v.SetDefault("AUTH.TOKEN_TTL_MINUTES", 60)
	v.SetDefault("UPLOAD.MAX_SIZE_BYTES", int64(5*1024*1024))
	v.SetDefault("UPLOAD.THUMBNAIL_WIDTH", 480)
}

// LoadConfig loads configuration from environment variables using Viper,
// applies defaults, unmarshals into Config, and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	bindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.SITE_NAME", "SITE_NAME"},
		{"SERVER.SITE_PHONE", "SITE_PHONE"},
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		{"DATABASE.MAX_CONNECTIONS", "DB_MAX_CONNECTIONS"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"EMAIL.FROM_ADDRESS", "EMAIL_FROM_ADDRESS"},
		{"EMAIL.FROM_NAME", "EMAIL_FROM_NAME"},
		{"EMAIL.ADMIN_ADDRESS", "ADMIN_EMAIL"},
		{"EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"EMAIL.SEND_TIMEOUT_SECONDS", "EMAIL_SEND_TIMEOUT_SECONDS"},
		{"RATE_LIMIT.CONTACT_LIMIT", "RATE_LIMIT_CONTACT_LIMIT"},
		{"RATE_LIMIT.CONTACT_WINDOW_SECONDS", "RATE_LIMIT_CONTACT_WINDOW_SECONDS"},
		{"RATE_LIMIT.DEALER_LIMIT", "RATE_LIMIT_DEALER_LIMIT"},
		{"RATE_LIMIT.DEALER_WINDOW_SECONDS", "RATE_LIMIT_DEALER_WINDOW_SECONDS"},
		{"AUTH.JWT_SECRET_KEY", "JWT_SECRET_KEY"},
		{"AUTH.TOKEN_TTL_MINUTES", "AUTH_TOKEN_TTL_MINUTES"},
		{"UPLOAD.S3_BUCKET", "UPLOAD_S3_BUCKET"},
		{"UPLOAD.S3_REGION", "UPLOAD_S3_REGION"},
		{"UPLOAD.S3_ENDPOINT", "UPLOAD_S3_ENDPOINT"},
		{"UPLOAD.S3_ACCESS_KEY", "UPLOAD_S3_ACCESS_KEY"},
		{"UPLOAD.S3_SECRET_KEY", "UPLOAD_S3_SECRET_KEY"},
		{"UPLOAD.PUBLIC_BASE_URL", "UPLOAD_PUBLIC_BASE_URL"},
		{"UPLOAD.MAX_SIZE_BYTES", "UPLOAD_MAX_SIZE_BYTES"},
		{"UPLOAD.THUMBNAIL_WIDTH", "UPLOAD_THUMBNAIL_WIDTH"},
	}
	if err := bindEnvVars(v, bindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if origins := v.GetString("SERVER.ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = splitAndTrim(origins)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log := logger.GetLogger()
	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"db_host", cfg.Database.Host,
		"redis", cfg.Redis.Address,
		"resend_key", logger.MaskSensitiveString(cfg.Email.ResendAPIKey, 3, 2),
	)

	return &cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *Config) validate() error {
	var problems []string

	if c.Database.User == "" || c.Database.Name == "" {
		problems = append(problems, "database user and name are required")
	}
	if c.IsProduction() {
		if len(c.Auth.JWTSecretKey) < minJWTLength {
			problems = append(problems, fmt.Sprintf("JWT secret must be at least %d characters in production", minJWTLength))
		}
		if c.Email.ResendAPIKey == "" {
			problems = append(problems, "RESEND_API_KEY is required in production")
		}
		if c.Email.AdminAddress == "" {
			problems = append(problems, "ADMIN_EMAIL is required in production")
		}
	}
	if c.RateLimit.ContactLimit <= 0 || c.RateLimit.DealerLimit <= 0 {
		problems = append(problems, "rate limits must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Label  LabelConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings for exported workbooks.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LabelConfig holds default label rendering settings applied to projects
// without explicit settings.
type LabelConfig struct {
	PrimaryFont   string `mapstructure:"primary_font"`
	SecondaryFont string `mapstructure:"secondary_font"`
}

// Load reads configuration from environment variables with the LABELMEDIX_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LABELMEDIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "labelmedix")
	v.SetDefault("db.password", "labelmedix_secret")
	v.SetDefault("db.name", "labelmedix_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "labelmedix")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "labelmedix-exports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Label defaults
	v.SetDefault("label.primary_font", "STHeiti")
	v.SetDefault("label.secondary_font", "Arial")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "LABELMEDIX_SERVER_PORT",
		"server.read_timeout":  "LABELMEDIX_SERVER_READ_TIMEOUT",
		"server.write_timeout": "LABELMEDIX_SERVER_WRITE_TIMEOUT",
		"server.environment":   "LABELMEDIX_SERVER_ENVIRONMENT",
		"db.host":              "LABELMEDIX_DB_HOST",
		"db.port":              "LABELMEDIX_DB_PORT",
		"db.user":              "LABELMEDIX_DB_USER",
		"db.password":          "LABELMEDIX_DB_PASSWORD",
		"db.name":              "LABELMEDIX_DB_NAME",
		"db.sslmode":           "LABELMEDIX_DB_SSLMODE",
		"db.max_open":          "LABELMEDIX_DB_MAX_OPEN",
		"db.max_idle":          "LABELMEDIX_DB_MAX_IDLE",
		"jwt.secret":           "LABELMEDIX_JWT_SECRET",
		"jwt.access_expiry":    "LABELMEDIX_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "LABELMEDIX_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "LABELMEDIX_JWT_ISSUER",
		"s3.region":            "LABELMEDIX_S3_REGION",
		"s3.bucket":            "LABELMEDIX_S3_BUCKET",
		"s3.endpoint":          "LABELMEDIX_S3_ENDPOINT",
		"s3.access_key":        "LABELMEDIX_S3_ACCESS_KEY",
		"s3.secret_key":        "LABELMEDIX_S3_SECRET_KEY",
		"s3.presign_expiry":    "LABELMEDIX_S3_PRESIGN_EXPIRY",
		"log.level":            "LABELMEDIX_LOG_LEVEL",
		"log.format":           "LABELMEDIX_LOG_FORMAT",
		"cors.allowed_origins": "LABELMEDIX_CORS_ALLOWED_ORIGINS",
		"label.primary_font":   "LABELMEDIX_LABEL_PRIMARY_FONT",
		"label.secondary_font": "LABELMEDIX_LABEL_SECONDARY_FONT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LABELMEDIX_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LABELMEDIX_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Label = LabelConfig{
		PrimaryFont:   v.GetString("label.primary_font"),
		SecondaryFont: v.GetString("label.secondary_font"),
	}

	return cfg, nil
}

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
	Email  EmailConfig
	Push   PushConfig
	Jobs   JobsConfig
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

// S3Config holds AWS S3 settings for attachment uploads.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
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

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider     string `mapstructure:"provider"`
	Region       string `mapstructure:"region"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	AdminAddress string `mapstructure:"admin_address"`
	FrontendURL  string `mapstructure:"frontend_url"`
}

// PushConfig holds web-push VAPID settings. One keypair per deployment,
// applied once at process start.
type PushConfig struct {
	VAPIDPublicKey  string `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string `mapstructure:"vapid_private_key"`
	Subscriber      string `mapstructure:"subscriber"`
	TTLSecs         int    `mapstructure:"ttl_secs"`
}

// JobsConfig holds background job schedules (cron expressions).
type JobsConfig struct {
	OverdueSweepSpec      string `mapstructure:"overdue_sweep_spec"`
	NotificationPurgeSpec string `mapstructure:"notification_purge_spec"`
}

// Load reads configuration from environment variables with the AGENCYHUB_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AGENCYHUB")
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
	v.SetDefault("db.user", "agencyhub")
	v.SetDefault("db.password", "agencyhub_secret")
	v.SetDefault("db.name", "agencyhub_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "agencyhub")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "agencyhub-attachments")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@agencyhub.dev")
	v.SetDefault("email.from_name", "AgencyHub")
	v.SetDefault("email.admin_address", "admin@agencyhub.dev")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Push defaults (keys intentionally empty; push is disabled without them)
	v.SetDefault("push.vapid_public_key", "")
	v.SetDefault("push.vapid_private_key", "")
	v.SetDefault("push.subscriber", "mailto:admin@agencyhub.dev")
	v.SetDefault("push.ttl_secs", 86400)

	// Job defaults
	v.SetDefault("jobs.overdue_sweep_spec", "@hourly")
	v.SetDefault("jobs.notification_purge_spec", "@daily")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "AGENCYHUB_SERVER_PORT",
		"server.read_timeout":          "AGENCYHUB_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "AGENCYHUB_SERVER_WRITE_TIMEOUT",
		"server.environment":           "AGENCYHUB_SERVER_ENVIRONMENT",
		"db.host":                      "AGENCYHUB_DB_HOST",
		"db.port":                      "AGENCYHUB_DB_PORT",
		"db.user":                      "AGENCYHUB_DB_USER",
		"db.password":                  "AGENCYHUB_DB_PASSWORD",
		"db.name":                      "AGENCYHUB_DB_NAME",
		"db.sslmode":                   "AGENCYHUB_DB_SSLMODE",
		"db.max_open":                  "AGENCYHUB_DB_MAX_OPEN",
		"db.max_idle":                  "AGENCYHUB_DB_MAX_IDLE",
		"jwt.secret":                   "AGENCYHUB_JWT_SECRET",
		"jwt.access_expiry":            "AGENCYHUB_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":           "AGENCYHUB_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                   "AGENCYHUB_JWT_ISSUER",
		"s3.region":                    "AGENCYHUB_S3_REGION",
		"s3.bucket":                    "AGENCYHUB_S3_BUCKET",
		"s3.endpoint":                  "AGENCYHUB_S3_ENDPOINT",
		"s3.access_key":                "AGENCYHUB_S3_ACCESS_KEY",
		"s3.secret_key":                "AGENCYHUB_S3_SECRET_KEY",
		"s3.max_file_size_mb":          "AGENCYHUB_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":            "AGENCYHUB_S3_PRESIGN_EXPIRY",
		"log.level":                    "AGENCYHUB_LOG_LEVEL",
		"log.format":                   "AGENCYHUB_LOG_FORMAT",
		"cors.allowed_origins":         "AGENCYHUB_CORS_ALLOWED_ORIGINS",
		"email.provider":               "AGENCYHUB_EMAIL_PROVIDER",
		"email.region":                 "AGENCYHUB_EMAIL_REGION",
		"email.from_address":           "AGENCYHUB_EMAIL_FROM_ADDRESS",
		"email.from_name":              "AGENCYHUB_EMAIL_FROM_NAME",
		"email.admin_address":          "AGENCYHUB_EMAIL_ADMIN_ADDRESS",
		"email.frontend_url":           "AGENCYHUB_EMAIL_FRONTEND_URL",
		"push.vapid_public_key":        "AGENCYHUB_PUSH_VAPID_PUBLIC_KEY",
		"push.vapid_private_key":       "AGENCYHUB_PUSH_VAPID_PRIVATE_KEY",
		"push.subscriber":              "AGENCYHUB_PUSH_SUBSCRIBER",
		"push.ttl_secs":                "AGENCYHUB_PUSH_TTL_SECS",
		"jobs.overdue_sweep_spec":      "AGENCYHUB_JOBS_OVERDUE_SWEEP_SPEC",
		"jobs.notification_purge_spec": "AGENCYHUB_JOBS_NOTIFICATION_PURGE_SPEC",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if AGENCYHUB_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("AGENCYHUB_SERVER_PORT") == "" {
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
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
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

	cfg.Email = EmailConfig{
		Provider:     v.GetString("email.provider"),
		Region:       v.GetString("email.region"),
		FromAddress:  v.GetString("email.from_address"),
		FromName:     v.GetString("email.from_name"),
		AdminAddress: v.GetString("email.admin_address"),
		FrontendURL:  v.GetString("email.frontend_url"),
	}
	cfg.Push = PushConfig{
		VAPIDPublicKey:  v.GetString("push.vapid_public_key"),
		VAPIDPrivateKey: v.GetString("push.vapid_private_key"),
		Subscriber:      v.GetString("push.subscriber"),
		TTLSecs:         v.GetInt("push.ttl_secs"),
	}
	cfg.Jobs = JobsConfig{
		OverdueSweepSpec:      v.GetString("jobs.overdue_sweep_spec"),
		NotificationPurgeSpec: v.GetString("jobs.notification_purge_spec"),
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Backend    BackendConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Attendance AttendanceConfig
	Push       PushConfig
	RateLimit  RateLimitConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Version        string
	AllowedOrigins []string
	TrustProxy     bool
}

// BackendConfig points at the face-recognition backend REST API.
type BackendConfig struct {
	BaseURL        string
	Timeout        time.Duration
	DeviceID       string
	DevicePassword string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AdminConfig is the single dashboard administrator account.
type AdminConfig struct {
	Username     string
	PasswordHash string
}

// AttendanceConfig holds the attendance policy and where events are read from.
type AttendanceConfig struct {
	Source          string // "api" or "database"
	Timezone        string
	WorkStart       string // HH:MM
	ReportWorkStart string // HH:MM
	WorkEnd         string // HH:MM
}

type PushConfig struct {
	Interval time.Duration
}

type RateLimitConfig struct {
	LoginPerMinute int
	LoginBurst     int
}

const (
	SourceAPI      = "api"
	SourceDatabase = "database"
)

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	trustProxy, err := strconv.ParseBool(getEnv("TRUST_PROXY", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRUST_PROXY: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		TrustProxy:     trustProxy,
	}

	// Recognition backend
	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	config.Backend = BackendConfig{
		BaseURL:        strings.TrimRight(getEnv("BACKEND_API_URL", "http://localhost:8000/api/v1"), "/"),
		Timeout:        backendTimeout,
		DeviceID:       getEnv("BACKEND_DEVICE_ID", ""),
		DevicePassword: getEnv("BACKEND_DEVICE_PASSWORD", ""),
	}

	// Database configuration (only used when ATTENDANCE_SOURCE=database)
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "face_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Admin = AdminConfig{
		Username:     getEnv("ADMIN_USERNAME", "admin"),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	config.Attendance = AttendanceConfig{
		Source:          getEnv("ATTENDANCE_SOURCE", SourceAPI),
		Timezone:        getEnv("ATTENDANCE_TIMEZONE", "Asia/Ho_Chi_Minh"),
		WorkStart:       getEnv("ATTENDANCE_WORK_START", "08:00"),
		ReportWorkStart: getEnv("REPORT_WORK_START", "08:30"),
		WorkEnd:         getEnv("ATTENDANCE_WORK_END", "18:00"),
	}

	pushInterval, err := time.ParseDuration(getEnv("DASHBOARD_PUSH_INTERVAL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_PUSH_INTERVAL: %w", err)
	}
	config.Push = PushConfig{Interval: pushInterval}

	loginPerMinute, err := strconv.Atoi(getEnv("LOGIN_RATE_PER_MINUTE", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_PER_MINUTE: %w", err)
	}
	loginBurst, err := strconv.Atoi(getEnv("LOGIN_RATE_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_BURST: %w", err)
	}
	config.RateLimit = RateLimitConfig{
		LoginPerMinute: loginPerMinute,
		LoginBurst:     loginBurst,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_API_URL is required")
	}

	switch c.Attendance.Source {
	case SourceAPI:
	case SourceDatabase:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when ATTENDANCE_SOURCE=database")
		}
	default:
		return fmt.Errorf("unsupported ATTENDANCE_SOURCE: %q", c.Attendance.Source)
	}

	if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_TIMEZONE: %w", err)
	}
	for name, value := range map[string]string{
		"ATTENDANCE_WORK_START": c.Attendance.WorkStart,
		"REPORT_WORK_START":     c.Attendance.ReportWorkStart,
		"ATTENDANCE_WORK_END":   c.Attendance.WorkEnd,
	} {
		if _, err := time.Parse("15:04", value); err != nil {
			return fmt.Errorf("%s must be in HH:MM format", name)
		}
	}

	if c.Push.Interval < 0 {
		return fmt.Errorf("DASHBOARD_PUSH_INTERVAL must not be negative")
	}
	if c.RateLimit.LoginPerMinute <= 0 || c.RateLimit.LoginBurst <= 0 {
		return fmt.Errorf("login rate limit values must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string with credentials
// escaped
func (c *Config) DatabaseURL() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": []string{c.Database.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the reconciliation engine knobs. The timezone is
// the single canonical zone every punch instant is converted into.
type AttendanceConfig struct {
	Timezone               string
	WorkdayStart           string // "15:04" local
	WorkdayEnd             string
	LateGraceMinutes       int
	EarlyLeaveGraceMinutes int
}

type PayrollConfig struct {
	WorkingDaysPerMonth int
	DayThreshold        float64
	AmountThreshold     int64
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workforce"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Attendance engine configuration
	lateGrace, err := strconv.Atoi(getEnv("LATE_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_GRACE_MINUTES: %w", err)
	}
	earlyGrace, err := strconv.Atoi(getEnv("EARLY_LEAVE_GRACE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid EARLY_LEAVE_GRACE_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		Timezone:               getEnv("ATTENDANCE_TIMEZONE", "Asia/Kolkata"),
		WorkdayStart:           getEnv("WORKDAY_START", "09:00"),
		WorkdayEnd:             getEnv("WORKDAY_END", "18:00"),
		LateGraceMinutes:       lateGrace,
		EarlyLeaveGraceMinutes: earlyGrace,
	}

	// Payroll match configuration
	workingDays, err := strconv.Atoi(getEnv("WORKING_DAYS_PER_MONTH", "26"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKING_DAYS_PER_MONTH: %w", err)
	}
	amountThreshold, err := strconv.ParseInt(getEnv("MATCH_AMOUNT_THRESHOLD", "1000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_AMOUNT_THRESHOLD: %w", err)
	}

	config.Payroll = PayrollConfig{
		WorkingDaysPerMonth: workingDays,
		DayThreshold:        1,
		AmountThreshold:     amountThreshold,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Attendance.Timezone == "" {
		return fmt.Errorf("ATTENDANCE_TIMEZONE is required")
	}
	if c.Payroll.WorkingDaysPerMonth <= 0 {
		return fmt.Errorf("WORKING_DAYS_PER_MONTH must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

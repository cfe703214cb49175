package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	SMTP    SMTPConfig
	Monitor MonitorConfig
}

type AppConfig struct {
	Port               string `validate:"required,numeric"`
	Environment        string `validate:"required"`
	LogFilePath        string `validate:"required"`
	CorsAllowedOrigins string
	OtelEnabled        bool
	OtelEndpoint       string
}

type StorageConfig struct {
	Driver  string `validate:"oneof=file postgres"`
	LogsDir string `validate:"required_if=Driver file"`
	DSN     string `validate:"required_if=Driver postgres"`
}

type SMTPConfig struct {
	Service    string // "gmail", "outlook", "yahoo"; ignored when Host is set
	Host       string
	Port       int    `validate:"gte=0,lte=65535"`
	Email      string `validate:"omitempty,email"`
	Password   string
	SenderName string
}

type MonitorConfig struct {
	URL                 string   `validate:"required,url"`
	Schedule            string   `validate:"required"`
	TimeoutSeconds      int      `validate:"gte=0"`
	ReportRecipients    []string `validate:"dive,email"`
	SendReportOnStartup bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Storage: StorageConfig{
			Driver:  getEnv("LOG_DATASOURCE", "file"),
			LogsDir: getEnv("LOGS_DIR", "logs"),
			DSN:     getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Service:    getEnv("MAILER_SERVICE", "gmail"),
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("MAILER_EMAIL", ""),
			Password:   getEnv("MAILER_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "NOC Monitor"),
		},
		Monitor: MonitorConfig{
			URL:                 getEnv("MONITOR_URL", "https://google.com"),
			Schedule:            getEnv("MONITOR_SCHEDULE", "*/5 * * * * *"),
			TimeoutSeconds:      getEnvAsInt("CHECK_TIMEOUT_SECONDS", 0),
			ReportRecipients:    getEnvAsList("REPORT_RECIPIENTS"),
			SendReportOnStartup: getEnvAsBool("SEND_REPORT_ON_STARTUP", false),
		},
	}
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

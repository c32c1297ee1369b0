package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Schedule ScheduleConfig
	WhatsApp WhatsAppConfig
	Admin    AdminConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds admin session token configuration
type JWTConfig struct {
	Secret     string
	TokenHours int
}

// ScheduleConfig describes the clinic's booking grid. The grid is
// identical for every calendar day; only the closed weekday and the
// booking window vary the set of bookable slots.
type ScheduleConfig struct {
	FirstSlotHour int
	LastSlotHour  int
	SlotMinute    int
	ClosedWeekday time.Weekday
	BookingDays   int
}

// WhatsAppConfig holds WhatsApp Cloud API configuration
type WhatsAppConfig struct {
	Token         string
	PhoneNumberID string
	APIBase       string
	TemplateName  string
	CountryPrefix string
	ReminderCron  string
	// Required makes a failed confirmation send fail the booking
	// request instead of being logged and swallowed.
	Required bool
}

// AdminConfig holds the seeded admin account credentials
type AdminConfig struct {
	SeedName     string
	SeedEmail    string
	SeedPassword string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "5000"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Schedule: loadScheduleConfig(),
		WhatsApp: loadWhatsAppConfig(),
		Admin:    loadAdminConfig(),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "evercare_clinic"),
	}
}

// loadJWTConfig loads admin token config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	// Admin dashboard session is 12 hours
	tokenHours, _ := strconv.Atoi(getEnv("TOKEN_HOURS", "12"))

	return JWTConfig{
		Secret:     getEnv(prefix+"JWT_SECRET", "default_secret"),
		TokenHours: tokenHours,
	}
}

// loadScheduleConfig loads the clinic booking grid configuration.
// Defaults: eight slots per day (03:30 .. 10:30), closed on Fridays,
// bookable up to 30 days ahead.
func loadScheduleConfig() ScheduleConfig {
	firstHour, _ := strconv.Atoi(getEnv("CLINIC_FIRST_SLOT_HOUR", "3"))
	lastHour, _ := strconv.Atoi(getEnv("CLINIC_LAST_SLOT_HOUR", "10"))
	slotMinute, _ := strconv.Atoi(getEnv("CLINIC_SLOT_MINUTE", "30"))
	closedDay, _ := strconv.Atoi(getEnv("CLINIC_CLOSED_WEEKDAY", "5"))
	bookingDays, _ := strconv.Atoi(getEnv("CLINIC_BOOKING_DAYS", "30"))

	return ScheduleConfig{
		FirstSlotHour: firstHour,
		LastSlotHour:  lastHour,
		SlotMinute:    slotMinute,
		ClosedWeekday: time.Weekday(closedDay),
		BookingDays:   bookingDays,
	}
}

// loadWhatsAppConfig loads WhatsApp Cloud API config
func loadWhatsAppConfig() WhatsAppConfig {
	required, _ := strconv.ParseBool(getEnv("WHATSAPP_REQUIRED", "false"))

	return WhatsAppConfig{
		Token:         getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
		APIBase:       getEnv("WHATSAPP_API_BASE", "https://graph.facebook.com/v18.0"),
		TemplateName:  getEnv("WHATSAPP_TEMPLATE_NAME", "hello_world"),
		CountryPrefix: getEnv("WHATSAPP_COUNTRY_PREFIX", "2"),
		ReminderCron:  getEnv("REMINDER_CRON", "30 8 * * *"),
		Required:      required,
	}
}

// loadAdminConfig loads the seeded admin account credentials
func loadAdminConfig() AdminConfig {
	return AdminConfig{
		SeedName:     getEnv("ADMIN_NAME", "Admin"),
		SeedEmail:    getEnv("ADMIN_EMAIL", ""),
		SeedPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://ever-care.com"
	}
	return origins
}

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

// Password hash schemes. SchemeSHA256 reproduces the legacy unsalted digest
// and exists only so already-stored hashes keep working; new deployments
// should stay on bcrypt.
const (
	SchemeBcrypt = "bcrypt"
	SchemeSHA256 = "sha256"
)

type Config struct {
	Port string

	DBConnectionString string

	JWTSecret    string
	JWTIssuer    string
	JWTAudience  string
	JWTExpiry    time.Duration
	JWTClockSkew time.Duration

	PasswordHashScheme string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBConnectionString: os.Getenv("DB_CONNECTION_STRING"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTIssuer:          getEnv("JWT_ISSUER", "PersonalFinanceAPI"),
		JWTAudience:        getEnv("JWT_AUDIENCE", "PersonalFinanceClient"),
		JWTExpiry:          time.Duration(getEnvInt("JWT_EXPIRY_MINUTES", 60)) * time.Minute,
		JWTClockSkew:       getEnvDuration("JWT_CLOCK_SKEW", 0),
		PasswordHashScheme: getEnv("PASSWORD_HASH_SCHEME", SchemeBcrypt),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBConnectionString == "" {
		errs = append(errs, "missing DB_CONNECTION_STRING")
	}
	if c.JWTSecret == "" {
		errs = append(errs, "missing JWT_SECRET")
	}
	if c.JWTExpiry <= 0 {
		errs = append(errs, "JWT_EXPIRY_MINUTES must be greater than zero")
	}
	if c.JWTClockSkew < 0 {
		errs = append(errs, "JWT_CLOCK_SKEW must not be negative")
	}
	if c.PasswordHashScheme != SchemeBcrypt && c.PasswordHashScheme != SchemeSHA256 {
		errs = append(errs, fmt.Sprintf("invalid PASSWORD_HASH_SCHEME '%s': must be '%s' or '%s'",
			c.PasswordHashScheme, SchemeBcrypt, SchemeSHA256))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: '%s', using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value for %s: '%s', using default %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

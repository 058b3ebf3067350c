package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// ConflictPolicyLastWins lets later rules overwrite earlier rules' field writes
	ConflictPolicyLastWins = "last-wins"
	// ConflictPolicyFirstMatch stops evaluating a transaction after its first matching rule
	ConflictPolicyFirstMatch = "first-match"

	// DefaultResultSampleLimit caps how many matched transactions a rule
	// application result carries back to the caller
	DefaultResultSampleLimit = 100
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Engine   EngineConfig
	Provider ProviderConfig
	Auth     AuthConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type CacheConfig struct {
	TransactionTTL time.Duration
}

type EngineConfig struct {
	ConflictPolicy    string
	ResultSampleLimit int
	WorkerCount       int
}

type ProviderConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     int
	EncryptionKey  []byte
}

type AuthConfig struct {
	JWTSecret     []byte
	Issuer        string
	TokenDuration time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "bankrules_user"),
			Password:        getEnv("DB_PASSWORD", "bankrules_password"),
			Name:            getEnv("DB_NAME", "bankrules_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Cache: CacheConfig{
			TransactionTTL: getDurationEnv("TRANSACTION_CACHE_TTL", 5*time.Minute),
		},
		Engine: EngineConfig{
			ConflictPolicy:    getEnv("ENGINE_CONFLICT_POLICY", ConflictPolicyLastWins),
			ResultSampleLimit: getIntEnv("ENGINE_RESULT_SAMPLE_LIMIT", DefaultResultSampleLimit),
			WorkerCount:       getIntEnv("ENGINE_WORKER_COUNT", 4),
		},
		Provider: ProviderConfig{
			BaseURL:        getEnv("PROVIDER_BASE_URL", "https://bankaccountdata.gocardless.com/api/v2"),
			RequestTimeout: getDurationEnv("PROVIDER_REQUEST_TIMEOUT", 30*time.Second),
			MaxRetries:     getIntEnv("PROVIDER_MAX_RETRIES", 5),
		},
		Auth: AuthConfig{
			Issuer:        getEnv("JWT_ISSUER", "bankrules-api"),
			TokenDuration: getDurationEnv("JWT_TOKEN_DURATION", 24*time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if !isValidConflictPolicy(config.Engine.ConflictPolicy) {
		log.Fatalf("Invalid ENGINE_CONFLICT_POLICY %q (must be %q or %q)",
			config.Engine.ConflictPolicy, ConflictPolicyLastWins, ConflictPolicyFirstMatch)
	}

	var jwtSecretErr error
	config.Auth.JWTSecret, jwtSecretErr = config.loadJWTSecret()
	if jwtSecretErr != nil {
		log.Fatal("Failed to load JWT secret:", jwtSecretErr)
	}

	var encryptionKeyErr error
	config.Provider.EncryptionKey, encryptionKeyErr = config.loadEncryptionKey()
	if encryptionKeyErr != nil {
		log.Fatal("Failed to load credential encryption key:", encryptionKeyErr)
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func isValidConflictPolicy(policy string) bool {
	return policy == ConflictPolicyLastWins || policy == ConflictPolicyFirstMatch
}

// loadJWTSecret loads the HMAC secret for JWT verification
// Priority order:
// 1. If JWT_SECRET env var is set, use it (works in all environments)
// 2. If production and env var missing, fail with error (production requires an explicit secret)
// 3. If development/testing and env var missing, generate a random secret (dev convenience)
func (c *Config) loadJWTSecret() ([]byte, error) {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret), nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set in production environments")
	}

	log.Println("Development environment: generating random JWT secret (consider setting JWT_SECRET env var to persist tokens across restarts)")
	return generateRandomKey(32)
}

// loadEncryptionKey loads the 32-byte key used to encrypt stored provider credentials
// Accepts a base64-encoded key via CREDENTIAL_ENCRYPTION_KEY; generates one outside production
func (c *Config) loadEncryptionKey() ([]byte, error) {
	if encoded := os.Getenv("CREDENTIAL_ENCRYPTION_KEY"); encoded != "" {
		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode CREDENTIAL_ENCRYPTION_KEY: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("CREDENTIAL_ENCRYPTION_KEY must decode to 32 bytes, got %d", len(key))
		}
		return key, nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("CREDENTIAL_ENCRYPTION_KEY environment variable must be set in production environments")
	}

	log.Println("Development environment: generating random credential encryption key (stored credentials will not survive restarts)")
	return generateRandomKey(32)
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

func generateRandomKey(size int) ([]byte, error) {
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}
	return key, nil
}

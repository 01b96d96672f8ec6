package config

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string

	// Server
	Port  string
	Debug bool

	// Groq / LLaMA upstream
	GroqAPIKeys     []string
	GroqModel       string
	GroqBaseURL     string
	CooldownSeconds int

	// Timeouts and limits
	LLMTimeoutSeconds  int
	HTTPTimeoutSeconds int
	MaxResumeSizeMB    int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	GoogleClientID string

	// Sessions
	SessionTTLHours int
	RedisAddr       string
	RedisPassword   string

	// Cloud Storage
	ResumeBucketName string

	// Per-IP rate limiting on LLM-backed routes
	RateLimitRequests      int
	RateLimitWindowSeconds int
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Groq upstream
		GroqAPIKeys:     loadGroqKeys(),
		GroqModel:       getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL:     getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		CooldownSeconds: getEnvInt("GROQ_COOLDOWN_SECONDS", 60),

		// Timeouts and limits
		LLMTimeoutSeconds:  getEnvInt("LLM_TIMEOUT_SECONDS", 60),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		MaxResumeSizeMB:    getEnvInt("MAX_RESUME_SIZE_MB", 10),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		// Sessions
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 4),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),

		// Cloud Storage
		ResumeBucketName: getEnv("RESUME_BUCKET_NAME", ""),

		// Rate limiting
		RateLimitRequests:      getEnvInt("RATE_LIMIT_REQUESTS", 5),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
	}

	return cfg
}

// loadGroqKeys collects upstream API keys from the environment and an optional
// keys file. Order is stable and duplicates are dropped, so the key pool sees
// a fixed, deduplicated credential list.
func loadGroqKeys() []string {
	var keys []string
	seen := make(map[string]bool)

	add := func(key string) {
		key = strings.TrimSpace(key)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		keys = append(keys, key)
	}

	// Primary key
	add(os.Getenv("GROQ_API_KEY"))

	// Additional keys: GROQ_API_KEY_2, GROQ_API_KEY_3, ...
	for i := 2; i <= 10; i++ {
		add(os.Getenv(fmt.Sprintf("GROQ_API_KEY_%d", i)))
	}

	// Comma-separated keys
	for _, key := range strings.Split(os.Getenv("GROQ_API_KEYS"), ",") {
		add(key)
	}

	// Keys file, one per line, # comments allowed
	if path := os.Getenv("GROQ_KEYS_FILE"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			log.Printf("[Config] Warning: could not read keys file %s: %v", path, err)
		} else {
			defer file.Close()
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				add(line)
			}
		}
	}

	return keys
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if len(c.GroqAPIKeys) == 0 {
		log.Println("[Config] Warning: no GROQ_API_KEY configured, analysis will run in demo mode")
	}

	if c.JWTSecret == "your-secret-key-change-in-production" && !c.Debug {
		return &ConfigError{Field: "JWT_SECRET", Message: "JWT_SECRET must be set in production"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

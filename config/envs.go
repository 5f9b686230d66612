package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultStepFactor  = 4
	defaultRESTPort    = 8080
	defaultQueueTTL    = 3600
	defaultRecentLimit = 50
)

// Config holds the application's configuration values.
type Config struct {
	StepFactor    int    // Multiplier for the navigator's transition cap
	LogLevel      string // Log level (debug, info, warn, error)
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr     string // Address of the redis server holding recent explorations, empty disables it
	QueueTTL      int    // TTL in seconds of the recent explorations queue
	RecentLimit   int    // Number of recent explorations kept in the queue
	MongoURI      string // Connection URI for the report archive, empty disables it
	DBName        string // Name of the archive database
	JWTSecret     string // Secret key for JWT signing, empty leaves archive routes public
	JWTIssuer     string // Issuer claim for JWTs
	EnvFileLoaded bool   // Whether a .env file was found
}

// Load reads the configuration from the environment.
// It loads environment variables from a .env file first when one is present.
func Load() Config {
	loaded := true
	if err := godotenv.Load(); err != nil {
		loaded = false
	}

	return Config{
		StepFactor:    getEnvAsIntWithDefault("ROVER_STEP_FACTOR", defaultStepFactor),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:      getEnvAsIntWithDefault("REST_PORT", defaultRESTPort),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:     getEnvWithDefault("REDIS_ADDR", ""),
		QueueTTL:      getEnvAsIntWithDefault("REDIS_QUEUE_TTL", defaultQueueTTL),
		RecentLimit:   getEnvAsIntWithDefault("RECENT_LIMIT", defaultRecentLimit),
		MongoURI:      getEnvWithDefault("MONGO_URI", ""),
		DBName:        getEnvWithDefault("DB_NAME", "rover"),
		JWTSecret:     getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:     getEnvWithDefault("JWT_ISSUER", "rover"),
		EnvFileLoaded: loaded,
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as a positive integer.
// Unset variables yield the default; unparsable or nonpositive values are logged and ignored.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Printf("[APP] [WARN] Environment variable %s must be a positive integer, using %d", key, defaultValue)
		return defaultValue
	}
	return value
}

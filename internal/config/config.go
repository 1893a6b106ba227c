package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// EnvProduction is the APP_ENV value that switches cookies to cross-site mode.
const EnvProduction = "production"

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	AppEnv     string
	LogLevel   string
	LogFormat  string

	MongoURI      string
	MongoDatabase string
	RedisURL      string

	JWTSecret string
	JWTExpiry time.Duration

	// AllowedOrigins is the CORS allow-list. Credentialed requests cannot use
	// a wildcard, so an empty list falls back to the local front-end.
	AllowedOrigins []string

	// OpenMutationRoutes leaves create/update/delete/grade routes public,
	// matching the route table the first front-end was built against.
	OpenMutationRoutes bool

	CompressMinBytes int
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("PORT", "5000"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "pretty"),
		MongoURI:           mongoURI(),
		MongoDatabase:      getEnv("MONGO_DATABASE", "onlineGroupStudyDB"),
		RedisURL:           getEnv("REDIS_URL", ""),
		JWTSecret:          getEnv("ACCESS_TOKEN_SECRET", "change-this-to-a-secure-random-string"),
		JWTExpiry:          time.Duration(getEnvInt("JWT_EXPIRY_MINUTES", 60)) * time.Minute,
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		OpenMutationRoutes: getEnvBool("OPEN_MUTATION_ROUTES", false),
		CompressMinBytes:   getEnvInt("COMPRESS_MIN_BYTES", 1024),
	}
}

// IsProduction reports whether the API is served cross-site to a deployed front-end.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// mongoURI prefers MONGODB_URI and otherwise assembles one from the
// individual credential variables.
func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	return buildMongoURI(
		getEnv("MONGO_SCHEME", "mongodb"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		getEnv("MONGO_HOST", "localhost:27017"),
	)
}

func buildMongoURI(scheme, user, pass, host string) string {
	u := url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	if user != "" {
		u.User = url.UserPassword(user, pass)
	}
	return u.String()
}

// Redacted returns the URI with the password masked, for logging.
func Redacted(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Sprintf("<unparseable uri: %d bytes>", len(uri))
	}
	return u.Redacted()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

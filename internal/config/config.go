package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// defaultDatabase matches the database the Mongo drivers fall back to when the
// connection string names none.
const defaultDatabase = "test"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env          string        // application environment (e.g. "dev", "prod")
	Port         string        // HTTP port to listen on
	MongoURI     string        // MongoDB connection string
	MongoDB      string        // database holding the movies and tvshows collections
	DBTimeout    time.Duration // upper bound for a single store operation
	PublicDir    string        // directory with the admin page and static assets
	RabbitURL    string        // broker URL; catalog events are disabled when empty
	EventLogPath string        // file the event consumer appends to
	LogLevel     string        // debug, info, warn or error
}

// Load reads an optional .env file, then builds a Config from the
// environment.  MONGO_URI is required; everything else has a default.
func Load() Config {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	uri := must("MONGO_URI")
	return Config{
		Env:          envStr("APP_ENV", "dev"),
		Port:         envStr("PORT", "5000"),
		MongoURI:     uri,
		MongoDB:      envStr("MONGO_DB", databaseFromURI(uri)),
		DBTimeout:    envDur("DB_TIMEOUT", 5*time.Second),
		PublicDir:    envStr("PUBLIC_DIR", "public"),
		RabbitURL:    rabbitURL(),
		EventLogPath: envStr("EVENT_LOG_PATH", "logs/catalog.log"),
		LogLevel:     strings.ToLower(envStr("LOG_LEVEL", "info")),
	}
}

// databaseFromURI returns the database path component of a Mongo URI, or the
// driver default when the URI has none or cannot be parsed.
func databaseFromURI(uri string) string {
	cs, err := connstring.Parse(uri)
	if err != nil || cs.Database == "" {
		return defaultDatabase
	}
	return cs.Database
}

func rabbitURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

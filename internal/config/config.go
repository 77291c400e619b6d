package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "time"

    "github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database credentials are required; everything
// else has a default suited to local development.
type Config struct {
    Env               string         // application environment (e.g. "dev", "prod")
    Port              string         // HTTP port to listen on
    DBUser            string         // database username
    DBPass            string         // database password (optional)
    DBHost            string         // database host address
    DBPort            string         // database port number
    DBName            string         // database name
    DBMaxOpenConns    int            // upper bound of the connection pool
    DBMaxIdleConns    int            // idle connections kept in the pool
    DBConnMaxLifetime time.Duration  // recycle connections after this long
    BcryptCost        int            // bcrypt cost for password hashing
    Location          *time.Location // zone that defines "today" for travel dates
    LogLevel          string         // zap level name (debug, info, warn, error)
    CORSOrigins       []string       // allowed browser origins
    BodyLimit         string         // echo body limit, e.g. "10M"
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first when present;
// real environment variables win over it.
func Load() Config {
    _ = godotenv.Load() // optional for local development

    return Config{
        Env:               envStr("APP_ENV", "dev"),
        Port:              envStr("APP_PORT", "3000"),
        DBUser:            must("DB_USER"),
        DBPass:            os.Getenv("DB_PASS"), // empty allowed
        DBHost:            must("DB_HOST"),
        DBPort:            envStr("DB_PORT", "3306"),
        DBName:            must("DB_NAME"),
        DBMaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 10),
        DBMaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 10),
        DBConnMaxLifetime: envDur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
        BcryptCost:        envInt("BCRYPT_COST", 10),
        Location:          mustLocation(envStr("APP_TIMEZONE", "Local")),
        LogLevel:          envStr("LOG_LEVEL", "info"),
        CORSOrigins:       splitList(envStr("CORS_ORIGINS", "*")),
        BodyLimit:         envStr("BODY_LIMIT", "10M"),
    }
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

func mustLocation(name string) *time.Location {
    loc, err := time.LoadLocation(name)
    if err != nil {
        log.Fatalf("invalid APP_TIMEZONE %q: %v", name, err)
    }
    return loc
}

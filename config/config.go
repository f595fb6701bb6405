package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/juju/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// SQLiteOptions are appended to every SQLite data source. Write
// transactions take the database lock on BEGIN and wait for it instead of
// failing when another connection holds it.
const SQLiteOptions = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

// Config holds the service configuration
type Config struct {
	Port          string
	Driver        string
	DSN           string
	MigrationsDir string
	BcryptCost    int
}

// Load reads configuration from .env files, the environment and, when
// given, command line flags. Flags take precedence over the environment.
func Load(flags *pflag.FlagSet) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", "3000")
	v.SetDefault("sqlite_path", "./starwars.db")
	v.SetDefault("bcrypt_cost", 12)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Annotate(err, "binding flags")
		}
	}

	cfg := &Config{
		Port:       v.GetString("port"),
		BcryptCost: v.GetInt("bcrypt_cost"),
	}
	if cfg.Port == "" {
		return nil, errors.NotValidf("empty PORT")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, errors.NotValidf("BCRYPT_COST %d", cfg.BcryptCost)
	}

	driver, dsn, err := resolveDatabase(v.GetString("database_url"), v.GetString("sqlite_path"))
	if err != nil {
		return nil, errors.Trace(err)
	}
	cfg.Driver = driver
	cfg.DSN = dsn

	cfg.MigrationsDir = v.GetString("migrations_dir")
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "./database/migrations/" + driver
	}
	return cfg, nil
}

// resolveDatabase picks the driver and data source. A postgres DATABASE_URL
// wins; otherwise the SQLite file is used with SQLiteOptions.
func resolveDatabase(databaseURL, sqlitePath string) (string, string, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"):
		return DriverPostgres, strings.Replace(databaseURL, "postgres://", "postgresql://", 1), nil
	case strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, databaseURL, nil
	case databaseURL != "":
		return "", "", errors.NotSupportedf("DATABASE_URL scheme of %q", databaseURL)
	}

	if sqlitePath == "" {
		return "", "", errors.NotValidf("empty SQLITE_PATH")
	}
	sep := "?"
	if strings.Contains(sqlitePath, "?") {
		sep = "&"
	}
	return DriverSQLite, sqlitePath + sep + SQLiteOptions, nil
}

// loadEnvFiles loads .env and then .env.local; missing files are ignored.
// godotenv never overrides variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

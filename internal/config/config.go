package config

import (
	"net"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	Driver      string
	SQLitePath  string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	Addr        string
	CORSOrigins []string
	GinMode     string
	DBLogLevel  string
	SeedDev     bool
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

// New reads a .env file if one exists and then builds the config from the environment.
func New() Config {
	_ = godotenv.Load()

	return Config{
		Driver:      strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		SQLitePath:  getenv("DB_PATH", "db.sqlite"),
		DBUser:      getenv("DB_USER", "root"),
		DBPass:      getenv("DB_PASS", ""),
		DBHost:      getenv("DB_HOST", "127.0.0.1"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBName:      getenv("DB_NAME", "taskboard"),
		Addr:        getenv("ADDR", ":8080"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
		GinMode:     getenv("GIN_MODE", ""),
		DBLogLevel:  strings.ToLower(getenv("DB_LOG_LEVEL", "warn")),
		SeedDev:     os.Getenv("SEED_DEV") == "1",
	}
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.Driver == DriverMySQL {
		return c.MySQLDSN()
	}
	return c.SQLitePath
}

func (c Config) MySQLDSN() string {
	if dsn := os.Getenv("READ_DSN"); dsn != "" {
		return dsn
	}
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	mc.DBName = c.DBName
	mc.ParseTime = true
	// RowsAffected must count matched rows so an unchanged update is not taken for a missing one
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c Config) AllowAllOrigins() bool {
	if len(c.CORSOrigins) == 0 {
		return true
	}
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

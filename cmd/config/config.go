package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"APP_ENV" env-default:"development"`
	LogLevel    string `env:"LOG_LEVEL"`

	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	RabbitMQ RabbitMQConfig
	Buyer    BuyerConfig
	Internal InternalConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" env-default:"localhost"`
	Port            int           `env:"DB_PORT" env-default:"3306"`
	User            string        `env:"DB_USER" env-default:"root"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME" env-default:"buyer_leads"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" env-default:"localhost"`
	Port     int    `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTExpiration  time.Duration `env:"AUTH_JWT_EXPIRATION" env-default:"168h"`
	SessionExpTime time.Duration `env:"AUTH_SESSION_EXP_TIME" env-default:"168h"`
	SecureCookie   bool          `env:"AUTH_SECURE_COOKIE" env-default:"false"`
	// AdminEmails is a comma-separated list of emails that sign in as admin.
	AdminEmails string `env:"AUTH_ADMIN_EMAILS"`
}

type RabbitMQConfig struct {
	Enabled  bool   `env:"RABBITMQ_ENABLED" env-default:"false"`
	Host     string `env:"RABBITMQ_HOST" env-default:"localhost"`
	Port     int    `env:"RABBITMQ_PORT" env-default:"5672"`
	User     string `env:"RABBITMQ_USER" env-default:"guest"`
	Password string `env:"RABBITMQ_PASSWORD" env-default:"guest"`
}

type BuyerConfig struct {
	// NormalizePolicy is "strict" or "lenient".
	NormalizePolicy          string        `env:"BUYER_NORMALIZE_POLICY" env-default:"strict"`
	RequireObservedUpdatedAt bool          `env:"BUYER_REQUIRE_OBSERVED_UPDATED_AT" env-default:"false"`
	CacheTTL                 time.Duration `env:"BUYER_CACHE_TTL" env-default:"5m"`
	HistoryLimit             int           `env:"BUYER_HISTORY_LIMIT" env-default:"50"`
	ImportMaxRows            int           `env:"BUYER_IMPORT_MAX_ROWS" env-default:"200"`
}

type InternalConfig struct {
	APIKey string `env:"INTERNAL_API_KEY"`
}

// WorkerConfig is read by cmd/worker only.
type WorkerConfig struct {
	APIURL string `env:"WORKER_API_URL" env-default:"http://localhost:8080"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if p := strings.ToLower(cfg.Buyer.NormalizePolicy); p != "strict" && p != "lenient" {
		return nil, fmt.Errorf("config: BUYER_NORMALIZE_POLICY must be strict or lenient, got %q", cfg.Buyer.NormalizePolicy)
	}

	return &cfg, nil
}

// GetDSN builds the MySQL DSN. Rows are reported as found rather than
// changed so the conditional buyer update can tell a stale write from a
// no-op.
func (c *Config) GetDSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.Database.User
	dsn.Passwd = c.Database.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	dsn.DBName = c.Database.Name
	dsn.ParseTime = true
	dsn.Loc = time.UTC
	dsn.ClientFoundRows = true
	return dsn.FormatDSN()
}

// IsAdminEmail reports whether email is listed in AUTH_ADMIN_EMAILS.
func (c *Config) IsAdminEmail(email string) bool {
	for _, e := range strings.Split(c.Auth.AdminEmails, ",") {
		if e = strings.TrimSpace(e); e != "" && strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

package app

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// memory | postgres | sqlite | redis
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	DBDSN      string `env:"DB_DSN"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"file::memory:?cache=shared"`

	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisNamespace string `env:"REDIS_NAMESPACE"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig lee .env si existe y después el entorno del proceso.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.AppEnv == "" || c.AppEnv == "development" || c.AppEnv == "dev"
}

// PostgresDSN arma el DSN desde DB_* cuando DB_DSN no está definido,
// aceptando también las variables POSTGRES_* del contenedor oficial.
func (c Config) PostgresDSN() string {
	if strings.TrimSpace(c.DBDSN) != "" {
		return c.DBDSN
	}
	user := firstNonEmpty(c.DBUser, os.Getenv("POSTGRES_USER"), "postgres")
	pass := firstNonEmpty(c.DBPassword, os.Getenv("POSTGRES_PASSWORD"), "postgres")
	name := firstNonEmpty(c.DBName, os.Getenv("POSTGRES_DB"), "enterprises")
	return "host=" + c.DBHost + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + c.DBPort + " sslmode=" + c.DBSSLMode
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	Registry Registry
	Jobs     Jobs
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers             []string `env:"KAFKA_BROKERS"`
	AuditCompletedTopic string   `env:"KAFKA_AUDIT_COMPLETED_TOPIC"`
}

// Registry configures the external CNPJ registry client. The token is
// injected here, never embedded in the client.
type Registry struct {
	BaseURL        string `env:"REGISTRY_BASE_URL"`
	Token          string `env:"REGISTRY_TOKEN" envDefault:""`
	TimeoutSeconds int    `env:"REGISTRY_TIMEOUT_SECONDS" envDefault:"10"`
	MaxRetries     uint64 `env:"REGISTRY_MAX_RETRIES" envDefault:"3"`
	RetryBaseMS    int    `env:"REGISTRY_RETRY_BASE_MS" envDefault:"200"`
}

type Jobs struct {
	SupplierRefreshEnabled       bool `env:"JOBS_SUPPLIER_REFRESH_ENABLED" envDefault:"true"`
	SupplierRefreshIntervalHours int  `env:"JOBS_SUPPLIER_REFRESH_INTERVAL_HOURS" envDefault:"24"`
	SupplierMaxAgeDays           int  `env:"JOBS_SUPPLIER_MAX_AGE_DAYS" envDefault:"180"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP          HTTP
	Logger        Logger
	RestaurantAPI RestaurantAPI
	Redis         Redis
	Kafka         Kafka
	Kitchen       Kitchen
}

type HTTP struct {
	Port         int      `env:"HTTP_PORT" envDefault:"8081"`
	CORSOrigins  []string `env:"HTTP_CORS_ORIGINS" envDefault:"http://localhost:3000"`
	CookieSecure bool     `env:"HTTP_COOKIE_SECURE" envDefault:"false"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type RestaurantAPI struct {
	BaseURL string `env:"RESTAURANT_API_URL" envDefault:"http://localhost:8080"`
	// Zero means no client-enforced timeout.
	Timeout       time.Duration `env:"RESTAURANT_API_TIMEOUT" envDefault:"0s"`
	RetryAttempts int           `env:"RESTAURANT_API_RETRY_ATTEMPTS" envDefault:"0"`
}

// Redis is optional. An empty address keeps browser state in process memory.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:""`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"STORE_TTL" envDefault:"12h"`
}

type Kafka struct {
	Brokers       []string `env:"KAFKA_BROKERS" envDefault:""`
	WorkflowTopic string   `env:"KAFKA_WORKFLOW_TOPIC" envDefault:"pos.workflow"`
	KitchenTopic  string   `env:"KAFKA_KITCHEN_TOPIC" envDefault:"pos.kitchen"`
}

// Kitchen configures the kitchen queue poller. It runs only when the interval and
// the service account are all set.
type Kitchen struct {
	PollInterval time.Duration `env:"KITCHEN_POLL_INTERVAL" envDefault:"0s"`
	Email        string        `env:"KITCHEN_EMAIL" envDefault:""`
	Password     string        `env:"KITCHEN_PASSWORD" envDefault:""`
}

func (k Kitchen) Enabled() bool {
	return k.PollInterval > 0 && k.Email != "" && k.Password != ""
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

package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogiProbe/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		Synth      `yaml:"synth"`
		Limits     `yaml:"limits"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		MCP        `yaml:"mcp"`
		PG         `yaml:"postgres"`
		Kafka      `yaml:"kafka"`
		Codebase   `yaml:"codebase"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	Synth struct {
		DefaultWindowMinutes int  `yaml:"default_window_minutes" env:"SYNTH_DEFAULT_WINDOW_MINUTES" env-default:"60"`
		SortInjected         bool `yaml:"sort_injected" env:"SYNTH_SORT_INJECTED" env-default:"false"`
	}

	Limits struct {
		Nginx int `yaml:"nginx" env:"LIMIT_NGINX" env-default:"10"`
		MySQL int `yaml:"mysql" env:"LIMIT_MYSQL" env-default:"1000"`
		Redis int `yaml:"redis" env:"LIMIT_REDIS" env-default:"15"`
	}

	HTTP struct {
		Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8000"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	GRPC struct {
		Port        string `env-required:"true" yaml:"port" env:"GRPC_PORT"`
		GatewayPort string `yaml:"gateway_port" env:"GRPC_GATEWAY_PORT" env-default:"8081"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	MCP struct {
		Transport string `yaml:"transport" env:"MCP_TRANSPORT" env-default:"http"`
		Port      string `yaml:"port" env:"MCP_PORT" env-default:"8001"`
	}

	// PG is optional. An empty URL disables the tool-call journal.
	PG struct {
		MaxPoolSize int    `env:"MAX_POOL_SIZE" yaml:"max_pool_size" env-default:"2"`
		URL         string `env:"PG_URL" yaml:"url"`
	}

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"logiprobe.tool-calls"`
	}

	Codebase struct {
		Root string `yaml:"root" env:"CODEBASE_ROOT" env-default:"."`
	}
)

const (
	ENV_PATH            = "infra/.env.dev"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Debug("Env file not found, skipping")
		return nil
	}
	return err
}

func New() (*Config, error) {
	if err := loadEnvFile(ENV_PATH); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	return Load(pathToConfig)
}

// Load reads the YAML file at path and applies env overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func (c *Config) JournalEnabled() bool {
	return c.PG.URL != ""
}

func (c *Config) BrokerEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

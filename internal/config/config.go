package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

type Config struct {
	Host              string        `mapstructure:"HOST"`
	Port              string        `mapstructure:"PORT"`
	ReadHeaderTimeout time.Duration `mapstructure:"READ_HEADER_TIMEOUT"`
	ShutdownTimeout   time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	LivenessEndpoint  string        `mapstructure:"LIVENESS_ENDPOINT"`
	CatalogPath       string        `mapstructure:"CATALOG_PATH"`
	StrictSeasons     bool          `mapstructure:"STRICT_SEASONS"`
	Currency          string        `mapstructure:"CURRENCY"`
	Debug             bool          `mapstructure:"DEBUG"`
	// DeterministicIDs numbers quotes quote-1, quote-2, ... instead of uuids.
	DeterministicIDs  bool          `mapstructure:"DETERMINISTIC_IDS"`
}

var ErrInvalid = errors.New("invalid config")

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8092")
	v.SetDefault("READ_HEADER_TIMEOUT", 20*time.Second) //nolint:gomnd
	v.SetDefault("SHUTDOWN_TIMEOUT", 4*time.Second)     //nolint:gomnd
	v.SetDefault("LIVENESS_ENDPOINT", "/liveness")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("STRICT_SEASONS", false)
	v.SetDefault("CURRENCY", "USD")
	v.SetDefault("DEBUG", false)
	v.SetDefault("DETERMINISTIC_IDS", false)
}

// Load reads config.env from dir (optional) and the environment. A .env file
// in dir is loaded into the process environment unless APP_ENV=production.
func Load(dir string) (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load(dir + "/.env")
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	conf.Currency = strings.ToUpper(conf.Currency)

	if err := conf.validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func (c Config) validate() error {
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("CURRENCY %q: %w", c.Currency, ErrInvalid)
	}

	if c.Port == "" {
		return fmt.Errorf("PORT is empty: %w", ErrInvalid)
	}

	if c.ReadHeaderTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive: %w", ErrInvalid)
	}

	return nil
}

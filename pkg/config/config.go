package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/orderpadhq/pricing-engine/pkg/enums"
)

type Config struct {
	App    AppConfig
	Engine EngineConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Engine.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ORDERPAD_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"ORDERPAD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORDERPAD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// EngineConfig tunes payload assembly. The defaults reproduce the catalog
// backend's expectations; overriding them is only useful against staging
// backends with different channel seeds.
type EngineConfig struct {
	CurrencyCode       string `envconfig:"ORDERPAD_CURRENCY_CODE" default:"USD"`
	DefaultChannelID   int64  `envconfig:"ORDERPAD_DEFAULT_CHANNEL_ID" default:"1"`
	DefaultChannelName string `envconfig:"ORDERPAD_DEFAULT_CHANNEL_NAME" default:"Primary"`
}

func (e EngineConfig) validate() error {
	if e.DefaultChannelID <= 0 {
		return fmt.Errorf("%s must be positive", EnvDefaultChannelID)
	}
	if strings.TrimSpace(e.DefaultChannelName) == "" {
		return fmt.Errorf("%s must not be blank", EnvDefaultChannelName)
	}
	if _, err := enums.ParseCurrency(strings.TrimSpace(e.CurrencyCode)); err != nil {
		return fmt.Errorf("%s: %w", EnvCurrencyCode, err)
	}
	return nil
}

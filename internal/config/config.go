package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type ContractsConfig struct {
	DefaultCurrency      string
	DefaultReminderDays  int
	RenewalLookaheadDays int
	SyncStaleDays        int
}

type IntegrationConfig struct {
	CoreBanking string // mock or t24
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Contracts   ContractsConfig
	Integration IntegrationConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Contracts: ContractsConfig{
			DefaultCurrency:      v.GetString("CONTRACTS_DEFAULT_CURRENCY"),
			DefaultReminderDays:  v.GetInt("CONTRACTS_DEFAULT_REMINDER_DAYS"),
			RenewalLookaheadDays: v.GetInt("CONTRACTS_RENEWAL_LOOKAHEAD_DAYS"),
			SyncStaleDays:        v.GetInt("CONTRACTS_SYNC_STALE_DAYS"),
		},
		Integration: IntegrationConfig{
			CoreBanking: v.GetString("INTEGRATION_CORE_BANKING"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7092
	}
	if cfg.Contracts.DefaultCurrency == "" {
		cfg.Contracts.DefaultCurrency = "MAD"
	}
	if cfg.Contracts.DefaultReminderDays == 0 {
		cfg.Contracts.DefaultReminderDays = 30
	}
	if cfg.Contracts.RenewalLookaheadDays == 0 {
		cfg.Contracts.RenewalLookaheadDays = 90
	}
	if cfg.Contracts.SyncStaleDays == 0 {
		cfg.Contracts.SyncStaleDays = 30
	}
	if cfg.Integration.CoreBanking == "" {
		cfg.Integration.CoreBanking = "mock"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.Contracts.DefaultReminderDays < 1 || cfg.Contracts.DefaultReminderDays > 365 {
		return fmt.Errorf("CONTRACTS_DEFAULT_REMINDER_DAYS must be between 1 and 365")
	}
	return nil
}

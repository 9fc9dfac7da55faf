// Package config loads the runtime configuration. Values come from a config file
// when one is present, with DORM_-prefixed environment variables overriding it.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for every binary.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Realtime RealtimeConfig `mapstructure:"realtime"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// TablesConfig names the DynamoDB tables.
type TablesConfig struct {
	Residents       string `mapstructure:"residents"`
	ChargeTemplates string `mapstructure:"charge_templates"`
	LedgerEntries   string `mapstructure:"ledger_entries"`
	Payments        string `mapstructure:"payments"`
	Events          string `mapstructure:"events"`
	EventPayments   string `mapstructure:"event_payments"`
	Connections     string `mapstructure:"connections"`
}

type QueueConfig struct {
	NotificationsURL string `mapstructure:"notifications_url"`
}

type RealtimeConfig struct {
	ApiGatewayEndpoint string `mapstructure:"api_gateway_endpoint"`
}

type MailerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// Load reads configuration from config.yaml (if present) and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("tables.residents", "residents")
	v.SetDefault("tables.charge_templates", "charge_templates")
	v.SetDefault("tables.ledger_entries", "ledger_entries")
	v.SetDefault("tables.payments", "payments")
	v.SetDefault("tables.events", "events")
	v.SetDefault("tables.event_payments", "event_payments")
	v.SetDefault("tables.connections", "connections")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

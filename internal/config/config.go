package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the service reads from the environment. Values
// never change after Load; there is no runtime reconfiguration.
type Config struct {
	PhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID"`
	AccessToken   string `env:"WHATSAPP_ACCESS_TOKEN"`
	APIVersion    string `env:"WHATSAPP_API_VERSION" envDefault:"v21.0"`
	AppSecret     string `env:"WHATSAPP_APP_SECRET"`
	VerifyToken   string `env:"WHATSAPP_VERIFY_TOKEN"`
	Port          string `env:"PORT" envDefault:"8080"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// Validate reports the settings required to serve webhook traffic. The send
// credentials are checked separately so a receive-only deployment works.
func (c *Config) Validate() error {
	if c.AppSecret == "" {
		return fmt.Errorf("config: WHATSAPP_APP_SECRET is required")
	}
	if c.VerifyToken == "" {
		return fmt.Errorf("config: WHATSAPP_VERIFY_TOKEN is required")
	}
	return nil
}

// CanSend reports whether outbound credentials are configured.
func (c *Config) CanSend() bool {
	return c.PhoneNumberID != "" && c.AccessToken != ""
}

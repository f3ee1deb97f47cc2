package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const minJWTSecretLen = 32

// Validate checks the configuration for values that would fail at runtime.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}
	if err := c.Auth.validate(); err != nil {
		return err
	}
	if err := c.Data.validate(); err != nil {
		return err
	}
	return nil
}

func (c ServerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("server: port must be in range 1-65535, got %d", c.Port)
	}
	return nil
}

func (c AuthConfig) validate() error {
	if len(c.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("auth: jwt secret must be at least %d characters", minJWTSecretLen)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth: bcrypt cost must be in range %d-%d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth: access token ttl must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("auth: session ttl must be positive")
	}
	return nil
}

func (c DataConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Source)) {
	case "", "memory", "mongo":
		return nil
	default:
		return fmt.Errorf("data: unknown source %q, expected \"memory\" or \"mongo\"", c.Source)
	}
}

// AdminEmailList splits the comma-separated admin email list, trimming
// whitespace and dropping empty entries.
func (c AuthConfig) AdminEmailList() []string {
	if c.AdminEmails == "" {
		return nil
	}
	parts := strings.Split(c.AdminEmails, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

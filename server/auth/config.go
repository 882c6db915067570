package auth

import (
	"fmt"
)

type ProviderConfig struct {
	ClientID string `toml:"client_id"`
}

func (c ProviderConfig) String() string {
	return fmt.Sprintf("\n  ClientID: %s", c.ClientID)
}

type Config struct {
	PublicURL string         `toml:"public_url"`
	GitHub    ProviderConfig `toml:"github"`
	LinkedIn  ProviderConfig `toml:"linkedin"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n PublicURL: %s\n GitHub: %s\n LinkedIn: %s",
		c.PublicURL,
		c.GitHub,
		c.LinkedIn,
	)
}

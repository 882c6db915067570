package hub

import (
	"fmt"

	"github.com/clubhub-app/clubhub/internal/xtime"
)

type Config struct {
	BaseURL    string         `toml:"base_url"`
	Every      xtime.Duration `toml:"every"`
	Burst      int            `toml:"burst"`
	MaxRetries int            `toml:"max_retries"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n BaseURL: %s\n Every: %s\n Burst: %d\n MaxRetries: %d",
		c.BaseURL,
		c.Every,
		c.Burst,
		c.MaxRetries,
	)
}

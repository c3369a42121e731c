package config

import "time"

type Asana struct {
	AccessToken string        `env:"ACCESS_TOKEN,expand"`
	BaseURL     string        `env:"BASE_URL,expand" envDefault:"https://app.asana.com/api/1.0"`
	Timeout     time.Duration `env:"TIMEOUT,expand" envDefault:"1m"`
	PageSize    int           `env:"PAGE_SIZE,expand" envDefault:"100"`
	MaxRetries  int           `env:"MAX_RETRIES,expand" envDefault:"5"`
	RateLimit   RateLimit     `envPrefix:"RATE_LIMIT_"`
}

type RateLimit struct {
	Enabled     bool          `env:"ENABLED,expand" envDefault:"true"`
	MinInterval time.Duration `env:"MIN_INTERVAL,expand" envDefault:"400ms"`
	MaxBurst    int           `env:"MAX_BURST,expand" envDefault:"5"`
}

package config

import "time"

// UpstreamConfig contains configuration for the settlement back office client.
type UpstreamConfig struct {
	// BaseURL is the back office root, e.g. "https://settle.example.com".
	BaseURL string `env:"BASE_URL,required"`

	// Timeout bounds every back office round trip. Uploads and report
	// generation can be slow server-side, so the default is generous.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	if u.Timeout <= 0 {
		u.Timeout = 60 * time.Second
	}
}

package configs

import "time"

// Fixer configures the ratio-fixer automation service client. Control
// calls (start/stop) carry a longer timeout than query calls
// (status/health) so a hung remote never wedges the lifecycle controller.
type Fixer struct {
	// BaseURL is the root of the ratio-fixer HTTP API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9090"`
	// ControlTimeout bounds start and stop calls.
	ControlTimeout time.Duration `env:"CONTROL_TIMEOUT" envDefault:"10s"`
	// QueryTimeout bounds status and health calls.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`
	// PollInterval is the cadence of status polling for running fixers.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	// PollMaxTries bounds the per-tick retry budget for transient errors.
	PollMaxTries uint `env:"POLL_MAX_TRIES" envDefault:"2"`
	// HealthInterval is the cadence of the advisory availability probe.
	HealthInterval time.Duration `env:"HEALTH_INTERVAL" envDefault:"60s"`
}

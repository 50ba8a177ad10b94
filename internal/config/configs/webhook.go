package configs

import "time"

// Webhook configures the status-change notification sink. An empty URL
// disables delivery.
type Webhook struct {
	// URL receives status-change events as JSON POSTs.
	URL string `env:"URL" envDefault:""`
	// Timeout bounds each delivery attempt.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

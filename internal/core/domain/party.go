package domain

import "time"

// Client is an opaque foreign reference carried for display purposes.
type Client struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// Salesperson is an opaque foreign reference carried for commission
// attribution; it holds no engine logic.
type Salesperson struct {
	ID             int64
	Name           string
	Email          string
	CommissionRate float64
	CreatedAt      time.Time
}

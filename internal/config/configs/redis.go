package configs

import "time"

// Redis configures the campaign collection cache. Leaving Addr empty
// disables the cache; the engine then reads straight from PostgreSQL.
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDR" envDefault:""`
	// Password authenticates against the server when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical database.
	DB int `env:"DB" envDefault:"0"`
	// ListTTL bounds how long the cached campaign collection stays fresh.
	ListTTL time.Duration `env:"LIST_TTL" envDefault:"5m"`
}

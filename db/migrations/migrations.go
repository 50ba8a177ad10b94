package migrations

import "embed"

// FS embeds the SQL migration files in this directory. The golang-migrate
// iofs driver reads them when migrations run on startup.
//
//go:embed *.sql
var FS embed.FS

// Version is the newest migration the schema should be at.
const Version = 1

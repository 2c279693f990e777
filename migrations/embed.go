package migrations

import (
	"embed"
)

//go:embed *.sql
var MigrationFiles embed.FS

//go:embed sqlite/schema.sql
var SQLiteSchema string

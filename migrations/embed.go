package migrations

import "embed"

// Files holds the numbered schema migrations compiled into the ascent
// binary. The runner applies them in filename order and records each one
// in schema_migrations, so the migrations are forward-only.
//
//go:embed *.sql
var Files embed.FS

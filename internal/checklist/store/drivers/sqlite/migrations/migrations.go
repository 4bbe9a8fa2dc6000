// Package migrations embeds the base-schema migration files so they compile
// into the binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

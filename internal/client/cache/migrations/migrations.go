// Package migrations embeds the goose migrations that create the cache schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

// Package migrations embeds the SQL schema migrations for the key-value
// store, applied with goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

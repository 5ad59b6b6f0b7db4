// Package migrations embeds the goose SQL migrations for the chart tables.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

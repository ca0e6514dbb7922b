// Package migrations embeds the SQL schema files so the migrate
// command ships as a single binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

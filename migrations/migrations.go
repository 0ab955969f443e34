// Package migrations embeds the SQL schema migrations applied at startup.
package migrations

import "embed"

// FS holds the *.sql files, applied in name order
//
//go:embed *.sql
var FS embed.FS

// Package migrations embeds the goose SQL migrations so the binaries can
// apply them without shipping the .sql files.
package migrations

import "embed"

// FS holds every migration in this directory.
//
//go:embed *.sql
var FS embed.FS

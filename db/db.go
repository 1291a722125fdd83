// Package db embeds the SQL migrations so the migration binary does not
// depend on the working directory.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

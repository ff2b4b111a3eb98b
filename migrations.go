// Package notfound holds assets shared by the commands, such as the embedded
// SQL migrations.
package notfound

import "embed"

// Migrations contains the goose migrations for the postgres preference store.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Package schemas provides embedded SQL migration files for the MySQL storage backend.
package schemas

import "embed"

// MigrationsDirectory is the directory inside Migrations holding the files.
const MigrationsDirectory = "migrations"

// Migrations contains all SQL migration files, named for golang-migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS

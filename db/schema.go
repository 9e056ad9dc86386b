package database

import _ "embed"

// Schema holds the full database schema. It is embedded so the repository
// integration tests and EnsureSchema share a single source of truth.
//
//go:embed schema.sql
var Schema string

// Package postgres implements the snapshot persistence contract on top of a
// PostgreSQL database, keeping the full tracker state in a single JSONB row.
// The schema is managed by the goose migrations embedded in cmd/server.
package postgres

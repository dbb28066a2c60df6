// Package postgres provides a PostgreSQL implementation of the
// store.RecordStore interface. Records live in a single kv_records table
// managed by embedded goose migrations; connections use the pgx stdlib
// driver through database/sql.
package postgres

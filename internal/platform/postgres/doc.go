// Package postgres implements the store interfaces on PostgreSQL using the
// pgx driver through database/sql.
package postgres

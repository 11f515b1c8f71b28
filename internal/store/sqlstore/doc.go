// Package sqlstore keeps todo items in a single SQLite table.
// The schema version lives in PRAGMA user_version; a version mismatch drops
// and recreates the table, losing its rows.
package sqlstore

// Package persistence provides the database repository implementations.
// It uses GORM as the ORM layer to store AES key metadata and material in
// PostgreSQL or SQLite, with validation and logging on every write path.
package persistence

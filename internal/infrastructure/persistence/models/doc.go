// Package models contains the GORM database models of the persistence layer.
// They are kept separate from the domain entities so that storage concerns,
// such as the raw key material column, never leak across the boundary.
package models

// Package keys defines the domain model and service contracts for stored AES
// key material: generation, metadata queries and download of raw key bytes.
package keys

// Package ciphers defines the core interfaces, models and error taxonomy for
// AES cipher sessions: single-block encryption under a fixed key schedule,
// combined with a chaining mode whose state persists across successive calls
// on the same session.
package ciphers

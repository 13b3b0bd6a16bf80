package ciphers

import (
	"strings"
	"time"
)

// Mode identifies a block chaining mode. A session's mode is fixed at
// construction and never changes afterwards.
type Mode string

// Supported chaining modes
const (
	ModeECB Mode = "ECB"
	ModeCBC Mode = "CBC"
	ModeCFB Mode = "CFB"
	ModeCTR Mode = "CTR"
)

// RequiresIV reports whether the mode chains on a 16-byte initialization
// vector. ECB is the only mode that does not.
func (m Mode) RequiresIV() bool {
	return m != ModeECB
}

// ParseMode converts a mode name into a Mode, accepting any casing. It
// returns an UnsupportedModeError for names outside the supported set.
func ParseMode(name string) (Mode, error) {
	switch mode := Mode(strings.ToUpper(name)); mode {
	case ModeECB, ModeCBC, ModeCFB, ModeCTR:
		return mode, nil
	default:
		return "", UnsupportedModeError(name)
	}
}

// SessionInfo describes the observable state of a managed cipher session. It
// carries no key material; only sizes, the mode and the current chain state
// are exposed.
type SessionInfo struct {
	ID              string
	Mode            Mode
	KeySize         int
	BlockSize       int
	CurrentIV       []byte
	DateTimeCreated time.Time
}

package ciphers

import (
	"errors"
	"strconv"
)

// KeySizeError reports a key whose length selects no AES variant.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "ciphers: invalid key size " + strconv.Itoa(int(k)) + ", must be 16, 24 or 32 bytes"
}

// IVSizeError reports an initialization vector whose length differs from the
// block size.
type IVSizeError int

func (i IVSizeError) Error() string {
	return "ciphers: invalid IV size " + strconv.Itoa(int(i)) + ", must be " + strconv.Itoa(BlockSize) + " bytes"
}

// InputSizeError reports an ECB or CBC input whose length is not a multiple
// of the block size.
type InputSizeError int

func (n InputSizeError) Error() string {
	return "ciphers: input size " + strconv.Itoa(int(n)) + " is not a multiple of the block size"
}

// UnsupportedModeError reports a chaining mode name outside the supported set.
type UnsupportedModeError string

func (m UnsupportedModeError) Error() string {
	return "ciphers: unsupported cipher mode " + strconv.Quote(string(m))
}

// ErrMissingIV is returned when a mode that chains on an initialization
// vector is constructed without one.
var ErrMissingIV = errors.New("ciphers: missing IV")

// ErrPartialBlockContinuation is returned when a session is asked to process
// further input after a call that ended mid-block. The keystream bytes beyond
// the short tail were discarded, so the session cannot line up a continuation
// and refuses all subsequent transforms.
var ErrPartialBlockContinuation = errors.New("ciphers: cannot continue after a partial final block")

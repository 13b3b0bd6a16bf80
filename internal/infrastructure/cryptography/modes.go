package cryptography

import (
	"aes_cipher_service/internal/domain/ciphers"
)

// modeDriver applies one chaining mode over a block cipher. Drivers own the
// chaining state and advance it as blocks are consumed; the driver for a
// session is selected once at construction, never per call.
type modeDriver interface {
	// encrypt fills dst with the ciphertext for src; dst and src have equal
	// length and may alias.
	encrypt(dst, src []byte) error

	// decrypt fills dst with the plaintext for src; dst and src have equal
	// length and may alias.
	decrypt(dst, src []byte) error

	// state returns the current chaining value, or nil when the mode keeps
	// none. Callers must copy before retaining it.
	state() []byte
}

// newModeDriver builds the driver for mode. The IV, where the mode needs one,
// has already been validated by the caller.
func newModeDriver(block *BlockCipher, mode ciphers.Mode, iv []byte) (modeDriver, error) {
	switch mode {
	case ciphers.ModeECB:
		return &ecbDriver{block: block}, nil
	case ciphers.ModeCBC:
		d := &cbcDriver{block: block}
		copy(d.feedback[:], iv)
		return d, nil
	case ciphers.ModeCFB:
		d := &cfbDriver{block: block}
		copy(d.feedback[:], iv)
		return d, nil
	case ciphers.ModeCTR:
		d := &ctrDriver{block: block}
		copy(d.counter[:], iv)
		return d, nil
	default:
		return nil, ciphers.UnsupportedModeError(string(mode))
	}
}

// ecbDriver enciphers every block independently. It keeps no chaining state,
// so equal plaintext blocks yield equal ciphertext blocks.
type ecbDriver struct {
	block *BlockCipher
}

func (d *ecbDriver) encrypt(dst, src []byte) error {
	if len(src)%ciphers.BlockSize != 0 {
		return ciphers.InputSizeError(len(src))
	}
	for i := 0; i < len(src); i += ciphers.BlockSize {
		d.block.encryptInto(dst[i:i+ciphers.BlockSize], src[i:i+ciphers.BlockSize])
	}
	return nil
}

func (d *ecbDriver) decrypt(dst, src []byte) error {
	if len(src)%ciphers.BlockSize != 0 {
		return ciphers.InputSizeError(len(src))
	}
	for i := 0; i < len(src); i += ciphers.BlockSize {
		d.block.decryptInto(dst[i:i+ciphers.BlockSize], src[i:i+ciphers.BlockSize])
	}
	return nil
}

func (d *ecbDriver) state() []byte { return nil }

// cbcDriver XORs each plaintext block with the previous ciphertext block
// before enciphering it. The feedback register starts as the IV and always
// holds the most recent ciphertext block.
type cbcDriver struct {
	block    *BlockCipher
	feedback [16]byte
}

func (d *cbcDriver) encrypt(dst, src []byte) error {
	if len(src)%ciphers.BlockSize != 0 {
		return ciphers.InputSizeError(len(src))
	}
	var x [16]byte
	for i := 0; i < len(src); i += ciphers.BlockSize {
		for j := 0; j < ciphers.BlockSize; j++ {
			x[j] = src[i+j] ^ d.feedback[j]
		}
		d.block.encryptInto(d.feedback[:], x[:])
		copy(dst[i:], d.feedback[:])
	}
	return nil
}

func (d *cbcDriver) decrypt(dst, src []byte) error {
	if len(src)%ciphers.BlockSize != 0 {
		return ciphers.InputSizeError(len(src))
	}
	// The ciphertext block is captured before writing dst so src may alias.
	var c, p [16]byte
	for i := 0; i < len(src); i += ciphers.BlockSize {
		copy(c[:], src[i:])
		d.block.decryptInto(p[:], c[:])
		for j := 0; j < ciphers.BlockSize; j++ {
			dst[i+j] = p[j] ^ d.feedback[j]
		}
		copy(d.feedback[:], c[:])
	}
	return nil
}

func (d *cbcDriver) state() []byte { return d.feedback[:] }

// cfbDriver turns the block cipher into a self-synchronizing stream cipher:
// the keystream for each block is the encryption of the previous ciphertext
// block, starting from the IV. Only the forward block transform is ever used,
// for decryption too.
//
// A call that ends mid-block consumes a full keystream block but feeds only
// the short ciphertext tail back into the register, padding the rest with the
// unused keystream bytes. The bytes needed to continue are gone, so the
// driver refuses all further input afterwards.
type cfbDriver struct {
	block     *BlockCipher
	feedback  [16]byte
	truncated bool
}

func (d *cfbDriver) encrypt(dst, src []byte) error {
	if d.truncated {
		return ciphers.ErrPartialBlockContinuation
	}
	var stream [16]byte
	for i := 0; i < len(src); i += ciphers.BlockSize {
		d.block.encryptInto(stream[:], d.feedback[:])
		n := len(src) - i
		if n > ciphers.BlockSize {
			n = ciphers.BlockSize
		}
		for j := 0; j < n; j++ {
			dst[i+j] = src[i+j] ^ stream[j]
		}
		copy(d.feedback[:], stream[:])
		copy(d.feedback[:n], dst[i:i+n])
		if n < ciphers.BlockSize {
			d.truncated = true
		}
	}
	return nil
}

func (d *cfbDriver) decrypt(dst, src []byte) error {
	if d.truncated {
		return ciphers.ErrPartialBlockContinuation
	}
	var stream, c [16]byte
	for i := 0; i < len(src); i += ciphers.BlockSize {
		d.block.encryptInto(stream[:], d.feedback[:])
		n := len(src) - i
		if n > ciphers.BlockSize {
			n = ciphers.BlockSize
		}
		copy(c[:n], src[i:i+n])
		for j := 0; j < n; j++ {
			dst[i+j] = c[j] ^ stream[j]
		}
		copy(d.feedback[:], stream[:])
		copy(d.feedback[:n], c[:n])
		if n < ciphers.BlockSize {
			d.truncated = true
		}
	}
	return nil
}

func (d *cfbDriver) state() []byte { return d.feedback[:] }

// ctrDriver XORs input with the encryptions of a big-endian counter that
// starts at the IV and increments once per block. Encryption and decryption
// are the same operation.
//
// A short final block still advances the counter by a whole block and marks
// the driver truncated, since the discarded keystream tail cannot be replayed.
type ctrDriver struct {
	block     *BlockCipher
	counter   [16]byte
	truncated bool
}

func (d *ctrDriver) apply(dst, src []byte) error {
	if d.truncated {
		return ciphers.ErrPartialBlockContinuation
	}
	var stream [16]byte
	for i := 0; i < len(src); i += ciphers.BlockSize {
		d.block.encryptInto(stream[:], d.counter[:])
		n := len(src) - i
		if n > ciphers.BlockSize {
			n = ciphers.BlockSize
		}
		for j := 0; j < n; j++ {
			dst[i+j] = src[i+j] ^ stream[j]
		}
		incrementCounter(&d.counter)
		if n < ciphers.BlockSize {
			d.truncated = true
		}
	}
	return nil
}

func (d *ctrDriver) encrypt(dst, src []byte) error { return d.apply(dst, src) }

func (d *ctrDriver) decrypt(dst, src []byte) error { return d.apply(dst, src) }

func (d *ctrDriver) state() []byte { return d.counter[:] }

// incrementCounter adds one to the counter interpreted as a 128-bit
// big-endian integer, wrapping to zero after the maximum value.
func incrementCounter(counter *[16]byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}

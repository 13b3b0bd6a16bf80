package cryptography

import (
	"aes_cipher_service/internal/domain/ciphers"
)

// BlockCipher is an AES block cipher with a fully expanded, immutable key
// schedule. It transforms exactly one 16-byte block at a time; chaining
// across blocks is the job of the mode drivers layered on top. A BlockCipher
// is safe for concurrent use because nothing in it is written after
// construction.
type BlockCipher struct {
	roundKeys [][16]byte
	keySize   int
}

// NewBlockCipher expands key into the round key schedule and returns a block
// cipher over it. The key must be 16, 24 or 32 bytes long, selecting 10, 12
// or 14 rounds.
func NewBlockCipher(key []byte) (*BlockCipher, error) {
	switch len(key) {
	case ciphers.AESKeySize128, ciphers.AESKeySize192, ciphers.AESKeySize256:
	default:
		return nil, ciphers.KeySizeError(len(key))
	}
	return &BlockCipher{
		roundKeys: expandKey(key),
		keySize:   len(key),
	}, nil
}

// BlockSize returns the cipher block size in bytes.
func (c *BlockCipher) BlockSize() int { return ciphers.BlockSize }

// KeySize returns the key length in bytes.
func (c *BlockCipher) KeySize() int { return c.keySize }

// EncryptBlock enciphers exactly one block from src into dst. Src must be
// exactly 16 bytes, dst at least 16, and the two may overlap.
func (c *BlockCipher) EncryptBlock(dst, src []byte) error {
	if len(src) != ciphers.BlockSize {
		return ciphers.InputSizeError(len(src))
	}
	if len(dst) < ciphers.BlockSize {
		return ciphers.InputSizeError(len(dst))
	}
	c.encryptInto(dst, src)
	return nil
}

// DecryptBlock deciphers exactly one block from src into dst. Src must be
// exactly 16 bytes, dst at least 16, and the two may overlap.
func (c *BlockCipher) DecryptBlock(dst, src []byte) error {
	if len(src) != ciphers.BlockSize {
		return ciphers.InputSizeError(len(src))
	}
	if len(dst) < ciphers.BlockSize {
		return ciphers.InputSizeError(len(dst))
	}
	c.decryptInto(dst, src)
	return nil
}

// encryptInto transforms one block; callers guarantee 16-byte slices.
func (c *BlockCipher) encryptInto(dst, src []byte) {
	var state [16]byte
	copy(state[:], src)
	c.encrypt(&state)
	copy(dst, state[:])
}

// decryptInto transforms one block; callers guarantee 16-byte slices.
func (c *BlockCipher) decryptInto(dst, src []byte) {
	var state [16]byte
	copy(state[:], src)
	c.decrypt(&state)
	copy(dst, state[:])
}

// encrypt applies the forward round function in place. The state is laid out
// column major, state[4*col+row], matching the order in which key schedule
// words are flattened into round keys.
func (c *BlockCipher) encrypt(state *[16]byte) {
	rounds := len(c.roundKeys) - 1
	addRoundKey(state, &c.roundKeys[0])
	for round := 1; round < rounds; round++ {
		subBytes(state)
		shiftRows(state)
		mixColumns(state)
		addRoundKey(state, &c.roundKeys[round])
	}
	subBytes(state)
	shiftRows(state)
	addRoundKey(state, &c.roundKeys[rounds])
}

// decrypt applies the inverse round function in place, undoing encrypt.
func (c *BlockCipher) decrypt(state *[16]byte) {
	rounds := len(c.roundKeys) - 1
	addRoundKey(state, &c.roundKeys[rounds])
	for round := rounds - 1; round > 0; round-- {
		invShiftRows(state)
		invSubBytes(state)
		addRoundKey(state, &c.roundKeys[round])
		invMixColumns(state)
	}
	invShiftRows(state)
	invSubBytes(state)
	addRoundKey(state, &c.roundKeys[0])
}

func addRoundKey(state, roundKey *[16]byte) {
	for i := range state {
		state[i] ^= roundKey[i]
	}
}

func subBytes(state *[16]byte) {
	for i, b := range state {
		state[i] = sbox[b]
	}
}

func invSubBytes(state *[16]byte) {
	for i, b := range state {
		state[i] = invSbox[b]
	}
}

// shiftRows rotates row r of the state left by r positions. Row r occupies
// indices r, r+4, r+8 and r+12 of the column major layout; row 0 stays put.
func shiftRows(state *[16]byte) {
	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], state[1]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[15], state[3], state[7], state[11]
}

// invShiftRows rotates row r of the state right by r positions.
func invShiftRows(state *[16]byte) {
	state[1], state[5], state[9], state[13] = state[13], state[1], state[5], state[9]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[7], state[11], state[15], state[3]
}

// mixColumns multiplies each state column by the fixed polynomial
// {03}x^3+{01}x^2+{01}x+{02} over GF(2^8).
func mixColumns(state *[16]byte) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c] = mul2[a0] ^ mul3[a1] ^ a2 ^ a3
		state[c+1] = a0 ^ mul2[a1] ^ mul3[a2] ^ a3
		state[c+2] = a0 ^ a1 ^ mul2[a2] ^ mul3[a3]
		state[c+3] = mul3[a0] ^ a1 ^ a2 ^ mul2[a3]
	}
}

// invMixColumns multiplies each state column by the inverse polynomial
// {0b}x^3+{0d}x^2+{09}x+{0e} over GF(2^8).
func invMixColumns(state *[16]byte) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := state[c], state[c+1], state[c+2], state[c+3]
		state[c] = mul14[a0] ^ mul11[a1] ^ mul13[a2] ^ mul9[a3]
		state[c+1] = mul9[a0] ^ mul14[a1] ^ mul11[a2] ^ mul13[a3]
		state[c+2] = mul13[a0] ^ mul9[a1] ^ mul14[a2] ^ mul11[a3]
		state[c+3] = mul11[a0] ^ mul13[a1] ^ mul9[a2] ^ mul14[a3]
	}
}

// expandKey derives the Nr+1 round keys from key following the Rijndael key
// expansion. Each round key is flattened column major so it XORs directly
// against the state.
func expandKey(key []byte) [][16]byte {
	nk := len(key) / 4
	rounds := nk + 6

	words := make([][4]byte, 4*(rounds+1))
	for i := 0; i < nk; i++ {
		copy(words[i][:], key[4*i:4*i+4])
	}
	for i := nk; i < len(words); i++ {
		t := words[i-1]
		switch {
		case i%nk == 0:
			t = subWord(rotWord(t))
			t[0] ^= rcon[i/nk]
		case nk == 8 && i%nk == 4:
			// AES-256 applies an extra SubWord halfway through each
			// expansion group.
			t = subWord(t)
		}
		for j := 0; j < 4; j++ {
			words[i][j] = words[i-nk][j] ^ t[j]
		}
	}

	roundKeys := make([][16]byte, rounds+1)
	for r := range roundKeys {
		for c := 0; c < 4; c++ {
			copy(roundKeys[r][4*c:4*c+4], words[4*r+c][:])
		}
	}
	return roundKeys
}

// rotWord rotates the bytes of a key schedule word left by one.
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to every byte of a key schedule word.
func subWord(w [4]byte) [4]byte {
	return [4]byte{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

package cryptography

// Constant tables for the AES round transform: the S-box and its inverse, the
// key schedule round constants and the GF(2^8) multiplication tables backing
// MixColumns. Everything is derived once at package load from arithmetic over
// the AES reduction polynomial 0x11b and never written afterwards, so
// concurrent readers need no synchronization.

var (
	sbox    [256]byte
	invSbox [256]byte

	// rcon[i] holds the first byte of the round constant word used when
	// expanding word i/Nk of the key schedule; index 0 is unused.
	rcon [11]byte

	mul2  [256]byte
	mul3  [256]byte
	mul9  [256]byte
	mul11 [256]byte
	mul13 [256]byte
	mul14 [256]byte
)

func init() {
	// Log and antilog tables over the multiplicative group, generated by
	// 0x03. Every nonzero field element appears exactly once in a cycle of
	// length 255, which turns inversion into a table lookup.
	var alog [256]byte
	var logt [256]byte
	x := byte(1)
	for i := 0; i < 255; i++ {
		alog[i] = x
		logt[x] = byte(i)
		x ^= xtime(x)
	}

	inverse := func(b byte) byte {
		if b == 0 {
			return 0
		}
		return alog[(255-int(logt[b]))%255]
	}

	for i := 0; i < 256; i++ {
		b := inverse(byte(i))
		sbox[i] = b ^ rotl(b, 1) ^ rotl(b, 2) ^ rotl(b, 3) ^ rotl(b, 4) ^ 0x63
	}
	for i := 0; i < 256; i++ {
		invSbox[sbox[i]] = byte(i)
	}

	rcon[1] = 0x01
	for i := 2; i < len(rcon); i++ {
		rcon[i] = xtime(rcon[i-1])
	}

	for i := 0; i < 256; i++ {
		b := byte(i)
		mul2[i] = gmul(b, 0x02)
		mul3[i] = gmul(b, 0x03)
		mul9[i] = gmul(b, 0x09)
		mul11[i] = gmul(b, 0x0b)
		mul13[i] = gmul(b, 0x0d)
		mul14[i] = gmul(b, 0x0e)
	}
}

// xtime multiplies a field element by x, reducing modulo 0x11b.
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

// gmul multiplies two field elements by shift-and-add.
func gmul(a, b byte) byte {
	var p byte
	for b > 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// rotl rotates a byte left by n bits.
func rotl(b byte, n uint) byte {
	return b<<n | b>>(8-n)
}

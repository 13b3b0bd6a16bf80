//go:build unit
// +build unit

package ciphers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Mode
	}{
		{name: "Uppercase ECB", input: "ECB", expected: ModeECB},
		{name: "Lowercase cbc", input: "cbc", expected: ModeCBC},
		{name: "Mixed case Cfb", input: "Cfb", expected: ModeCFB},
		{name: "Uppercase CTR", input: "CTR", expected: ModeCTR},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mode, err := ParseMode(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, mode)
		})
	}
}

func TestParseModeRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "GCM", "ecb ", "CBC-CS1"} {
		mode, err := ParseMode(name)
		assert.Error(t, err)
		assert.Equal(t, Mode(""), mode)

		var modeErr UnsupportedModeError
		assert.True(t, errors.As(err, &modeErr))
		assert.Equal(t, name, string(modeErr))
	}
}

func TestModeRequiresIV(t *testing.T) {
	assert.False(t, ModeECB.RequiresIV())
	assert.True(t, ModeCBC.RequiresIV())
	assert.True(t, ModeCFB.RequiresIV())
	assert.True(t, ModeCTR.RequiresIV())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "ciphers: invalid key size 15, must be 16, 24 or 32 bytes", KeySizeError(15).Error())
	assert.Equal(t, "ciphers: invalid IV size 12, must be 16 bytes", IVSizeError(12).Error())
	assert.Equal(t, "ciphers: input size 17 is not a multiple of the block size", InputSizeError(17).Error())
	assert.Equal(t, `ciphers: unsupported cipher mode "GCM"`, UnsupportedModeError("GCM").Error())
}

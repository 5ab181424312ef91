package utils_test

import (
	"fmt"
	"math/big"
	"testing"

	"apo-analyzer/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestEngineeredAddress(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"Regular", "10.1.10.9", "30.10.10.6", true},
		{"ThreeDigitOctet", "10.1.110.9", "30.10.110.6", true},
		{"OutOfRangeIsNotValidated", "256.1.1.1", "30.10.1.6", true},
		{"TooFewOctets", "10.1.10", "", false},
		{"Garbage", "abc", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := utils.EngineeredAddress(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToAddress(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0x1e0a6e06", "30.10.110.6"},
		{"1e0a0a06", "30.10.10.6"},
		{"0xa06", "0.0.10.6"},
		{"0x00000000", "0.0.0.0"},
		{"0xzz0a0a06", "0xzz0a0a06"},
		{"not-hex", "not-hex"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.HexToAddress(tt.input))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x0a, 0x1e0a6e06, 0xffffffff, 0x05000000, 0x7f000001} {
		h := fmt.Sprintf("0x%08x", v)
		t.Run(h, func(t *testing.T) {
			back, ok := utils.AddressToHex(utils.HexToAddress(h))
			assert.True(t, ok)
			assert.Equal(t, h, back)
		})
	}
}

func TestAddressToHex_Invalid(t *testing.T) {
	for _, in := range []string{"1.2.3", "1.2.3.256", "a.b.c.d", ""} {
		_, ok := utils.AddressToHex(in)
		assert.False(t, ok, in)
	}
}

func TestFormatHex32(t *testing.T) {
	assert.Equal(t, "0x0000000a", utils.FormatHex32(10))
	assert.Equal(t, "0x05000000", utils.FormatHex32(5<<24))
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "0x0000000a", utils.FormatHex(big.NewInt(10)))

	wide, ok := new(big.Int).SetString("99999999999999999999", 10)
	assert.True(t, ok)
	assert.Equal(t, "0x56bc75e2d630fffff", utils.FormatHex(wide))
}

package utils

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// dottedQuad matches four dot-separated integers at the start of a string.
// Octet magnitude is deliberately not range checked.
var dottedQuad = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\.(\d+)`)

// EngineeredAddress maps an APOPLUS TopNeIp to the WASON node address of the
// same site. The third octet of the input is substituted into 30.10.<x>.6.
// It returns false if the input is not four dot-separated integers.
func EngineeredAddress(topNeIP string) (string, bool) {
	m := dottedQuad.FindStringSubmatch(topNeIP)
	if m == nil {
		return "", false
	}
	return "30.10." + m[3] + ".6", true
}

// HexToAddress converts a 32-bit hex value such as 0x1e0a6e06 into its dotted
// quad form (30.10.110.6). Only the first eight digits are read. On any parse
// failure the input is returned unchanged.
func HexToAddress(hex string) string {
	h := strings.ReplaceAll(hex, "0x", "")
	if len(h) < 8 {
		h = strings.Repeat("0", 8-len(h)) + h
	}
	h = h[:8]

	parts := make([]string, 0, 4)
	for i := 0; i < 8; i += 2 {
		v, err := strconv.ParseUint(h[i:i+2], 16, 8)
		if err != nil {
			return hex
		}
		parts = append(parts, strconv.FormatUint(v, 10))
	}
	return strings.Join(parts, ".")
}

// AddressToHex is the inverse of HexToAddress.
func AddressToHex(addr string) (string, bool) {
	parts := strings.Split(addr, ".")
	if len(parts) != 4 {
		return "", false
	}

	var v uint32
	for _, p := range parts {
		octet, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return "", false
		}
		v = v<<8 | uint32(octet)
	}
	return FormatHex32(int(v)), true
}

// FormatHex32 renders v the way both logs print identifiers: 0x%08x, lower case.
func FormatHex32(v int) string {
	return fmt.Sprintf("0x%08x", v)
}

// FormatHex is FormatHex32 for values of any magnitude. Values wider than
// 32 bits keep all their digits.
func FormatHex(v *big.Int) string {
	return fmt.Sprintf("0x%08x", v)
}

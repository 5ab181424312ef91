package segment

import (
	"math/big"
	"regexp"
	"strings"

	"apo-analyzer/core/utils"
	"apo-analyzer/feature/remnant/models"
)

// Line tags of the two embedded log formats.
const (
	CallLogTag   = "[WASON]"
	InventoryTag = "[APOPLUS]"
)

// The marker expressions are a compatibility contract with the log producer.
var (
	reCallStart = regexp.MustCompile(`^\s*ZXPOTN\(.*\)#\s*exec\s+diag_c\("cc-cmd setcallcv SetupApo"\)`)
	reCallEnd   = regexp.MustCompile(`(?i)^\[WASON\]ushell command finished\b`)
	reCallConn  = regexp.MustCompile(`^\[WASON\]\s*Conn\s*\[`)
	reConnDesc  = regexp.MustCompile(`Conn\s*\[\s*([\d.]+)\s+([\d.]+)\s+(\d+)\s+(\d+)\s*\]`)

	reInvStart = regexp.MustCompile(`(?i)^\[APOPLUS\]\s*===\s*show all och-inst\s*===`)
	reInvEnd   = regexp.MustCompile(`(?i)^\[APOPLUS\]ushell command finished\b`)
	reInvTop   = regexp.MustCompile(`^\[APOPLUS\]\s*TopNeIp\s*:\s*([0-9.]+)`)
	reInvRow   = regexp.MustCompile(`^\[APOPLUS\]\d+\s+(0x[0-9a-fA-F]+)\s+(0x[0-9a-fA-F]+)\s+(0x[0-9a-fA-F]{8})\s+(0x[0-9a-fA-F]{8}).*\b(HEAD[A-Z_]+)\b`)
)

// Descriptor is a parsed WASON "Conn [a b call conn]" descriptor.
type Descriptor struct {
	FirstAddress  string
	SecondAddress string
	CallID        *big.Int
	ConnHex       string
}

// IsDescriptorLine reports whether line is a tagged WASON connection line.
func IsDescriptorLine(line string) bool {
	return reCallConn.MatchString(line)
}

// ParseDescriptor extracts the connection descriptor embedded in line.
// Call ids and connection numbers are unbounded decimal runs.
func ParseDescriptor(line string) (Descriptor, bool) {
	m := reConnDesc.FindStringSubmatch(line)
	if m == nil {
		return Descriptor{}, false
	}
	callID, ok := new(big.Int).SetString(m[3], 10)
	if !ok {
		return Descriptor{}, false
	}
	connNo, ok := new(big.Int).SetString(m[4], 10)
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{
		FirstAddress:  m[1],
		SecondAddress: m[2],
		CallID:        callID,
		ConnHex:       utils.FormatHex(connNo),
	}, true
}

// ParseInventoryRow parses an och-inst table row.
func ParseInventoryRow(line string) (models.InventoryRow, bool) {
	m := reInvRow.FindStringSubmatch(line)
	if m == nil {
		return models.InventoryRow{}, false
	}
	return models.InventoryRow{
		SourceHex:  strings.ToLower(m[1]),
		DestHex:    strings.ToLower(m[2]),
		TrafficHex: strings.ToLower(m[3]),
		ConnHex:    strings.ToLower(m[4]),
		State:      m[5],
		Raw:        line,
	}, true
}

// ParseTopNeIP returns the site address derived from a TopNeIp line.
// matched is true whenever the line is a TopNeIp line, even if the address
// could not be derived.
func ParseTopNeIP(line string) (address string, matched bool) {
	m := reInvTop.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	addr, ok := utils.EngineeredAddress(m[1])
	if !ok {
		return "", true
	}
	return addr, true
}

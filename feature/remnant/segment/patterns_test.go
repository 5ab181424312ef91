package segment

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDescriptor(t *testing.T) {
	d, ok := ParseDescriptor("[WASON]  Conn [ 30.10.10.6  30.10.20.6 5 10 ] extra")
	assert.True(t, ok)
	assert.Equal(t, "30.10.10.6", d.FirstAddress)
	assert.Equal(t, "30.10.20.6", d.SecondAddress)
	assert.Zero(t, d.CallID.Cmp(big.NewInt(5)))
	assert.Equal(t, "0x0000000a", d.ConnHex)

	_, ok = ParseDescriptor("[WASON]Conn [30.10.10.6 5 10]")
	assert.False(t, ok)
}

func TestParseDescriptor_WideNumbers(t *testing.T) {
	d, ok := ParseDescriptor("[WASON]Conn [30.10.10.6 30.10.20.6 5 99999999999999999999]")
	assert.True(t, ok)
	assert.Equal(t, "30.10.10.6", d.FirstAddress)
	assert.Equal(t, "0x56bc75e2d630fffff", d.ConnHex)

	d, ok = ParseDescriptor("[WASON]Conn [30.10.10.6 30.10.20.6 1099511627776 1]")
	assert.True(t, ok)
	assert.Equal(t, "1099511627776", d.CallID.String())
}

func TestIsDescriptorLine(t *testing.T) {
	assert.True(t, IsDescriptorLine("[WASON] Conn [1.2.3.4 1.2.3.5 1 2]"))
	assert.False(t, IsDescriptorLine("[APOPLUS]Conn [1.2.3.4 1.2.3.5 1 2]"))
	assert.False(t, IsDescriptorLine("x [WASON]Conn [1.2.3.4 1.2.3.5 1 2]"))
}

func TestParseInventoryRow(t *testing.T) {
	row, ok := ParseInventoryRow("[APOPLUS]12 0x1E0A0A06 0x1e0a1406 0x05000000 0x0000000A ... xx HEAD_DETECT_WAITING")
	assert.True(t, ok)
	assert.Equal(t, "0x1e0a0a06", row.SourceHex)
	assert.Equal(t, "0x1e0a1406", row.DestHex)
	assert.Equal(t, "0x05000000", row.TrafficHex)
	assert.Equal(t, "0x0000000a", row.ConnHex)
	assert.Equal(t, "HEAD_DETECT_WAITING", row.State)

	for _, bad := range []string{
		"[APOPLUS]No SourceNodeID DestNodeID TrafficID ConnNo ... State",
		"[APOPLUS]1 0x1 0x2 0x0005 0x0000000a ... HEAD_DETECT_WAITING",
		"[APOPLUS]1 0x1 0x2 0x00000005 0x0000000a ... IDLE",
		"[WASON]1 0x1 0x2 0x00000005 0x0000000a ... HEAD_DETECT_WAITING",
		"[APOPLUS]1 0x1e0a0a06 0x1e0a1406 0x00000005 0x0000000a ... head_detect_waiting",
		"[apoplus]1 0x1e0a0a06 0x1e0a1406 0x00000005 0x0000000a ... HEAD_DETECT_WAITING",
		"[APOPLUS]1 0X1e0a0a06 0x1e0a1406 0x00000005 0x0000000a ... HEAD_DETECT_WAITING",
	} {
		_, ok := ParseInventoryRow(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseTopNeIP(t *testing.T) {
	addr, matched := ParseTopNeIP("[APOPLUS] TopNeIp : 10.1.70.9")
	assert.True(t, matched)
	assert.Equal(t, "30.10.70.6", addr)

	addr, matched = ParseTopNeIP("[APOPLUS]TopNeIp: 10.1")
	assert.True(t, matched)
	assert.Empty(t, addr)

	_, matched = ParseTopNeIP("[APOPLUS]Something else")
	assert.False(t, matched)
}

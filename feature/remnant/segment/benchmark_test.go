package segment

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkParse measures segmentation throughput over a log of a few
// thousand lines spread across six sites.
func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	for site := 0; site < 6; site++ {
		octet := 10 + site*20
		sb.WriteString(`ZXPOTN(config)# exec diag_c("cc-cmd setcallcv SetupApo")` + "\n")
		for call := 1; call <= 300; call++ {
			fmt.Fprintf(&sb, "[WASON]Conn [30.10.%d.6 30.10.%d.6 %d %d]\n", octet, octet+20, call, call)
		}
		sb.WriteString("[WASON]ushell command finished\n")
		sb.WriteString("[APOPLUS]=== show all och-inst ===\n")
		fmt.Fprintf(&sb, "[APOPLUS]TopNeIp: 10.1.%d.9\n", octet)
		for call := 1; call <= 300; call++ {
			fmt.Fprintf(&sb, "[APOPLUS]%d 0x1e0a%02x06 0x1e0a%02x06 0x%08x 0x%08x ... HEAD_DETECT_WAITING\n", call, octet, octet+20, call, call)
		}
		sb.WriteString("[APOPLUS]ushell command finished\n")
	}
	raw := sb.String()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse(raw, nil)
	}
}

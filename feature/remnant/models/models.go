package models

import (
	"math/big"
	"sort"

	"apo-analyzer/core/reconcile"
)

// AcceptedStates lists the och-inst states that take part in matching.
// Rows in any other state are kept for display only.
var AcceptedStates = map[string]struct{}{
	"HEAD_DETECT_WAITING":  {},
	"HEAD_POWER_ADJUSTING": {},
	"HEAD_ERROR_DETECTING": {},
}

// InventoryRow is one parsed row of an APOPLUS och-inst dump.
type InventoryRow struct {
	TrafficHex string `json:"traffic_hex"`
	ConnHex    string `json:"conn_hex"`
	State      string `json:"state"`
	SourceHex  string `json:"source_hex"`
	DestHex    string `json:"dest_hex"`
	Raw        string `json:"raw"`
}

// CallRecord is a WASON connection descriptor attributed to a site.
type CallRecord struct {
	CallID  *big.Int
	ConnHex string
	Raw     string
}

// SiteBucket accumulates everything the segmenter attributed to one site.
type SiteBucket struct {
	// Address is the WASON node address that keys the bucket.
	Address string `json:"address"`
	// Name is the display name resolved from the site table.
	Name string `json:"name"`
	// CallLogLines holds raw [WASON] lines in log order.
	CallLogLines []string `json:"call_log_lines"`
	// InventoryLines holds raw [APOPLUS] lines in log order.
	InventoryLines []string `json:"inventory_lines"`
	// InventoryRows holds every parsed och-inst row, whatever its state.
	InventoryRows []InventoryRow `json:"inventory_rows"`
}

// Scheme is the encoding used to map a WASON call id to an och-inst traffic id.
type Scheme string

const (
	// SchemeDirect formats the call id as is.
	SchemeDirect Scheme = "direct"
	// SchemeShifted formats the call id shifted left by 24 bits.
	SchemeShifted Scheme = "shifted"
)

// OutcomeNoCalls marks a site without any WASON call record.
const OutcomeNoCalls reconcile.Outcome = "no_calls"

// SiteResult is the reconciliation verdict for one site.
type SiteResult struct {
	Address                   string              `json:"address"`
	Name                      string              `json:"name"`
	CallLogSnippet            string              `json:"call_log_snippet"`
	InventorySnippet          string              `json:"inventory_snippet"`
	HighlightedCallLines      map[string]struct{} `json:"-"`
	HighlightedInventoryLines map[string]struct{} `json:"-"`
	HasMismatch               bool                `json:"has_mismatch"`
	Scheme                    Scheme              `json:"scheme,omitempty"`
	Outcome                   reconcile.Outcome   `json:"outcome"`
}

// HighlightedCall returns the highlighted WASON lines, sorted.
func (r SiteResult) HighlightedCall() []string {
	return sortedKeys(r.HighlightedCallLines)
}

// HighlightedInventory returns the highlighted APOPLUS lines, sorted.
func (r SiteResult) HighlightedInventory() []string {
	return sortedKeys(r.HighlightedInventoryLines)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Link identifies a source → destination site pair.
type Link struct {
	Source string `json:"source"`
	Dest   string `json:"dest"`
}

// LinkTally counts highlighted inventory rows per link.
type LinkTally map[Link]int

package analyze

import (
	"strings"

	"apo-analyzer/core/reconcile"
	"apo-analyzer/feature/remnant/models"
	"apo-analyzer/feature/remnant/segment"
)

// Index holds the matchable inventory rows of one site keyed by traffic id
// and connection number.
type Index map[string]map[string]models.InventoryRow

// BuildIndex keeps the rows whose state is accepted. A later row for the same
// traffic id and connection number replaces an earlier one.
func BuildIndex(rows []models.InventoryRow) Index {
	idx := make(Index)
	for _, row := range rows {
		state := strings.ToUpper(strings.TrimSpace(row.State))
		if _, ok := models.AcceptedStates[state]; !ok {
			continue
		}
		p := reconcile.NewPair(row.TrafficHex, row.ConnHex)
		conns, ok := idx[p.Traffic]
		if !ok {
			conns = make(map[string]models.InventoryRow)
			idx[p.Traffic] = conns
		}
		conns[p.Conn] = row
	}
	return idx
}

// Lookup returns the row indexed under p.
func (idx Index) Lookup(p reconcile.Pair) (models.InventoryRow, bool) {
	row, ok := idx[p.Traffic][p.Conn]
	return row, ok
}

// Multiset flattens the index into (traffic, conn) pairs. Each indexed pair
// occurs once; the order follows the row order of the dump so results are
// reproducible.
func (idx Index) Multiset(rows []models.InventoryRow) *reconcile.Multiset {
	m := reconcile.NewMultiset()
	seen := make(map[reconcile.Pair]struct{})
	for _, row := range rows {
		p := reconcile.NewPair(row.TrafficHex, row.ConnHex)
		if _, ok := idx.Lookup(p); !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		m.Add(p)
	}
	return m
}

// CallRecords extracts the call records of a site. Descriptors whose first
// address is another site are ignored.
func CallRecords(site string, lines []string) []models.CallRecord {
	var out []models.CallRecord
	for _, line := range lines {
		if !segment.IsDescriptorLine(line) {
			continue
		}
		desc, ok := segment.ParseDescriptor(line)
		if !ok || desc.FirstAddress != site {
			continue
		}
		out = append(out, models.CallRecord{
			CallID:  desc.CallID,
			ConnHex: strings.ToLower(strings.TrimSpace(desc.ConnHex)),
			Raw:     line,
		})
	}
	return out
}

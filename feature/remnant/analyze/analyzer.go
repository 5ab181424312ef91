package analyze

import (
	"strings"

	"apo-analyzer/core/reconcile"
	"apo-analyzer/feature/remnant/models"
	"apo-analyzer/feature/remnant/segment"
)

// Analyzer reconciles WASON call records against APOPLUS och-inst rows for
// every site bucket.
//
// An Analyzer owns its result list and link tally. It is not safe for
// concurrent use.
type Analyzer struct {
	sites   map[string]string
	results []models.SiteResult
	links   models.LinkTally
}

// New creates an Analyzer resolving link endpoints through sites.
func New(sites map[string]string) *Analyzer {
	return &Analyzer{
		sites: sites,
		links: make(models.LinkTally),
	}
}

// Analyze rebuilds the results from buckets, in bucket order.
func (a *Analyzer) Analyze(buckets *segment.Buckets) []models.SiteResult {
	a.results = a.results[:0]
	a.links = make(models.LinkTally)

	for _, bucket := range buckets.All() {
		result, flagged := a.analyzeSite(bucket)
		for _, row := range flagged {
			a.links[LinkOf(row, a.sites).Names]++
		}
		a.results = append(a.results, result)
	}
	return a.Results()
}

// Results returns a copy of the last results.
func (a *Analyzer) Results() []models.SiteResult {
	out := make([]models.SiteResult, len(a.results))
	copy(out, a.results)
	return out
}

// Links returns a copy of the highlighted-row tally per link.
func (a *Analyzer) Links() models.LinkTally {
	out := make(models.LinkTally, len(a.links))
	for k, v := range a.links {
		out[k] = v
	}
	return out
}

// analyzeSite classifies one bucket and returns the inventory rows it
// highlighted.
func (a *Analyzer) analyzeSite(bucket *models.SiteBucket) (models.SiteResult, []models.InventoryRow) {
	result := models.SiteResult{
		Address:                   bucket.Address,
		Name:                      bucket.Name,
		CallLogSnippet:            strings.Join(bucket.CallLogLines, "\n"),
		InventorySnippet:          strings.Join(bucket.InventoryLines, "\n"),
		HighlightedCallLines:      make(map[string]struct{}),
		HighlightedInventoryLines: make(map[string]struct{}),
	}

	idx := BuildIndex(bucket.InventoryRows)
	calls := CallRecords(bucket.Address, bucket.CallLogLines)
	if len(calls) == 0 {
		result.Outcome = models.OutcomeNoCalls
		return result, nil
	}

	scheme := InferScheme(calls, idx)
	result.Scheme = scheme

	callPairs := make([]reconcile.Pair, len(calls))
	for i, c := range calls {
		callPairs[i] = reconcile.NewPair(TrafficHex(c.CallID, scheme), c.ConnHex)
	}
	reference := reconcile.NewMultiset(callPairs...)
	observed := idx.Multiset(bucket.InventoryRows)

	cmp := reconcile.Compare(reference, observed)
	result.Outcome = cmp.Outcome

	var flagged []models.InventoryRow
	highlightRow := func(p reconcile.Pair) {
		row, ok := idx.Lookup(p)
		if !ok {
			return
		}
		flagged = append(flagged, row)
		result.HighlightedInventoryLines[row.Raw] = struct{}{}
	}

	switch cmp.Outcome {
	case reconcile.OutcomeSurplus:
		for _, p := range cmp.Extra {
			highlightRow(p)
		}
		result.HasMismatch = len(result.HighlightedInventoryLines) > 0
	case reconcile.OutcomeDivergent:
		for _, p := range cmp.Divergent {
			if reference.Contains(p) {
				for i, c := range calls {
					if callPairs[i] == p {
						result.HighlightedCallLines[c.Raw] = struct{}{}
					}
				}
			}
			highlightRow(p)
		}
		result.HasMismatch = len(result.HighlightedCallLines) > 0 || len(result.HighlightedInventoryLines) > 0
	}

	return result, flagged
}

package analyze_test

import (
	"testing"

	"apo-analyzer/feature/remnant/analyze"
	"apo-analyzer/feature/remnant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkOf(t *testing.T) {
	link := analyze.LinkOf(models.InventoryRow{SourceHex: "0x1e0a0a06", DestHex: "0x1e0a6e06"}, sites)

	assert.Equal(t, models.Link{Source: "Jasmine", Dest: "30.10.110.6"}, link.Names)
	assert.Equal(t, "Jasmine (30.10.10.6) → 30.10.110.6 (30.10.110.6)", link.Label())
}

func TestGroupByLink(t *testing.T) {
	a := "[APOPLUS]1 0x1e0a0a06 0x1e0a1406 0x00000099 0x00000001 ... HEAD_ERROR_DETECTING"
	b := "[APOPLUS]2 0x1e0a1406 0x1e0a0a06 0x00000098 0x00000001 ... HEAD_ERROR_DETECTING"
	c := "[APOPLUS]3 0x1e0a0a06 0x1e0a1406 0x00000097 0x00000001 ... HEAD_ERROR_DETECTING"
	result := models.SiteResult{
		InventorySnippet: a + "\n" + b + "\n" + c + "\n[APOPLUS]4 not highlighted",
		HighlightedInventoryLines: map[string]struct{}{
			a: {}, b: {}, c: {},
		},
	}

	groups := analyze.GroupByLink(result, sites)
	require.Len(t, groups, 2)
	assert.Equal(t, "Jasmine (30.10.10.6) → SNI-POI (30.10.20.6)", groups[0].Link.Label())
	assert.Equal(t, []string{a, c}, groups[0].Lines)
	assert.Equal(t, []string{b}, groups[1].Lines)
}

func TestSortedLinks(t *testing.T) {
	tally := models.LinkTally{
		{Source: "B", Dest: "A"}: 1,
		{Source: "A", Dest: "B"}: 1,
		{Source: "C", Dest: "D"}: 3,
	}

	got := analyze.SortedLinks(tally)
	require.Len(t, got, 3)
	assert.Equal(t, models.Link{Source: "C", Dest: "D"}, got[0].Link)
	assert.Equal(t, models.Link{Source: "A", Dest: "B"}, got[1].Link)
	assert.Equal(t, models.Link{Source: "B", Dest: "A"}, got[2].Link)
}

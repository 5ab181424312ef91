package remnant

import (
	"fmt"
	"sort"
	"strings"

	"apo-analyzer/feature/remnant/analyze"
	"apo-analyzer/feature/remnant/models"
)

// View selects which sites a report lists.
type View string

const (
	// ViewAll lists every site.
	ViewAll View = "all"
	// ViewRemnant lists flagged sites only.
	ViewRemnant View = "apo"
	// ViewClean lists sites without remnants.
	ViewClean View = "clean"
)

// ParseView accepts "all", "apo" or "clean". Empty means all.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ViewAll, nil
	case ViewAll, ViewRemnant, ViewClean:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q (want all, apo or clean)", s)
	}
}

// Overall statuses.
const (
	StatusNoData   = "No data"
	StatusNormal   = "Normal"
	StatusAbnormal = "Abnormal"
)

// KPI summarizes a set of site results.
type KPI struct {
	TotalSites   int    `json:"total_sites"`
	RemnantSites int    `json:"remnant_sites"`
	CleanSites   int    `json:"clean_sites"`
	Status       string `json:"status"`
}

// Summarize counts flagged and clean sites.
func Summarize(results []models.SiteResult) KPI {
	kpi := KPI{TotalSites: len(results), Status: StatusNoData}
	for _, r := range results {
		if r.HasMismatch {
			kpi.RemnantSites++
		}
	}
	kpi.CleanSites = kpi.TotalSites - kpi.RemnantSites
	switch {
	case kpi.RemnantSites > 0:
		kpi.Status = StatusAbnormal
	case kpi.TotalSites > 0:
		kpi.Status = StatusNormal
	}
	return kpi
}

// FilterView keeps the results selected by view, sorted by site name.
func FilterView(results []models.SiteResult, view View) []models.SiteResult {
	out := make([]models.SiteResult, 0, len(results))
	for _, r := range results {
		switch view {
		case ViewRemnant:
			if !r.HasMismatch {
				continue
			}
		case ViewClean:
			if r.HasMismatch {
				continue
			}
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Address < out[j].Address
	})
	return out
}

// SiteReport is a site result with its highlighted lines spelled out.
type SiteReport struct {
	models.SiteResult
	HighlightedCall      []string            `json:"highlighted_call_lines"`
	HighlightedInventory []string            `json:"highlighted_inventory_lines"`
	Links                []analyze.LinkGroup `json:"links,omitempty"`
}

// Report is the outcome of one analysis.
type Report struct {
	Digest  string              `json:"digest"`
	RunID   uint                `json:"run_id,omitempty"`
	View    View                `json:"view"`
	KPI     KPI                 `json:"kpi"`
	Sites   []SiteReport        `json:"sites"`
	Links   []analyze.LinkCount `json:"links"`
	Summary string              `json:"summary,omitempty"`
}

// Analysis is what the service keeps for a raw log: the full result list
// and link tally, before any view is applied.
type Analysis struct {
	Digest  string
	Results []models.SiteResult
	Links   models.LinkTally
}

// BuildReport renders analysis under view.
func BuildReport(a *Analysis, sites map[string]string, view View) Report {
	rep := Report{
		Digest: a.Digest,
		View:   view,
		KPI:    Summarize(a.Results),
		Links:  analyze.SortedLinks(a.Links),
	}
	for _, r := range FilterView(a.Results, view) {
		sr := SiteReport{
			SiteResult:           r,
			HighlightedCall:      r.HighlightedCall(),
			HighlightedInventory: r.HighlightedInventory(),
		}
		if r.HasMismatch {
			sr.Links = analyze.GroupByLink(r, sites)
		}
		rep.Sites = append(rep.Sites, sr)
	}
	rep.Summary = LinkSummary(a.Results, sites)
	return rep
}

// LinkSummary renders the highlighted inventory rows of every flagged site,
// grouped by link. Each group repeats the och-inst header line when the
// snippet has one. It is empty when no site is flagged.
func LinkSummary(results []models.SiteResult, sites map[string]string) string {
	var b strings.Builder
	for _, r := range results {
		if !r.HasMismatch {
			continue
		}
		fmt.Fprintf(&b, "\n**Site: %s (%s)**\n\n", r.Name, r.Address)

		header := headerLine(r.InventorySnippet)
		for _, g := range analyze.GroupByLink(r, sites) {
			fmt.Fprintf(&b, "   **%s**\n```\n", g.Link.Label())
			if header != "" {
				b.WriteString(header + "\n")
			}
			for _, line := range g.Lines {
				b.WriteString(line + "\n")
			}
			b.WriteString("```\n\n")
		}
	}
	return b.String()
}

func headerLine(snippet string) string {
	for _, line := range strings.Split(snippet, "\n") {
		if strings.Contains(line, "[APOPLUS]No") && strings.Contains(line, "SourceNodeID") {
			return line
		}
	}
	return ""
}

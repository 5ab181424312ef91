package analyze

import (
	"fmt"
	"sort"
	"strings"

	"apo-analyzer/core/utils"
	"apo-analyzer/feature/remnant/models"
	"apo-analyzer/feature/remnant/segment"
)

// Endpoint is a resolved link endpoint.
type Endpoint struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// ResolvedLink is a link with both endpoints resolved.
type ResolvedLink struct {
	Names  models.Link `json:"names"`
	Source Endpoint    `json:"source"`
	Dest   Endpoint    `json:"dest"`
}

// Label renders the link as "src (ip) → dst (ip)".
func (l ResolvedLink) Label() string {
	return fmt.Sprintf("%s (%s) → %s (%s)", l.Source.Name, l.Source.Address, l.Dest.Name, l.Dest.Address)
}

// LinkOf resolves the source and destination of an inventory row.
func LinkOf(row models.InventoryRow, sites map[string]string) ResolvedLink {
	src := resolve(row.SourceHex, sites)
	dst := resolve(row.DestHex, sites)
	return ResolvedLink{
		Names:  models.Link{Source: src.Name, Dest: dst.Name},
		Source: src,
		Dest:   dst,
	}
}

func resolve(hex string, sites map[string]string) Endpoint {
	addr := utils.HexToAddress(hex)
	name, ok := sites[addr]
	if !ok {
		name = addr
	}
	return Endpoint{Address: addr, Name: name}
}

// LinkGroup is a set of highlighted inventory lines sharing one link.
type LinkGroup struct {
	Link  ResolvedLink `json:"link"`
	Lines []string     `json:"lines"`
}

// GroupByLink groups the highlighted inventory lines of result by link.
// Lines that no longer parse as och-inst rows are skipped. Groups are
// sorted by label, lines keep snippet order.
func GroupByLink(result models.SiteResult, sites map[string]string) []LinkGroup {
	byLabel := make(map[string]*LinkGroup)
	for _, line := range splitLines(result.InventorySnippet) {
		if _, ok := result.HighlightedInventoryLines[line]; !ok {
			continue
		}
		row, ok := segment.ParseInventoryRow(line)
		if !ok {
			continue
		}
		link := LinkOf(row, sites)
		label := link.Label()
		group, ok := byLabel[label]
		if !ok {
			group = &LinkGroup{Link: link}
			byLabel[label] = group
		}
		group.Lines = append(group.Lines, line)
	}

	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]LinkGroup, 0, len(labels))
	for _, label := range labels {
		out = append(out, *byLabel[label])
	}
	return out
}

// SortedLinks returns the tally entries ordered by count, then by names.
func SortedLinks(tally models.LinkTally) []LinkCount {
	out := make([]LinkCount, 0, len(tally))
	for link, n := range tally {
		out = append(out, LinkCount{Link: link, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Link.Source != out[j].Link.Source {
			return out[i].Link.Source < out[j].Link.Source
		}
		return out[i].Link.Dest < out[j].Link.Dest
	})
	return out
}

// LinkCount is one tally entry.
type LinkCount struct {
	Link  models.Link `json:"link"`
	Count int         `json:"count"`
}

func splitLines(snippet string) []string {
	if snippet == "" {
		return nil
	}
	return strings.Split(snippet, "\n")
}

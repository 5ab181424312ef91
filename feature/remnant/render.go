package remnant

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cleanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	markStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// Render formats rep for a terminal: a KPI header, then per site the WASON
// and APOPLUS snippets side by side with highlighted lines in red, then the
// link tally.
func Render(rep Report) string {
	status := cleanStyle.Render(rep.KPI.Status)
	if rep.KPI.Status == StatusAbnormal {
		status = flagStyle.Render(rep.KPI.Status)
	}

	lines := []string{
		titleStyle.Render("APO remnant analysis") + "  " + status,
		metaStyle.Render(fmt.Sprintf("sites %d | remnant %d | clean %d | view %s",
			rep.KPI.TotalSites, rep.KPI.RemnantSites, rep.KPI.CleanSites, rep.View)),
	}
	if rep.RunID != 0 {
		lines = append(lines, metaStyle.Render(fmt.Sprintf("saved as run %d", rep.RunID)))
	}

	for _, site := range rep.Sites {
		badge := cleanStyle.Render("CLEAN")
		if site.HasMismatch {
			badge = flagStyle.Render("REMNANT")
		}
		lines = append(lines, "",
			sectionStyle.Render(fmt.Sprintf("%s (%s)", site.Name, site.Address))+"  "+badge+"  "+
				metaStyle.Render(fmt.Sprintf("%s %s", site.Outcome, site.Scheme)))

		calls := panel("WASON", site.CallLogSnippet, site.HighlightedCallLines)
		inv := panel("APOPLUS", site.InventorySnippet, site.HighlightedInventoryLines)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, calls, " ", inv))
	}

	if len(rep.Links) > 0 {
		lines = append(lines, "", sectionStyle.Render("Remnants per link:"))
		for _, lc := range rep.Links {
			lines = append(lines, fmt.Sprintf("  - %s → %s: %d", lc.Link.Source, lc.Link.Dest, lc.Count))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func panel(title, snippet string, marked map[string]struct{}) string {
	out := []string{metaStyle.Render(title)}
	if snippet == "" {
		out = append(out, metaStyle.Render("(no lines)"))
		return panelStyle.Render(strings.Join(out, "\n"))
	}
	for _, line := range strings.Split(snippet, "\n") {
		if _, ok := marked[line]; ok {
			line = markStyle.Render(line)
		}
		out = append(out, line)
	}
	return panelStyle.Render(strings.Join(out, "\n"))
}

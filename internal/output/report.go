package output

import (
	"fmt"
	"strconv"
)

// RunSummary is the result of a generate run as reported to the user.
type RunSummary struct {
	Message     string          `json:"message"`
	Documents   int             `json:"documents"`
	Skipped     int             `json:"skipped"`
	Types       int             `json:"types"`
	Assemblies  []AssemblyCount `json:"assemblies"`
	Files       int             `json:"files"`
	BrokenLinks []BrokenLink    `json:"broken_links"`
}

// AssemblyCount is the number of pages generated for one assembly.
type AssemblyCount struct {
	Name  string `json:"name"`
	Types int    `json:"types"`
}

// BrokenLink is a link in a generated page whose target was not generated.
type BrokenLink struct {
	File   string `json:"file"`
	Target string `json:"target"`
	Slug   string `json:"slug"`
}

// Summary reports a finished run. JSON mode writes the summary as one
// object with empty lists instead of nulls.
func (p *Printer) Summary(s RunSummary) error {
	if p.json {
		if s.Assemblies == nil {
			s.Assemblies = []AssemblyCount{}
		}
		if s.BrokenLinks == nil {
			s.BrokenLinks = []BrokenLink{}
		}
		return p.writeJSON(s)
	}

	mustWrite(fmt.Fprintln(p.w, p.styles.success.Render(s.Message)))
	p.keyValue("Documents", strconv.Itoa(s.Documents))
	if s.Skipped > 0 {
		p.keyValue("Skipped", strconv.Itoa(s.Skipped))
	}
	p.keyValue("Types", strconv.Itoa(s.Types))
	p.keyValue("Files", strconv.Itoa(s.Files))

	if len(s.Assemblies) > 0 {
		rows := make([][]string, 0, len(s.Assemblies))
		for _, asm := range s.Assemblies {
			rows = append(rows, []string{asm.Name, strconv.Itoa(asm.Types)})
		}
		p.section("Assemblies")
		p.table([]string{"Assembly", "Types"}, rows)
	}

	if len(s.BrokenLinks) > 0 {
		p.section("Broken links")
		for _, b := range s.BrokenLinks {
			mustWrite(fmt.Fprintf(p.w, "%s → %s (%s)\n", p.styles.path.Render(b.File), b.Target, b.Slug))
		}
		p.Warn("%d links point to pages that were not generated", len(s.BrokenLinks))
	}
	return nil
}

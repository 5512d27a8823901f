package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary renders the report as aligned plain text for terminals.
func (r Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "run %s generated %s\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if r.InputPath != "" {
		fmt.Fprintf(&b, "input %s\n", r.InputPath)
	}
	fmt.Fprintf(&b, "documents %d, terms %d\n", len(r.Documents), len(r.Terms))

	if len(r.Terms) > 0 {
		b.WriteString("\nTerm frequencies\n")
		headers := append([]string{"term"}, r.Documents...)
		headers = append(headers, "combined")
		rightAlign := map[int]bool{}
		for i := 1; i < len(headers); i++ {
			rightAlign[i] = true
		}
		rows := make([][]string, 0, len(r.Terms))
		for _, row := range r.Terms {
			cells := make([]string, 0, len(row.Counts)+2)
			cells = append(cells, row.Term)
			for _, count := range row.Counts {
				cells = append(cells, strconv.Itoa(count))
			}
			cells = append(cells, strconv.Itoa(row.Combined))
			rows = append(rows, cells)
		}
		writeLines(&b, formatTable(headers, rows, rightAlign))
	}

	if len(r.Complexity) > 0 {
		b.WriteString("\nLexical complexity\n")
		headers := []string{"document", "tokens", "distinct", "hapaxes", "ttr", "hapax ratio"}
		rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
		rows := make([][]string, 0, len(r.Complexity))
		for _, row := range r.Complexity {
			rows = append(rows, []string{
				row.Document,
				strconv.Itoa(row.Tokens),
				strconv.Itoa(row.Distinct),
				strconv.Itoa(row.Hapaxes),
				formatRatio(row.TTR),
				formatRatio(row.HapaxRatio),
			})
		}
		writeLines(&b, formatTable(headers, rows, rightAlign))
	}

	for _, top := range r.TopTerms {
		if len(top.Terms) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nTop terms: %s\n", top.Document)
		rows := make([][]string, 0, len(top.Terms))
		for _, entry := range top.Terms {
			rows = append(rows, []string{entry.Term, strconv.Itoa(entry.Count)})
		}
		writeLines(&b, formatTable([]string{"term", "count"}, rows, map[int]bool{1: true}))
	}

	fmt.Fprintf(&b, "\nTerms above threshold %d: ", r.FrequentTerms.Threshold)
	if len(r.FrequentTerms.Terms) == 0 {
		b.WriteString("none\n")
	} else {
		b.WriteString(strings.Join(r.FrequentTerms.Terms, ", "))
		b.WriteString("\n")
	}

	if len(r.WordCloud) > 0 {
		b.WriteString("\nWord cloud\n")
		// Entries are sorted by descending weight, so the first sets
		// the scale.
		maxWeight := r.WordCloud[0].Weight
		for _, entry := range r.WordCloud {
			fmt.Fprintf(&b, "%-20s %s %d\n", entry.Term, bar(entry.Weight, maxWeight), entry.Weight)
		}
	}

	return b.String()
}

const maxBarWidth = 40

func bar(weight, maxWeight int) string {
	if weight <= 0 || maxWeight <= 0 {
		return ""
	}
	width := weight
	if maxWeight > maxBarWidth {
		width = weight * maxBarWidth / maxWeight
		if width < 1 {
			width = 1
		}
	}
	return strings.Repeat("#", width)
}

func writeLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

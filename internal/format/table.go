package format

import "strings"

// Table renders a markdown table: header row, one "----" separator per
// column, then the data rows. Empty cells render as "N/A".
func Table(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "----"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |")
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			cells[i] = "N/A"
			if i < len(row) && row[i] != "" {
				cells[i] = row[i]
			}
		}
		b.WriteString("\n| " + strings.Join(cells, " | ") + " |")
	}
	return b.String()
}

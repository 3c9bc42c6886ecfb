package export

import "strings"

// escapeField applies the dashboard's CSV quoting rule: a value containing
// the delimiter, a double quote, or a newline is wrapped in double quotes
// with internal quotes doubled. Plain values pass through unquoted.
func escapeField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// writeCSV renders a header row plus data rows, comma-delimited,
// newline-separated, with no trailing newline.
func writeCSV(b *strings.Builder, columns []string, rows [][]string) {
	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(col))
	}
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(field))
		}
	}
}

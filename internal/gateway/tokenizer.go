package gateway

import "strings"

// Tokenize splits comma-delimited text into rows of fields.
//
// A double quote toggles quoted mode and is dropped from the field; commas in
// quoted mode are kept as content. Doubled quotes are not treated as an
// escaped quote. Lines containing only whitespace are skipped. The header
// row, if any, is returned as the first row.
func Tokenize(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var (
			row          []string
			field        strings.Builder
			insideQuotes bool
		)
		for _, ch := range line {
			switch {
			case ch == '"':
				insideQuotes = !insideQuotes
			case ch == ',' && !insideQuotes:
				row = append(row, field.String())
				field.Reset()
			default:
				field.WriteRune(ch)
			}
		}
		row = append(row, field.String())
		rows = append(rows, row)
	}
	return rows
}

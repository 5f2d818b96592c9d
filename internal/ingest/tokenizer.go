package ingest

import "strings"

// TokenizeLine splits one CSV line into its ordered field strings. Fields
// are comma-separated except inside a double-quoted span; a doubled quote
// inside a quoted span is an escaped literal quote. Each field is trimmed.
//
// Malformed quoting never errors: an unterminated quote simply runs to the
// end of the line.
func TokenizeLine(line string) []string {
	fields := make([]string, 0, 8)
	var b strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				b.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))

	return fields
}

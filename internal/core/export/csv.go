package export

import "strings"

// CSV renders a header line followed by one line per row. Every field is
// double-quoted with embedded quotes doubled, and lines end with CRLF.
func CSV[T any](rows []T, columns []Column[T]) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	header, cells := Table(rows, columns)

	var b strings.Builder
	writeLine(&b, header)
	for _, line := range cells {
		b.WriteString("\r\n")
		writeLine(&b, line)
	}
	return []byte(b.String()), nil
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}

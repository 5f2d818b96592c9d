// Package ingest turns raw CSV text from ad-network and attribution exports
// into canonical campaign records: tokenize lines, repair and classify the
// header, then map rows by the detected layout.
package ingest

import (
	"fmt"
	"strings"

	"adpulse/internal/domain"
)

// Parse runs the full ingestion pipeline over one CSV text blob. The blob
// may have been assembled from any number of upload chunks; Parse only sees
// the concatenated whole. The first header field is repaired before
// detection to strip upstream export corruption.
func Parse(text string) ([]domain.CanonicalRecord, Format, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, FormatGeneric, fmt.Errorf("empty csv input")
	}

	header := RepairHeader(TokenizeLine(lines[0]))
	format := DetectFormat(header)

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, TokenizeLine(line))
	}

	return MapRecords(format, header, rows), format, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

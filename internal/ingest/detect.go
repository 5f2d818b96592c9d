package ingest

import "strings"

// Format classifies the tabular layout of an uploaded file.
type Format int

const (
	// FormatGeneric maps columns by header name lookup.
	FormatGeneric Format = iota
	// FormatDetailed is the richest schema, including retention and
	// game-completion columns.
	FormatDetailed
	// FormatAzula is the platform-less single-app Azula export.
	FormatAzula
	// FormatBusFrenzy is the Bus Frenzy revenue export.
	FormatBusFrenzy
)

func (f Format) String() string {
	switch f {
	case FormatDetailed:
		return "detailed"
	case FormatAzula:
		return "azula"
	case FormatBusFrenzy:
		return "busfrenzy"
	default:
		return "generic"
	}
}

// Known corruption markers occasionally prepended to the first header field
// by upstream export tooling.
var corruptionMarkers = []string{"m ", "gönder"}

// RepairHeader strips known corruption markers from the first header field
// so the app column can be found. The input slice is not modified.
func RepairHeader(header []string) []string {
	if len(header) == 0 {
		return header
	}
	first := header[0]
	repaired := first
	for changed := true; changed; {
		changed = false
		for _, marker := range corruptionMarkers {
			if strings.HasPrefix(repaired, marker) {
				repaired = strings.TrimSpace(strings.TrimPrefix(repaired, marker))
				changed = true
			}
		}
	}
	if repaired == first {
		return header
	}
	out := make([]string, len(header))
	copy(out, header)
	out[0] = repaired
	return out
}

// DetectFormat classifies a header row by column presence, not order.
// Detailed is mutually exclusive with the revenue exports; Azula (no app
// column) is checked before BusFrenzy because the Azula layout also carries
// revenue columns. Anything unrecognized falls through to Generic.
func DetectFormat(header []string) Format {
	cols := make(map[string]bool, len(header))
	for _, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = true
	}

	switch {
	case cols["ecpi"] && cols["adjust_cost"]:
		return FormatDetailed
	case cols["all_revenue"] && !cols["app"]:
		return FormatAzula
	case cols["all_revenue"] && cols["cost"] && cols["roas_d0"]:
		return FormatBusFrenzy
	default:
		return FormatGeneric
	}
}

package aggregate

import (
	"sort"
	"strings"

	"adpulse/internal/decode"
	"adpulse/internal/domain"
)

// Fingerprint derives a content fingerprint for a record set: the
// sorted-unique game names joined with the sorted-unique inferred
// countries, pipe-delimited. Two uploads with equal fingerprints describe
// the same campaign.
func Fingerprint(records []domain.CanonicalRecord) string {
	games := sortedKeys(gameSet(records))

	countries := make(map[string]struct{})
	for _, rec := range records {
		countries[decode.ParseCampaignKey(rec.CampaignNetwork).Country] = struct{}{}
	}

	return strings.Join(append(games, sortedKeys(countries)...), "|")
}

// IsSameCampaign reports whether two record sets describe the same campaign:
// equal fingerprints, or a game-name overlap above 50%.
func IsSameCampaign(a, b []domain.CanonicalRecord) bool {
	if Fingerprint(a) == Fingerprint(b) {
		return true
	}

	ga, gb := gameSet(a), gameSet(b)
	intersection := 0
	for g := range ga {
		if _, ok := gb[g]; ok {
			intersection++
		}
	}
	union := len(ga) + len(gb) - intersection
	return union > 0 && float64(intersection)/float64(union) > 0.5
}

// MergeRecords merges an incoming upload into an existing record set by the
// per-row natural key. Existing rows are kept; an incoming row sharing a key
// replaces the old row in place; new keys append. Merging a set with itself
// is a no-op, which makes identical re-uploads idempotent.
func MergeRecords(existing, incoming []domain.CanonicalRecord) []domain.CanonicalRecord {
	out := make([]domain.CanonicalRecord, len(existing))
	copy(out, existing)

	index := make(map[string]int, len(out))
	for i, rec := range out {
		index[rec.Key()] = i
	}

	for _, rec := range incoming {
		if i, ok := index[rec.Key()]; ok {
			out[i] = rec
			continue
		}
		index[rec.Key()] = len(out)
		out = append(out, rec)
	}
	return out
}

func gameSet(records []domain.CanonicalRecord) map[string]struct{} {
	games := make(map[string]struct{})
	for _, rec := range records {
		games[StripPlatformSuffix(rec.App)] = struct{}{}
	}
	return games
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

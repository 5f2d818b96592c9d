// Package aggregate folds canonical campaign records into per-day,
// per-(game, country, platform, publisher) time series.
package aggregate

import (
	"math"
	"sort"
	"strings"
	"time"

	"adpulse/internal/decode"
	"adpulse/internal/domain"
)

const dayLayout = "2006-01-02"

// Aggregator groups records and merges same-day rows. The zero value is
// ready to use; set Undecoded to collect identifiers the decoder returned
// verbatim.
type Aggregator struct {
	Undecoded decode.Collector
}

// Aggregate groups records with a default Aggregator.
func Aggregate(records []domain.CanonicalRecord) []domain.Group {
	return Aggregator{}.Aggregate(records)
}

// Per-title platform fallbacks for campaigns whose keys carry no platform
// information at all. The dashboard must show something.
var titlePlatforms = map[string]string{
	"Azula":      "iOS",
	"Bus Frenzy": "Android",
	"Slingo":     "Android",
	"Sky Rails":  "Android",
}

// Aggregate builds one group per (game, country, platform, publisher) key
// and folds every record into its group's day buckets. The result is fully
// recomputed on every call; no state carries over between invocations.
func (a Aggregator) Aggregate(records []domain.CanonicalRecord) []domain.Group {
	groups := make(map[string]*domain.Group)

	for _, rec := range records {
		game := StripPlatformSuffix(rec.App)
		facets := decode.ParseCampaignKeyWith(rec.CampaignNetwork, a.Undecoded)
		platform := resolvePlatform(rec, facets, game)
		publisher := decode.NormalizePublisherWith(rec.AdgroupNetwork, a.Undecoded)

		key := game + "|" + facets.Country + "|" + platform + "|" + publisher
		g, ok := groups[key]
		if !ok {
			g = &domain.Group{
				Game:      game,
				Country:   facets.Country,
				Platform:  platform,
				Publisher: publisher,
			}
			groups[key] = g
		}
		foldRecord(g, rec)
	}

	out := make([]domain.Group, 0, len(groups))
	for _, g := range groups {
		sortBuckets(g.Days)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key() < out[j].Key()
	})
	return out
}

// StripPlatformSuffix removes a trailing " Android"/" iOS" platform marker
// from an app label, yielding the game name.
func StripPlatformSuffix(app string) string {
	app = strings.TrimSpace(app)
	for _, suffix := range []string{" Android", " iOS"} {
		if strings.HasSuffix(app, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(app, suffix))
		}
	}
	return app
}

// resolvePlatform prefers the parsed facet and falls back to text
// heuristics: upstream campaign keys are frequently missing platform
// information.
func resolvePlatform(rec domain.CanonicalRecord, facets decode.Facets, game string) string {
	if facets.Platform == decode.PlatformAndroid || facets.Platform == decode.PlatformIOS {
		return facets.Platform
	}
	for _, text := range []string{rec.App, rec.CampaignNetwork} {
		low := strings.ToLower(text)
		if strings.Contains(low, "android") {
			return decode.PlatformAndroid
		}
		if strings.Contains(low, "ios") {
			return decode.PlatformIOS
		}
	}
	if p, ok := titlePlatforms[game]; ok {
		return p
	}
	// Raw candidate token from the parser, or Unknown.
	return facets.Platform
}

// foldRecord inserts a new day bucket or merges into an existing one.
func foldRecord(g *domain.Group, rec domain.CanonicalRecord) {
	for i := range g.Days {
		if g.Days[i].Date == rec.Day {
			mergeBucket(&g.Days[i], rec)
			return
		}
	}
	b := domain.DayBucket{Date: rec.Day, Installs: rec.Installs}
	for m, v := range rec.Metrics {
		b.SetMetric(m, v)
	}
	g.Days = append(g.Days, b)
}

// mergeBucket merges a same-day record into an existing bucket: installs
// sum, rate metrics become the installs-weighted average of both sides,
// absolute metrics sum. A metric is present in the result when either side
// had it; the missing side contributes 0.
func mergeBucket(b *domain.DayBucket, rec domain.CanonicalRecord) {
	prevInstalls := b.Installs
	total := prevInstalls + rec.Installs

	seen := make(map[domain.Metric]bool, len(b.Metrics)+len(rec.Metrics))
	for m := range b.Metrics {
		seen[m] = true
	}
	for m := range rec.Metrics {
		seen[m] = true
	}

	for m := range seen {
		pv := finite(b.Metrics[m])
		nv := finite(rec.Metrics[m])
		if m.Weighted() {
			if total == 0 {
				b.SetMetric(m, 0)
			} else {
				b.SetMetric(m, (pv*float64(prevInstalls)+nv*float64(rec.Installs))/float64(total))
			}
		} else {
			b.SetMetric(m, pv+nv)
		}
	}
	b.Installs = total
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// sortBuckets orders buckets chronologically. Buckets with unparseable
// dates sort after dated ones, by raw string.
func sortBuckets(days []domain.DayBucket) {
	sort.SliceStable(days, func(i, j int) bool {
		di, erri := time.Parse(dayLayout, days[i].Date)
		dj, errj := time.Parse(dayLayout, days[j].Date)
		switch {
		case erri == nil && errj == nil:
			return di.Before(dj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return days[i].Date < days[j].Date
		}
	})
}

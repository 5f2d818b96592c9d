package domain

import (
	"strings"
	"time"
)

// DayBucket holds the merged values for one calendar day inside a group.
type DayBucket struct {
	Date     string             `json:"date"`
	Installs int                `json:"installs"`
	Metrics  map[Metric]float64 `json:"metrics,omitempty"`
}

// Metric returns the value of a bucket metric and whether it is defined.
func (b DayBucket) Metric(m Metric) (float64, bool) {
	v, ok := b.Metrics[m]
	return v, ok
}

// SetMetric defines a metric value on the bucket.
func (b *DayBucket) SetMetric(m Metric, v float64) {
	if b.Metrics == nil {
		b.Metrics = make(map[Metric]float64)
	}
	b.Metrics[m] = v
}

// Group is the aggregation unit: one (game, country, platform, publisher)
// tuple owning an ordered-by-date series of day buckets.
type Group struct {
	Game      string      `json:"game"`
	Country   string      `json:"country"`
	Platform  string      `json:"platform"`
	Publisher string      `json:"publisher"`
	Days      []DayBucket `json:"days"`
}

// Key is the exact string join used for group identity.
func (g Group) Key() string {
	return g.Game + "|" + g.Country + "|" + g.Platform + "|" + g.Publisher
}

// HasDetailedData reports whether any bucket carries retention or
// game-completion metrics.
func (g Group) HasDetailedData() bool {
	for _, d := range g.Days {
		for m := range d.Metrics {
			s := string(m)
			if strings.HasPrefix(s, "retention_d") || strings.HasPrefix(s, "level_") {
				return true
			}
		}
	}
	return false
}

// Dataset is one uploaded file: raw chunk-assembled CSV text before commit,
// canonical records after.
type Dataset struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Raw       string            `json:"-"`
	Chunks    int               `json:"chunks"`
	Committed bool              `json:"committed"`
	Records   []CanonicalRecord `json:"records,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Settings are the per-file dashboard preferences, keyed by file ID.
type Settings struct {
	DateFrom     string   `json:"date_from" mapstructure:"date_from"`
	DateTo       string   `json:"date_to" mapstructure:"date_to"`
	HiddenTables []string `json:"hidden_tables" mapstructure:"hidden_tables"`
	KPICards     []string `json:"kpi_cards" mapstructure:"kpi_cards"`
}

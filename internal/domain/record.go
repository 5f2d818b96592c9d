package domain

import (
	"fmt"
	"strings"
)

// Metric identifies one optional numeric column of a canonical record.
// Presence of a key in a Metrics map is the defined/undefined distinction:
// a metric absent from the source format is absent from the map, never zero.
type Metric string

const (
	MetricCost        Metric = "cost"
	MetricAdjustCost  Metric = "adjust_cost"
	MetricAdRevenue   Metric = "ad_revenue"
	MetricAllRevenue  Metric = "all_revenue"
	MetricGrossProfit Metric = "gross_profit"
	MetricECPI        Metric = "ecpi"
)

// Day offsets for ROAS and retention are fixed enumerated sets, never dynamic.
var (
	ROASOffsets      = []int{0, 1, 2, 3, 7, 14, 30, 45}
	RetentionOffsets = []int{1, 3, 7, 14, 30}
	LevelThresholds  = []int{10, 25, 50}
)

// ROASMetric returns the metric key for ROAS at the given day offset.
func ROASMetric(day int) Metric {
	return Metric(fmt.Sprintf("roas_d%d", day))
}

// RetentionMetric returns the metric key for retention at the given day offset.
func RetentionMetric(day int) Metric {
	return Metric(fmt.Sprintf("retention_d%d", day))
}

// LevelMetric returns the metric key for completion events at a level threshold.
func LevelMetric(level int) Metric {
	return Metric(fmt.Sprintf("level_%d", level))
}

// Weighted reports whether same-day rows merge this metric by
// installs-weighted averaging rather than summation. eCPI is weighted,
// never recomputed from cost/installs: the source value is trusted.
func (m Metric) Weighted() bool {
	if m == MetricECPI {
		return true
	}
	s := string(m)
	return strings.HasPrefix(s, "roas_d") || strings.HasPrefix(s, "retention_d")
}

// CanonicalRecord is the normalized unit of campaign data produced by the
// ingestion pipeline. CampaignNetwork and AdgroupNetwork stay raw here;
// facet decoding happens exactly once, when aggregation computes group keys.
type CanonicalRecord struct {
	App             string             `json:"app"`
	CampaignNetwork string             `json:"campaign_network"`
	AdgroupNetwork  string             `json:"adgroup_network"`
	Day             string             `json:"day"`
	Installs        int                `json:"installs"`
	Metrics         map[Metric]float64 `json:"metrics,omitempty"`
}

// Metric returns the value of a metric and whether it is defined.
func (r CanonicalRecord) Metric(m Metric) (float64, bool) {
	v, ok := r.Metrics[m]
	return v, ok
}

// SetMetric defines a metric value.
func (r *CanonicalRecord) SetMetric(m Metric, v float64) {
	if r.Metrics == nil {
		r.Metrics = make(map[Metric]float64)
	}
	r.Metrics[m] = v
}

// Key is the natural merge key for dataset merging. It is built from the raw
// identifier strings so that re-uploads of the same row collide.
func (r CanonicalRecord) Key() string {
	return r.App + "|" + r.CampaignNetwork + "|" + r.AdgroupNetwork + "|" + r.Day
}

// HasDetailedData reports whether the record carries retention or
// game-completion metrics. This drives which dashboard sections render.
func (r CanonicalRecord) HasDetailedData() bool {
	for m := range r.Metrics {
		s := string(m)
		if strings.HasPrefix(s, "retention_d") || strings.HasPrefix(s, "level_") {
			return true
		}
	}
	return false
}

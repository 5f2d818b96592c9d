package aggregate

import (
	"time"

	daterange "github.com/felixenescu/date-range"

	"adpulse/internal/domain"
)

// Synchronize expands every group's series to a common, gap-filled daily
// range. Bounds come from startDate/endDate ("2006-01-02") where given,
// otherwise from the union of all observed dates. Existing buckets are kept
// as-is; missing days get a bucket with every metric observed in the group
// explicitly zeroed, so all groups render with identical-length, aligned
// series. Buckets with unparseable dates stay in the output, after the
// dated series.
func Synchronize(groups []domain.Group, startDate, endDate string) []domain.Group {
	start, end, ok := resolveRange(groups, startDate, endDate)
	if !ok {
		return groups
	}

	out := make([]domain.Group, len(groups))
	for gi, g := range groups {
		byDate := make(map[string]domain.DayBucket, len(g.Days))
		metricKeys := make(map[domain.Metric]struct{})
		var undated []domain.DayBucket

		for _, b := range g.Days {
			if _, err := time.Parse(dayLayout, b.Date); err != nil {
				undated = append(undated, b)
				continue
			}
			byDate[b.Date] = b
			for m := range b.Metrics {
				metricKeys[m] = struct{}{}
			}
		}

		days := make([]domain.DayBucket, 0, len(byDate))
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			ds := d.Format(dayLayout)
			if b, found := byDate[ds]; found {
				days = append(days, b)
				continue
			}
			days = append(days, zeroBucket(ds, metricKeys))
		}
		days = append(days, undated...)

		synced := g
		synced.Days = days
		out[gi] = synced
	}
	return out
}

// resolveRange determines the target [start, end] bounds. Explicit bounds
// win per side; anything missing is inferred from the union of observed
// dates. Rows with unparseable dates never contribute to the range.
func resolveRange(groups []domain.Group, startDate, endDate string) (time.Time, time.Time, bool) {
	var start, end time.Time
	var haveStart, haveEnd bool

	if t, err := time.Parse(dayLayout, startDate); err == nil {
		start, haveStart = t, true
	}
	if t, err := time.Parse(dayLayout, endDate); err == nil {
		end, haveEnd = t, true
	}

	if !haveStart || !haveEnd {
		observed := daterange.NewDateRanges()
		for _, g := range groups {
			for _, b := range g.Days {
				if d, err := time.Parse(dayLayout, b.Date); err == nil {
					observed.Append(daterange.NewDateRange(d, d))
				}
			}
		}
		if observed.Len() > 0 {
			ranges := observed.ToSlice()
			if !haveStart {
				start, haveStart = ranges[0].From(), true
			}
			if !haveEnd {
				end, haveEnd = ranges[observed.Len()-1].To(), true
			}
		}
	}

	if !haveStart || !haveEnd {
		return start, end, false
	}
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, true
}

func zeroBucket(date string, metricKeys map[domain.Metric]struct{}) domain.DayBucket {
	b := domain.DayBucket{Date: date}
	for m := range metricKeys {
		b.SetMetric(m, 0)
	}
	return b
}

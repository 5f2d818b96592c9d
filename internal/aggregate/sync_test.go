package aggregate

import (
	"testing"

	"adpulse/internal/domain"
)

func TestSynchronizeExplicitRange(t *testing.T) {
	groups := []domain.Group{
		{
			Game: "Slingo", Country: "United States", Platform: "Android", Publisher: "Unknown",
			Days: []domain.DayBucket{
				{Date: "2024-03-02", Installs: 10},
			},
		},
	}
	synced := Synchronize(groups, "2024-03-01", "2024-03-04")
	days := synced[0].Days
	if len(days) != 4 {
		t.Fatalf("got %d buckets, want 4", len(days))
	}
	want := []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"}
	for i, d := range want {
		if days[i].Date != d {
			t.Errorf("days[%d].Date = %q, want %q", i, days[i].Date, d)
		}
	}
	if days[1].Installs != 10 {
		t.Errorf("existing bucket lost: %+v", days[1])
	}
	if days[0].Installs != 0 {
		t.Errorf("gap bucket installs = %d, want 0", days[0].Installs)
	}
}

func TestSynchronizeZeroFillsObservedMetrics(t *testing.T) {
	roas7 := domain.ROASMetric(7)
	b := domain.DayBucket{Date: "2024-03-01", Installs: 5}
	b.SetMetric(roas7, 0.3)
	groups := []domain.Group{
		{Game: "Azula", Country: "Japan", Platform: "iOS", Publisher: "Unknown", Days: []domain.DayBucket{b}},
	}
	synced := Synchronize(groups, "2024-03-01", "2024-03-02")
	gap := synced[0].Days[1]
	if v, ok := gap.Metric(roas7); !ok || v != 0 {
		t.Errorf("gap roas_d7 = %v (defined=%v), want defined 0", v, ok)
	}
	if _, ok := gap.Metric(domain.MetricCost); ok {
		t.Error("gap bucket defined a metric the group never observed")
	}
}

func TestSynchronizeInfersRangeFromObservedDays(t *testing.T) {
	groups := []domain.Group{
		{Game: "A", Days: []domain.DayBucket{{Date: "2024-03-03"}}},
		{Game: "B", Days: []domain.DayBucket{{Date: "2024-03-01"}}},
	}
	synced := Synchronize(groups, "", "")
	for _, g := range synced {
		if len(g.Days) != 3 {
			t.Errorf("group %q has %d buckets, want 3 across the union range", g.Game, len(g.Days))
		}
	}
}

func TestSynchronizePerSideBounds(t *testing.T) {
	groups := []domain.Group{
		{Game: "A", Days: []domain.DayBucket{{Date: "2024-03-02"}, {Date: "2024-03-03"}}},
	}
	// Explicit start, inferred end.
	synced := Synchronize(groups, "2024-03-01", "")
	if n := len(synced[0].Days); n != 3 {
		t.Errorf("got %d buckets, want 3", n)
	}
}

func TestSynchronizeSwapsReversedBounds(t *testing.T) {
	groups := []domain.Group{
		{Game: "A", Days: []domain.DayBucket{{Date: "2024-03-02"}}},
	}
	synced := Synchronize(groups, "2024-03-03", "2024-03-01")
	if n := len(synced[0].Days); n != 3 {
		t.Errorf("got %d buckets, want 3 after swapping bounds", n)
	}
}

func TestSynchronizeKeepsUndatedBucketsLast(t *testing.T) {
	groups := []domain.Group{
		{Game: "A", Days: []domain.DayBucket{{Date: "totals", Installs: 99}, {Date: "2024-03-01"}}},
	}
	synced := Synchronize(groups, "2024-03-01", "2024-03-02")
	days := synced[0].Days
	if len(days) != 3 {
		t.Fatalf("got %d buckets, want 3", len(days))
	}
	if days[2].Date != "totals" || days[2].Installs != 99 {
		t.Errorf("undated bucket = %+v, want it preserved at the tail", days[2])
	}
}

func TestSynchronizeNoDatesNoBounds(t *testing.T) {
	groups := []domain.Group{
		{Game: "A", Days: []domain.DayBucket{{Date: "totals"}}},
	}
	synced := Synchronize(groups, "", "")
	if len(synced) != 1 || len(synced[0].Days) != 1 {
		t.Errorf("groups without resolvable bounds must pass through unchanged: %+v", synced)
	}
}

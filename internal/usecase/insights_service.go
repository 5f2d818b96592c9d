package usecase

import (
	"context"

	"adpulse/internal/domain"
	"adpulse/pkg/logger"
)

// Summary is the KPI card payload for one dataset over a date range.
// Averages are installs-weighted, matching the aggregation arithmetic.
type Summary struct {
	Records         int     `json:"records"`
	Groups          int     `json:"groups"`
	TotalInstalls   int     `json:"total_installs"`
	TotalCost       float64 `json:"total_cost"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgECPI         float64 `json:"avg_ecpi"`
	AvgROASD7       float64 `json:"avg_roas_d7"`
	AvgRetentionD7  float64 `json:"avg_retention_d7"`
	TopGame         string  `json:"top_game"`
	TopCountry      string  `json:"top_country"`
	TopPublisher    string  `json:"top_publisher"`
	DateFrom        string  `json:"date_from"`
	DateTo          string  `json:"date_to"`
	HasDetailedData bool    `json:"has_detailed_data"`
}

// InsightsService computes KPI summaries from aggregated groups.
type InsightsService struct {
	pipeline *PipelineService
	logger   *logger.Logger
}

func NewInsightsService(pipeline *PipelineService, logger *logger.Logger) *InsightsService {
	return &InsightsService{
		pipeline: pipeline,
		logger:   logger,
	}
}

// Summarize builds the KPI payload for one dataset. The underlying
// aggregation is recomputed; summaries are always consistent with the
// groups endpoint for the same range.
func (s *InsightsService) Summarize(ctx context.Context, fileID, from, to string) (*Summary, error) {
	records, err := s.pipeline.Records(ctx, fileID)
	if err != nil {
		return nil, err
	}
	groups, err := s.pipeline.Groups(ctx, fileID, from, to)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Records: len(records),
		Groups:  len(groups),
	}

	var ecpiWeight, roasWeight, retentionWeight int
	var ecpiSum, roasSum, retentionSum float64
	installsByGame := make(map[string]int)
	installsByCountry := make(map[string]int)
	installsByPublisher := make(map[string]int)

	for _, g := range groups {
		if g.HasDetailedData() {
			sum.HasDetailedData = true
		}
		for _, b := range g.Days {
			sum.TotalInstalls += b.Installs
			installsByGame[g.Game] += b.Installs
			installsByCountry[g.Country] += b.Installs
			installsByPublisher[g.Publisher] += b.Installs

			for _, m := range []domain.Metric{domain.MetricCost, domain.MetricAdjustCost} {
				if v, ok := b.Metrics[m]; ok {
					sum.TotalCost += v
				}
			}
			for _, m := range []domain.Metric{domain.MetricAdRevenue, domain.MetricAllRevenue} {
				if v, ok := b.Metrics[m]; ok {
					sum.TotalRevenue += v
				}
			}

			if v, ok := b.Metrics[domain.MetricECPI]; ok {
				ecpiSum += v * float64(b.Installs)
				ecpiWeight += b.Installs
			}
			if v, ok := b.Metrics[domain.ROASMetric(7)]; ok {
				roasSum += v * float64(b.Installs)
				roasWeight += b.Installs
			}
			if v, ok := b.Metrics[domain.RetentionMetric(7)]; ok {
				retentionSum += v * float64(b.Installs)
				retentionWeight += b.Installs
			}

			if b.Date != "" {
				if sum.DateFrom == "" || b.Date < sum.DateFrom {
					sum.DateFrom = b.Date
				}
				if b.Date > sum.DateTo {
					sum.DateTo = b.Date
				}
			}
		}
	}

	if ecpiWeight > 0 {
		sum.AvgECPI = ecpiSum / float64(ecpiWeight)
	}
	if roasWeight > 0 {
		sum.AvgROASD7 = roasSum / float64(roasWeight)
	}
	if retentionWeight > 0 {
		sum.AvgRetentionD7 = retentionSum / float64(retentionWeight)
	}

	sum.TopGame = maxByInstalls(installsByGame)
	sum.TopCountry = maxByInstalls(installsByCountry)
	sum.TopPublisher = maxByInstalls(installsByPublisher)

	return sum, nil
}

// maxByInstalls picks the key with the highest install count, breaking ties
// lexicographically so summaries stay deterministic.
func maxByInstalls(counts map[string]int) string {
	best := ""
	bestCount := -1
	for k, n := range counts {
		if n > bestCount || (n == bestCount && k < best) {
			best = k
			bestCount = n
		}
	}
	return best
}

package ingest

import (
	"strconv"
	"strings"

	"adpulse/internal/domain"
)

// Fixed column orders for the known export layouts. Positions, not header
// names, are authoritative for these formats.
var detailedMetricColumns = []struct {
	idx    int
	metric domain.Metric
}{
	{5, domain.MetricECPI},
	{6, domain.MetricAdjustCost},
	{7, domain.MetricAdRevenue},
	{8, domain.MetricGrossProfit},
	{9, domain.ROASMetric(0)},
	{10, domain.ROASMetric(1)},
	{11, domain.ROASMetric(2)},
	{12, domain.ROASMetric(3)},
	{13, domain.ROASMetric(7)},
	{14, domain.ROASMetric(14)},
	{15, domain.ROASMetric(30)},
	{16, domain.ROASMetric(45)},
	{17, domain.RetentionMetric(1)},
	{18, domain.RetentionMetric(3)},
	{19, domain.RetentionMetric(7)},
	{20, domain.RetentionMetric(14)},
	{21, domain.RetentionMetric(30)},
	{22, domain.LevelMetric(10)},
	{23, domain.LevelMetric(25)},
	{24, domain.LevelMetric(50)},
}

var azulaMetricColumns = []struct {
	idx    int
	metric domain.Metric
}{
	{4, domain.MetricAllRevenue},
	{5, domain.MetricECPI},
	{6, domain.ROASMetric(7)},
}

var busFrenzyMetricColumns = []struct {
	idx    int
	metric domain.Metric
}{
	{5, domain.MetricCost},
	{6, domain.MetricAllRevenue},
	{7, domain.ROASMetric(0)},
	{8, domain.ROASMetric(3)},
	{9, domain.ROASMetric(7)},
}

// Synonym headers tried when a Generic file has no exact "app" column.
var appSynonyms = []string{"m app", "mobile app", "app_name", "application"}

// MapRecords converts tokenized data rows into canonical records for the
// detected format. Rows are never dropped for bad values: unparseable
// required numerics coerce to 0, optional metrics stay undefined.
func MapRecords(format Format, header []string, rows [][]string) []domain.CanonicalRecord {
	switch format {
	case FormatDetailed:
		return mapFixed(rows, "", 0, 1, 2, 3, 4, detailedMetricColumns)
	case FormatAzula:
		return mapFixed(rows, "Azula", -1, 0, 1, 2, 3, azulaMetricColumns)
	case FormatBusFrenzy:
		return mapFixed(rows, "", 0, 1, 2, 3, 4, busFrenzyMetricColumns)
	default:
		return mapGeneric(header, rows)
	}
}

// mapFixed reads fields by position. appIdx < 0 means the format has no app
// column and fixedApp is used. Metrics the format is expected to carry
// default to 0 when the column is missing or unparseable.
func mapFixed(rows [][]string, fixedApp string, appIdx, cnIdx, anIdx, dayIdx, installsIdx int, metricColumns []struct {
	idx    int
	metric domain.Metric
}) []domain.CanonicalRecord {
	records := make([]domain.CanonicalRecord, 0, len(rows))
	for _, row := range rows {
		if emptyRow(row) {
			continue
		}
		rec := domain.CanonicalRecord{
			App:             fixedApp,
			CampaignNetwork: fieldAt(row, cnIdx),
			AdgroupNetwork:  fieldAt(row, anIdx),
			Day:             fieldAt(row, dayIdx),
			Installs:        parseInstalls(fieldAt(row, installsIdx)),
		}
		if appIdx >= 0 {
			rec.App = fieldAt(row, appIdx)
		}
		for _, col := range metricColumns {
			v, ok := parseMetric(fieldAt(row, col.idx))
			if !ok {
				v = 0
			}
			rec.SetMetric(col.metric, v)
		}
		records = append(records, rec)
	}
	return records
}

// mapGeneric locates every target field by case-exact header name. Metric
// columns absent from the header stay undefined so downstream detailed-data
// checks work.
func mapGeneric(header []string, rows [][]string) []domain.CanonicalRecord {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	col := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		return -1
	}

	appIdx := col("app")
	if appIdx < 0 {
		for _, syn := range appSynonyms {
			if appIdx = col(syn); appIdx >= 0 {
				break
			}
		}
	}
	cnIdx := col("campaign_network")
	anIdx := col("adgroup_network")
	dayIdx := col("day")
	installsIdx := col("installs")

	type metricCol struct {
		idx    int
		metric domain.Metric
	}
	var metricCols []metricCol
	addMetric := func(m domain.Metric) {
		if i := col(string(m)); i >= 0 {
			metricCols = append(metricCols, metricCol{i, m})
		}
	}
	for _, m := range []domain.Metric{
		domain.MetricCost, domain.MetricAdjustCost, domain.MetricAdRevenue,
		domain.MetricAllRevenue, domain.MetricGrossProfit, domain.MetricECPI,
	} {
		addMetric(m)
	}
	for _, d := range domain.ROASOffsets {
		addMetric(domain.ROASMetric(d))
	}
	for _, d := range domain.RetentionOffsets {
		addMetric(domain.RetentionMetric(d))
	}
	for _, l := range domain.LevelThresholds {
		addMetric(domain.LevelMetric(l))
	}

	records := make([]domain.CanonicalRecord, 0, len(rows))
	for _, row := range rows {
		if emptyRow(row) {
			continue
		}
		rec := domain.CanonicalRecord{
			App:             fieldAt(row, appIdx),
			CampaignNetwork: fieldAt(row, cnIdx),
			AdgroupNetwork:  fieldAt(row, anIdx),
			Day:             fieldAt(row, dayIdx),
			Installs:        parseInstalls(fieldAt(row, installsIdx)),
		}
		for _, c := range metricCols {
			if v, ok := parseMetric(fieldAt(row, c.idx)); ok {
				rec.SetMetric(c.metric, v)
			}
		}
		records = append(records, rec)
	}
	return records
}

func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func emptyRow(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseInstalls parses the required installs column; failures coerce to 0,
// never negative.
func parseInstalls(s string) int {
	s = cleanNumber(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
		return int(f)
	}
	return 0
}

// parseMetric parses an optional numeric column. The second return reports
// whether the value was parseable at all.
func parseMetric(s string) (float64, bool) {
	s = cleanNumber(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// cleanNumber strips thousands separators and percent signs left by the
// export tooling.
func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	return strings.TrimSpace(s)
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpulse/internal/aggregate"
	"adpulse/internal/decode"
	"adpulse/internal/domain"
	"adpulse/internal/ingest"
	"adpulse/pkg/logger"
	"adpulse/pkg/metrics"
)

// PipelineService owns the upload lifecycle and runs the ingestion pipeline:
// chunk assembly, parse, campaign matching, aggregation and date
// synchronization. Aggregation is a fresh recompute on every call; no
// aggregate state is kept between invocations.
type PipelineService struct {
	datasets domain.DatasetRepository
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

func NewPipelineService(
	datasets domain.DatasetRepository,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *PipelineService {
	return &PipelineService{
		datasets: datasets,
		logger:   logger,
		metrics:  metrics,
	}
}

// InitFile registers a new upload and returns its dataset with a fresh ID.
func (s *PipelineService) InitFile(ctx context.Context, name string) (*domain.Dataset, error) {
	now := time.Now()
	ds := &domain.Dataset{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.datasets.Create(ctx, ds); err != nil {
		return nil, fmt.Errorf("failed to create dataset: %w", err)
	}

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"file_id": ds.ID,
		"name":    name,
	}).Info("Initialized upload")

	return ds, nil
}

// AppendChunk adds one newline-delimited CSV chunk to a pending upload.
// Chunks are row-aligned by contract. A non-append chunk after the first
// repeats the header, which is dropped here. Returns the accepted chunk
// count so callers can report best-effort progress.
func (s *PipelineService) AppendChunk(ctx context.Context, id, chunk string, isAppend bool) (int, error) {
	ds, err := s.datasets.Get(ctx, id)
	if err != nil {
		s.metrics.RecordChunk("rejected")
		return 0, fmt.Errorf("failed to load dataset: %w", err)
	}
	if ds.Committed {
		s.metrics.RecordChunk("rejected")
		return ds.Chunks, fmt.Errorf("dataset %s is already committed", id)
	}

	if ds.Chunks > 0 && !isAppend {
		// Repeated header from a non-append continuation chunk.
		if i := strings.IndexByte(chunk, '\n'); i >= 0 {
			chunk = chunk[i+1:]
		} else {
			chunk = ""
		}
	}

	if ds.Raw != "" && !strings.HasSuffix(ds.Raw, "\n") {
		ds.Raw += "\n"
	}
	ds.Raw += chunk
	ds.Chunks++
	ds.UpdatedAt = time.Now()

	if err := s.datasets.Update(ctx, ds); err != nil {
		s.metrics.RecordChunk("rejected")
		return ds.Chunks, fmt.Errorf("failed to store chunk: %w", err)
	}

	s.metrics.RecordChunk("accepted")
	return ds.Chunks, nil
}

// Commit parses the assembled text into canonical records. If the result
// fingerprints as the same campaign as an existing committed dataset, the
// records merge into it by natural key and the pending upload is discarded;
// the returned dataset is the one that now owns the data.
func (s *PipelineService) Commit(ctx context.Context, id string) (*domain.Dataset, bool, error) {
	start := time.Now()
	s.metrics.IncPipelineInProgress()
	defer s.metrics.DecPipelineInProgress()

	log := s.logger.WithContext(ctx)

	ds, err := s.datasets.Get(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load dataset: %w", err)
	}
	if ds.Committed {
		return ds, false, nil
	}

	records, format, err := ingest.Parse(ds.Raw)
	if err != nil {
		s.metrics.RecordPipelineRun("failed", "parse", time.Since(start))
		return nil, false, fmt.Errorf("failed to parse csv: %w", err)
	}
	s.metrics.RecordRows(format.String(), len(records))

	// Same-campaign detection against every committed dataset.
	existing, err := s.datasets.List(ctx)
	if err != nil {
		s.metrics.RecordPipelineRun("failed", "match", time.Since(start))
		return nil, false, fmt.Errorf("failed to list datasets: %w", err)
	}
	for _, other := range existing {
		if other.ID == ds.ID || !other.Committed {
			continue
		}
		if !aggregate.IsSameCampaign(other.Records, records) {
			continue
		}

		other.Records = aggregate.MergeRecords(other.Records, records)
		other.UpdatedAt = time.Now()
		if err := s.datasets.Update(ctx, other); err != nil {
			s.metrics.RecordPipelineRun("failed", "merge", time.Since(start))
			return nil, false, fmt.Errorf("failed to merge datasets: %w", err)
		}
		if err := s.datasets.Delete(ctx, ds.ID); err != nil {
			return nil, false, fmt.Errorf("failed to discard merged upload: %w", err)
		}

		s.metrics.RecordCampaignMerge()
		s.metrics.RecordPipelineRun("success", "merge", time.Since(start))
		log.WithFields(map[string]any{
			"file_id":   ds.ID,
			"merged_to": other.ID,
			"format":    format.String(),
			"records":   len(records),
			"duration":  time.Since(start),
		}).Info("Upload merged into existing campaign")
		return other, true, nil
	}

	ds.Records = records
	ds.Committed = true
	ds.Raw = ""
	ds.UpdatedAt = time.Now()
	if err := s.datasets.Update(ctx, ds); err != nil {
		s.metrics.RecordPipelineRun("failed", "commit", time.Since(start))
		return nil, false, fmt.Errorf("failed to commit dataset: %w", err)
	}

	s.metrics.RecordPipelineRun("success", "commit", time.Since(start))
	log.WithFields(map[string]any{
		"file_id":  ds.ID,
		"format":   format.String(),
		"records":  len(records),
		"duration": time.Since(start),
	}).Info("Upload committed")

	return ds, false, nil
}

// Records returns the canonical records of a committed dataset.
func (s *PipelineService) Records(ctx context.Context, id string) ([]domain.CanonicalRecord, error) {
	ds, err := s.datasets.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if !ds.Committed {
		return nil, fmt.Errorf("dataset %s is not committed yet", id)
	}
	return ds.Records, nil
}

// Groups aggregates and date-synchronizes a committed dataset. from/to
// bound the range when given ("2006-01-02"); otherwise the union of
// observed dates is used.
func (s *PipelineService) Groups(ctx context.Context, id, from, to string) ([]domain.Group, error) {
	start := time.Now()

	records, err := s.Records(ctx, id)
	if err != nil {
		return nil, err
	}

	agg := aggregate.Aggregator{Undecoded: s.undecodedCollector(ctx)}
	groups := agg.Aggregate(records)
	s.metrics.RecordGroupCount(len(groups))

	groups = aggregate.Synchronize(groups, from, to)

	s.logger.WithContext(ctx).WithFields(map[string]any{
		"file_id":  id,
		"groups":   len(groups),
		"duration": time.Since(start),
	}).Debug("Aggregation pass completed")

	return groups, nil
}

// Delete removes a dataset by file identifier.
func (s *PipelineService) Delete(ctx context.Context, id string) error {
	if err := s.datasets.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}

// undecodedCollector reports identifiers the decoder returned verbatim.
// These are mapping-table gaps to follow up on, not errors.
func (s *PipelineService) undecodedCollector(ctx context.Context) decode.Collector {
	log := s.logger.WithContext(ctx)
	return func(code string) {
		s.metrics.RecordUndecodedIdentifier()
		log.WithField("code", code).Debug("Undecoded ad-network identifier")
	}
}

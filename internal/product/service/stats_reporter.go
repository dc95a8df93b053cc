package service

import (
	"context"
	"fmt"

	"github.com/ridloal/product-api/internal/platform/logger"
	"github.com/ridloal/product-api/internal/platform/metrics"
	"github.com/ridloal/product-api/internal/product/repository"
	"github.com/robfig/cron/v3"
)

// CatalogStats is a point-in-time view of the in-memory catalog.
type CatalogStats struct {
	Products int
	NextID   int64
}

// StatsReporter periodically publishes catalog figures to the log and the
// product_api_catalog_size gauge.
type StatsReporter struct {
	repo      repository.ProductRepository
	scheduler *cron.Cron
	spec      string
}

func NewStatsReporter(repo repository.ProductRepository, spec string) (*StatsReporter, error) {
	r := &StatsReporter{
		repo:      repo,
		scheduler: cron.New(),
		spec:      spec,
	}
	_, err := r.scheduler.AddFunc(spec, func() {
		// background job, no request context
		r.Report(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid stats schedule %q: %w", spec, err)
	}
	return r, nil
}

func (r *StatsReporter) Start() {
	r.scheduler.Start()
	logger.Info("Catalog stats reporter started with spec '%s'", r.spec)
}

// Stop halts the scheduler. The returned context is done once a running
// report has finished.
func (r *StatsReporter) Stop() context.Context {
	return r.scheduler.Stop()
}

func (r *StatsReporter) Report(ctx context.Context) CatalogStats {
	stats := CatalogStats{
		Products: r.repo.Count(ctx),
		NextID:   r.repo.NextID(ctx),
	}
	metrics.CatalogSize.Set(float64(stats.Products))
	logger.WithFields(logger.Fields{
		"products": stats.Products,
		"next_id":  stats.NextID,
	}).Info("Catalog stats")
	return stats
}

package collector

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// Collector defines the interface for data collection jobs
//
//go:generate mockgen -source=collector.go -destination=../mocks/collector.go -package=mocks -mock_names=Collector=MockCollector
type Collector interface {
	// Name returns the job name used for audit rows and manual triggers
	Name() string
	// Collect runs one collection cycle and returns the number of items
	// processed. Per-item fetch failures are logged and skipped; the next
	// scheduled run is the retry mechanism.
	Collect(ctx context.Context) (int, error)
}

// Run executes a collector inside a collection-run audit record. The record
// always reaches a terminal state when Run returns.
func Run(ctx context.Context, s store.Store, clock adapter.Clock, c Collector) (int, error) {
	run := &schema.CollectionRun{
		ID:        ulid.Make().String(),
		Job:       c.Name(),
		StartedAt: clock.Now(),
		Status:    schema.RunStatusRunning,
	}
	if err := s.CreateCollectionRun(ctx, run); err != nil {
		return 0, fmt.Errorf("failed to create collection run: %w", err)
	}

	logger.Info("collection started", zap.String("job", c.Name()), zap.String("run_id", run.ID))

	count, err := c.Collect(ctx)
	if err != nil {
		if finishErr := s.FinishCollectionRun(ctx, run.ID, schema.RunStatusFailed, count, err.Error()); finishErr != nil {
			logger.Error(finishErr, zap.String("job", c.Name()), zap.String("run_id", run.ID))
		}
		return count, fmt.Errorf("collection %s failed: %w", c.Name(), err)
	}

	if err := s.FinishCollectionRun(ctx, run.ID, schema.RunStatusCompleted, count, ""); err != nil {
		return count, fmt.Errorf("failed to finish collection run: %w", err)
	}

	logger.Info("collection finished",
		zap.String("job", c.Name()),
		zap.String("run_id", run.ID),
		zap.Int("items", count))
	return count, nil
}

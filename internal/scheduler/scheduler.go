package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/collector"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/store"
)

// ErrJobInFlight is returned when a job is triggered while its previous run
// has not finished
var ErrJobInFlight = errors.New("job is already running")

// Config holds scheduler worker pool configuration
type Config struct {
	PoolSize  int
	QueueSize int
}

// Scheduler runs registered collectors on intervals and on demand
//
//go:generate mockgen -source=scheduler.go -destination=mocks/scheduler.go -package=mocks -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	// Register adds a collector job. Immediate jobs run once at startup
	// before their first interval elapses. Register must be called before
	// Start.
	Register(c collector.Collector, interval time.Duration, immediate bool)
	// Start runs the interval loops until the context is canceled or Stop
	// is called
	Start(ctx context.Context) error
	// RunJob executes one job synchronously outside its schedule
	RunJob(ctx context.Context, name string) error
	// Jobs returns the registered job names sorted alphabetically
	Jobs() []string
	// Stop requests a graceful shutdown of the interval loops
	Stop()
}

type job struct {
	collector collector.Collector
	interval  time.Duration
	immediate bool
	inFlight  atomic.Bool
}

type scheduler struct {
	config   Config
	store    store.Store
	clock    adapter.Clock
	pool     pond.Pool
	jobs     map[string]*job
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates a scheduler over the given store and clock
func New(cfg Config, st store.Store, clock adapter.Clock) Scheduler {
	return &scheduler{
		config:   cfg,
		store:    st,
		clock:    clock,
		jobs:     make(map[string]*job),
		stopChan: make(chan struct{}),
	}
}

func (s *scheduler) Register(c collector.Collector, interval time.Duration, immediate bool) {
	s.jobs[c.Name()] = &job{
		collector: c,
		interval:  interval,
		immediate: immediate,
	}
}

func (s *scheduler) Jobs() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start runs one interval loop per registered job on a shared worker pool
func (s *scheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer s.running.Store(false)

	logger.InfoCtx(ctx, "Starting scheduler",
		zap.Strings("jobs", s.Jobs()),
		zap.Int("pool_size", s.config.PoolSize),
	)

	s.pool = pond.NewPool(
		s.config.PoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)

	var wg sync.WaitGroup
	for name := range s.jobs {
		wg.Add(1)
		go func(j *job) {
			defer wg.Done()
			s.loop(ctx, j)
		}(s.jobs[name])
	}
	wg.Wait()

	logger.InfoCtx(ctx, "Scheduler stopped, waiting for in-flight jobs")
	s.pool.StopAndWait()

	return ctx.Err()
}

// loop drives one job: optional immediate run, then a tick per interval.
// clock.After keeps the loop responsive to shutdown between ticks.
func (s *scheduler) loop(ctx context.Context, j *job) {
	if j.immediate {
		s.dispatch(ctx, j)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-s.clock.After(j.interval):
			s.dispatch(ctx, j)
		}
	}
}

// dispatch submits one run to the pool unless the previous run of the same
// job is still in flight, in which case the tick is skipped
func (s *scheduler) dispatch(ctx context.Context, j *job) {
	if !j.inFlight.CompareAndSwap(false, true) {
		logger.WarnCtx(ctx, "Skipping tick, previous run still in flight",
			zap.String("job", j.collector.Name()))
		return
	}

	s.pool.Submit(func() {
		defer j.inFlight.Store(false)

		if _, err := collector.Run(ctx, s.store, s.clock, j.collector); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("job", j.collector.Name()))
			}
		}
	})
}

// RunJob executes one job synchronously, bypassing the interval schedule
func (s *scheduler) RunJob(ctx context.Context, name string) error {
	j, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}

	if !j.inFlight.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: %s", ErrJobInFlight, name)
	}
	defer j.inFlight.Store(false)

	_, err := collector.Run(ctx, s.store, s.clock, j.collector)
	return err
}

// Stop requests a graceful shutdown
func (s *scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

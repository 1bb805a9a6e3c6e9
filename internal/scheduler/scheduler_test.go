package scheduler_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/mocks"
	"github.com/firstbreaklabs/steam-intel/internal/scheduler"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testConfig() scheduler.Config {
	return scheduler.Config{PoolSize: 2, QueueSize: 4}
}

func expectAuditRow(mockStore *mocks.MockStore) {
	mockStore.EXPECT().CreateCollectionRun(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockStore.EXPECT().
		FinishCollectionRun(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func TestScheduler_Jobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)

	portfolio := mocks.NewMockCollector(ctrl)
	portfolio.EXPECT().Name().Return("portfolio").AnyTimes()
	market := mocks.NewMockCollector(ctrl)
	market.EXPECT().Name().Return("market").AnyTimes()

	sched := scheduler.New(testConfig(), mockStore, mockClock)
	sched.Register(portfolio, 6*time.Hour, true)
	sched.Register(market, 24*time.Hour, false)

	assert.Equal(t, []string{"market", "portfolio"}, sched.Jobs())
}

func TestScheduler_RunJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	ctx := context.Background()

	mockCollector.EXPECT().Name().Return("genres").AnyTimes()
	mockClock.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()
	mockStore.EXPECT().CreateCollectionRun(ctx, gomock.Any()).Return(nil).Times(1)
	mockCollector.EXPECT().Collect(ctx).Return(5, nil).Times(1)
	mockStore.EXPECT().
		FinishCollectionRun(ctx, gomock.Any(), schema.RunStatusCompleted, 5, "").
		Return(nil).
		Times(1)

	sched := scheduler.New(testConfig(), mockStore, mockClock)
	sched.Register(mockCollector, 24*time.Hour, false)

	require.NoError(t, sched.RunJob(ctx, "genres"))
}

func TestScheduler_RunJob_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sched := scheduler.New(testConfig(), mocks.NewMockStore(ctrl), mocks.NewMockClock(ctrl))

	err := sched.RunJob(context.Background(), "nonsense")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown job")
}

func TestScheduler_RunJob_InFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	mockCollector.EXPECT().Name().Return("upcoming").AnyTimes()
	mockClock.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()
	expectAuditRow(mockStore)
	mockCollector.EXPECT().
		Collect(ctx).
		DoAndReturn(func(ctx context.Context) (int, error) {
			close(started)
			<-release
			return 0, nil
		}).
		Times(1)

	sched := scheduler.New(testConfig(), mockStore, mockClock)
	sched.Register(mockCollector, 12*time.Hour, false)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- sched.RunJob(ctx, "upcoming")
	}()

	<-started
	err := sched.RunJob(ctx, "upcoming")
	require.Error(t, err)
	assert.ErrorIs(t, err, scheduler.ErrJobInFlight)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestScheduler_Start_ImmediateJobRunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	collected := make(chan struct{})
	never := make(chan time.Time)

	mockCollector.EXPECT().Name().Return("portfolio").AnyTimes()
	mockClock.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()
	mockClock.EXPECT().After(6 * time.Hour).Return(never).AnyTimes()
	expectAuditRow(mockStore)
	mockCollector.EXPECT().
		Collect(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int, error) {
			close(collected)
			return 1, nil
		}).
		Times(1)

	sched := scheduler.New(testConfig(), mockStore, mockClock)
	sched.Register(mockCollector, 6*time.Hour, true)

	done := make(chan error, 1)
	go func() {
		done <- sched.Start(context.Background())
	}()

	select {
	case <-collected:
	case <-time.After(5 * time.Second):
		t.Fatal("immediate job never ran")
	}

	sched.Stop()
	require.NoError(t, <-done)
}

func TestScheduler_Start_TickDrivesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	collected := make(chan struct{})
	tick := make(chan time.Time, 1)
	tick <- time.Now()

	mockCollector.EXPECT().Name().Return("market").AnyTimes()
	mockClock.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()
	mockClock.EXPECT().
		After(24 * time.Hour).
		DoAndReturn(func(d time.Duration) <-chan time.Time {
			return tick
		}).
		AnyTimes()
	expectAuditRow(mockStore)
	mockCollector.EXPECT().
		Collect(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (int, error) {
			select {
			case <-collected:
			default:
				close(collected)
			}
			return 2, nil
		}).
		MinTimes(1)

	sched := scheduler.New(testConfig(), mockStore, mockClock)
	sched.Register(mockCollector, 24*time.Hour, false)

	done := make(chan error, 1)
	go func() {
		done <- sched.Start(context.Background())
	}()

	select {
	case <-collected:
	case <-time.After(5 * time.Second):
		t.Fatal("tick never drove the job")
	}

	sched.Stop()
	require.NoError(t, <-done)
}

func TestScheduler_Start_ContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	never := make(chan time.Time)

	mockCollector.EXPECT().Name().Return("market").AnyTimes()
	mockClock.EXPECT().After(gomock.Any()).Return(never).AnyTimes()

	sched := scheduler.New(testConfig(), mockStore, mockClock)
	sched.Register(mockCollector, 24*time.Hour, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sched.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

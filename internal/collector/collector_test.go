package collector

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/mocks"
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

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	ctx := context.Background()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	mockCollector.EXPECT().Name().Return("portfolio").AnyTimes()
	mockClock.EXPECT().Now().Return(now).Times(1)

	var runID string
	mockStore.EXPECT().
		CreateCollectionRun(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, run *schema.CollectionRun) error {
			assert.NotEmpty(t, run.ID)
			assert.Equal(t, "portfolio", run.Job)
			assert.Equal(t, now, run.StartedAt)
			assert.Equal(t, schema.RunStatusRunning, run.Status)
			runID = run.ID
			return nil
		}).
		Times(1)

	mockCollector.EXPECT().Collect(ctx).Return(7, nil).Times(1)

	mockStore.EXPECT().
		FinishCollectionRun(ctx, gomock.Any(), schema.RunStatusCompleted, 7, "").
		DoAndReturn(func(ctx context.Context, id string, status schema.RunStatus, items int, errMsg string) error {
			assert.Equal(t, runID, id)
			return nil
		}).
		Times(1)

	count, err := Run(ctx, mockStore, mockClock, mockCollector)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestRun_CollectFailureReachesTerminalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	ctx := context.Background()

	mockCollector.EXPECT().Name().Return("genres").AnyTimes()
	mockClock.EXPECT().Now().Return(time.Now().UTC()).Times(1)
	mockStore.EXPECT().CreateCollectionRun(ctx, gomock.Any()).Return(nil).Times(1)
	mockCollector.EXPECT().Collect(ctx).Return(3, errors.New("steamspy timeout")).Times(1)
	mockStore.EXPECT().
		FinishCollectionRun(ctx, gomock.Any(), schema.RunStatusFailed, 3, "steamspy timeout").
		Return(nil).
		Times(1)

	count, err := Run(ctx, mockStore, mockClock, mockCollector)
	require.Error(t, err)
	assert.Equal(t, 3, count)
	assert.Contains(t, err.Error(), "collection genres failed")
}

func TestRun_CreateRunFailureShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)

	ctx := context.Background()

	mockCollector.EXPECT().Name().Return("market").AnyTimes()
	mockClock.EXPECT().Now().Return(time.Now().UTC()).Times(1)
	mockStore.EXPECT().CreateCollectionRun(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)

	count, err := Run(ctx, mockStore, mockClock, mockCollector)
	require.Error(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, err.Error(), "failed to create collection run")
}

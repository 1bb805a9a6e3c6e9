package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/messaging"
	"github.com/firstbreaklabs/steam-intel/internal/mocks"
	"github.com/firstbreaklabs/steam-intel/internal/providers/jetstream"
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

func testPublisherConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "COLLECT_TRIGGERS",
		MaxReconnects:  10,
		ReconnectWait:  1 * time.Second,
		ConnectionName: "test-publisher",
	}
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nil, nil, errors.New("connection refused")).
		Times(1)

	publisher, err := jetstream.NewPublisher(testPublisherConfig(), mockNatsJS, mockJSON)
	require.Error(t, err)
	assert.Nil(t, publisher)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestPublisher_EnsureStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJetStream := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mockConn, mockJetStream, nil).
		Times(1)

	publisher, err := jetstream.NewPublisher(testPublisherConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	ctx := context.Background()
	mockJetStream.EXPECT().
		CreateStream(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, cfg natsjs.StreamConfig) error {
			assert.Equal(t, "COLLECT_TRIGGERS", cfg.Name)
			assert.Equal(t, []string{"collect.*"}, cfg.Subjects)
			return nil
		}).
		Times(1)

	require.NoError(t, publisher.EnsureStream(ctx))
}

func TestPublisher_PublishTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJetStream := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mockConn, mockJetStream, nil).
		Times(1)

	publisher, err := jetstream.NewPublisher(testPublisherConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	ctx := context.Background()
	trig := messaging.NewCollectTrigger("genres", "admin-api", time.Now().UTC())

	payload, marshalErr := json.Marshal(trig)
	require.NoError(t, marshalErr)

	mockJSON.EXPECT().Marshal(trig).Return(payload, nil).Times(1)
	mockJetStream.EXPECT().
		Publish(ctx, "collect.genres", payload).
		Return(&natsjs.PubAck{Stream: "COLLECT_TRIGGERS", Sequence: 1}, nil).
		Times(1)

	require.NoError(t, publisher.PublishTrigger(ctx, trig))
}

func TestPublisher_PublishTrigger_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJetStream := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mockConn, mockJetStream, nil).
		Times(1)

	publisher, err := jetstream.NewPublisher(testPublisherConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	ctx := context.Background()
	trig := messaging.NewCollectTrigger("market", "", time.Now().UTC())

	mockJSON.EXPECT().Marshal(trig).Return([]byte(`{}`), nil).Times(1)
	mockJetStream.EXPECT().
		Publish(ctx, "collect.market", gomock.Any()).
		Return(nil, errors.New("no responders")).
		Times(1)

	err = publisher.PublishTrigger(ctx, trig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish trigger")
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNatsJS := mocks.NewMockNatsJetStream(ctrl)
	mockConn := mocks.NewMockNatsConn(ctrl)
	mockJetStream := mocks.NewMockJetStream(ctrl)
	mockJSON := mocks.NewMockJSON(ctrl)

	mockNatsJS.EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(mockConn, mockJetStream, nil).
		Times(1)
	mockConn.EXPECT().Close().Times(1)

	publisher, err := jetstream.NewPublisher(testPublisherConfig(), mockNatsJS, mockJSON)
	require.NoError(t, err)

	publisher.Close()
}

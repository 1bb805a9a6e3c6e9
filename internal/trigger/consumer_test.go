package trigger_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/messaging"
	"github.com/firstbreaklabs/steam-intel/internal/mocks"
	"github.com/firstbreaklabs/steam-intel/internal/scheduler"
	schedulermocks "github.com/firstbreaklabs/steam-intel/internal/scheduler/mocks"
	"github.com/firstbreaklabs/steam-intel/internal/trigger"
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

type testConsumerMocks struct {
	ctrl       *gomock.Controller
	natsJS     *mocks.MockNatsJetStream
	conn       *mocks.MockNatsConn
	jetStream  *mocks.MockJetStream
	scheduler  *schedulermocks.MockScheduler
	jsonParser *mocks.MockJSON
}

func setupTestConsumer(t *testing.T) *testConsumerMocks {
	ctrl := gomock.NewController(t)

	return &testConsumerMocks{
		ctrl:       ctrl,
		natsJS:     mocks.NewMockNatsJetStream(ctrl),
		conn:       mocks.NewMockNatsConn(ctrl),
		jetStream:  mocks.NewMockJetStream(ctrl),
		scheduler:  schedulermocks.NewMockScheduler(ctrl),
		jsonParser: mocks.NewMockJSON(ctrl),
	}
}

func tearDownTestConsumer(m *testConsumerMocks) {
	m.ctrl.Finish()
}

func testConsumerConfig() trigger.Config {
	return trigger.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "COLLECT_TRIGGERS",
		ConsumerName:   "collector",
		MaxReconnects:  10,
		ReconnectWait:  1 * time.Second,
		ConnectionName: "test-consumer",
		AckWaitTimeout: 30 * time.Second,
		MaxDeliver:     1,
	}
}

func newTestConsumer(t *testing.T, m *testConsumerMocks) trigger.Consumer {
	m.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(m.conn, m.jetStream, nil).
		Times(1)

	c, err := trigger.NewConsumer(testConsumerConfig(), m.natsJS, m.scheduler, m.jsonParser)
	require.NoError(t, err)
	require.NotNil(t, c)

	return c
}

func TestNewConsumer_ConnectError(t *testing.T) {
	m := setupTestConsumer(t)
	defer tearDownTestConsumer(m)

	m.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nil, nil, errors.New("connection refused")).
		Times(1)

	c, err := trigger.NewConsumer(testConsumerConfig(), m.natsJS, m.scheduler, m.jsonParser)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

// expectConsumerSetup wires the stream/consumer creation that Run performs
// and returns a channel that receives the registered message handler.
func expectConsumerSetup(t *testing.T, m *testConsumerMocks) <-chan adapter.MessageHandler {
	handlerChan := make(chan adapter.MessageHandler, 1)

	natsConsumer := mocks.NewMockNatsConsumer(m.ctrl)
	consumeCtx := mocks.NewMockConsumeContext(m.ctrl)

	m.jetStream.EXPECT().
		CreateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cfg natsjs.StreamConfig) error {
			assert.Equal(t, "COLLECT_TRIGGERS", cfg.Name)
			assert.Equal(t, []string{"collect.*"}, cfg.Subjects)
			return nil
		}).
		Times(1)

	m.jetStream.EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "COLLECT_TRIGGERS", gomock.Any()).
		DoAndReturn(func(ctx context.Context, stream string, cfg natsjs.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, "collector", cfg.Durable)
			assert.Equal(t, natsjs.AckExplicitPolicy, cfg.AckPolicy)
			assert.Equal(t, 30*time.Second, cfg.AckWait)
			assert.Equal(t, 1, cfg.MaxDeliver)
			assert.Equal(t, "collect.*", cfg.FilterSubject)
			return natsConsumer, nil
		}).
		Times(1)

	natsConsumer.EXPECT().
		Info(gomock.Any()).
		Return(&natsjs.ConsumerInfo{Name: "collector"}, nil).
		Times(1)

	natsConsumer.EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, opts ...natsjs.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerChan <- handler
			return consumeCtx, nil
		}).
		Times(1)

	consumeCtx.EXPECT().Stop().Times(1)

	return handlerChan
}

func triggerMessage(m *testConsumerMocks, job string) (*mocks.MockJetStreamMessage, *messaging.CollectTrigger) {
	trig := messaging.NewCollectTrigger(job, "tester", time.Now().UTC())
	data, _ := json.Marshal(trig)

	msg := mocks.NewMockJetStreamMessage(m.ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()

	m.jsonParser.EXPECT().
		Unmarshal(data, gomock.Any()).
		DoAndReturn(func(b []byte, v interface{}) error {
			return json.Unmarshal(b, v)
		}).
		Times(1)

	return msg, trig
}

func runConsumer(ctx context.Context, c trigger.Consumer) <-chan error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- c.Run(ctx)
	}()
	return errChan
}

func TestConsumer_Run_AcksOnSuccess(t *testing.T) {
	m := setupTestConsumer(t)
	defer tearDownTestConsumer(m)

	c := newTestConsumer(t, m)
	handlerChan := expectConsumerSetup(t, m)

	msg, trig := triggerMessage(m, "genres")
	m.scheduler.EXPECT().RunJob(gomock.Any(), trig.Job).Return(nil).Times(1)

	acked := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(acked)
		return nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := runConsumer(ctx, c)

	handler := <-handlerChan
	handler(msg)

	select {
	case <-acked:
	case <-time.After(5 * time.Second):
		t.Fatal("message was never acked")
	}

	cancel()
	assert.ErrorIs(t, <-errChan, context.Canceled)
}

func TestConsumer_Run_NaksOnJobError(t *testing.T) {
	m := setupTestConsumer(t)
	defer tearDownTestConsumer(m)

	c := newTestConsumer(t, m)
	handlerChan := expectConsumerSetup(t, m)

	msg, trig := triggerMessage(m, "market")
	m.scheduler.EXPECT().
		RunJob(gomock.Any(), trig.Job).
		Return(errors.New("steamspy timeout")).
		Times(1)

	naked := make(chan struct{})
	msg.EXPECT().Nak().DoAndReturn(func() error {
		close(naked)
		return nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := runConsumer(ctx, c)

	handler := <-handlerChan
	handler(msg)

	select {
	case <-naked:
	case <-time.After(5 * time.Second):
		t.Fatal("message was never naked")
	}

	cancel()
	assert.ErrorIs(t, <-errChan, context.Canceled)
}

func TestConsumer_Run_DropsInFlightJob(t *testing.T) {
	m := setupTestConsumer(t)
	defer tearDownTestConsumer(m)

	c := newTestConsumer(t, m)
	handlerChan := expectConsumerSetup(t, m)

	msg, trig := triggerMessage(m, "portfolio")
	m.scheduler.EXPECT().
		RunJob(gomock.Any(), trig.Job).
		Return(fmt.Errorf("%w: %s", scheduler.ErrJobInFlight, trig.Job)).
		Times(1)

	// in-flight triggers are dropped, not retried
	acked := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(acked)
		return nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := runConsumer(ctx, c)

	handler := <-handlerChan
	handler(msg)

	select {
	case <-acked:
	case <-time.After(5 * time.Second):
		t.Fatal("message was never acked")
	}

	cancel()
	assert.ErrorIs(t, <-errChan, context.Canceled)
}

func TestConsumer_Run_TermsUnparseableMessage(t *testing.T) {
	m := setupTestConsumer(t)
	defer tearDownTestConsumer(m)

	c := newTestConsumer(t, m)
	handlerChan := expectConsumerSetup(t, m)

	msg := mocks.NewMockJetStreamMessage(m.ctrl)
	msg.EXPECT().Data().Return([]byte("not json")).AnyTimes()

	m.jsonParser.EXPECT().
		Unmarshal([]byte("not json"), gomock.Any()).
		Return(errors.New("invalid character 'o'")).
		Times(1)

	termed := make(chan struct{})
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(termed)
		return nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	errChan := runConsumer(ctx, c)

	handler := <-handlerChan
	handler(msg)

	select {
	case <-termed:
	case <-time.After(5 * time.Second):
		t.Fatal("message was never terminated")
	}

	cancel()
	assert.ErrorIs(t, <-errChan, context.Canceled)
}

func TestConsumer_Run_CreateStreamError(t *testing.T) {
	m := setupTestConsumer(t)
	defer tearDownTestConsumer(m)

	c := newTestConsumer(t, m)

	m.jetStream.EXPECT().
		CreateStream(gomock.Any(), gomock.Any()).
		Return(errors.New("no jetstream")).
		Times(1)

	err := c.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create stream")
}

func TestConsumer_Close(t *testing.T) {
	m := setupTestConsumer(t)
	defer tearDownTestConsumer(m)

	c := newTestConsumer(t, m)

	m.conn.EXPECT().Close().Times(1)
	c.Close()
}

package trigger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/messaging"
	"github.com/firstbreaklabs/steam-intel/internal/scheduler"
)

// Config holds the configuration for the trigger consumer
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Consumer defines the interface for the manual collect-trigger consumer
type Consumer interface {
	// Run starts consuming triggers until the context is canceled
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

type consumer struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	scheduler scheduler.Scheduler
	json      adapter.JSON
	config    Config
}

// NewConsumer creates a new collect-trigger consumer that forwards triggers
// to the scheduler
func NewConsumer(
	cfg Config,
	natsJS adapter.NatsJetStream,
	sched scheduler.Scheduler,
	jsonAdapter adapter.JSON,
) (Consumer, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:        nc,
		js:        js,
		scheduler: sched,
		json:      jsonAdapter,
		config:    cfg,
	}, nil
}

// Run starts the trigger consumer
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting trigger consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName))

	streamConfig := jetstream.StreamConfig{
		Name:      c.config.StreamName,
		Subjects:  []string{"collect.*"},
		Retention: jetstream.WorkQueuePolicy,
	}
	if err := c.js.CreateStream(ctx, streamConfig); err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: "collect.*",
	}

	cons, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := cons.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 16)
	sub, err := cons.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming triggers")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down trigger consumer")
			return ctx.Err()
		case msg := <-msgChan:
			go c.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single trigger message
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	var trig messaging.CollectTrigger
	if err := c.json.Unmarshal(msg.Data(), &trig); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal trigger"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	logger.Info("Received collect trigger",
		zap.String("trigger_id", trig.ID),
		zap.String("job", trig.Job),
		zap.String("requested_by", trig.RequestedBy),
	)

	if err := c.scheduler.RunJob(ctx, trig.Job); err != nil {
		if errors.Is(err, scheduler.ErrJobInFlight) {
			// The scheduled run covers the request, drop the trigger
			logger.Warn("Dropping trigger, job already running", zap.String("job", trig.Job))
			if err := msg.Ack(); err != nil {
				logger.Error(err, zap.String("message", "Failed to ACK message"))
			}
			return
		}

		logger.Error(err, zap.String("message", "Failed to run triggered job"), zap.String("job", trig.Job))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}

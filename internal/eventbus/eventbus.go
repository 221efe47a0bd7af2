// Package eventbus provides the watermill publisher/subscriber pair used
// for background aggregate updates. A NATS JetStream transport is used
// when a NATS URL is configured; otherwise an in-process gochannel bus
// keeps everything in a single binary (dev, tests).
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	watermillnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/fore-golf/fore-api/internal/attr"
)

// EventBus is the transport used to hand round-persisted events to the
// background aggregate updaters.
type EventBus interface {
	Publish(topic string, messages ...*message.Message) error
	Publisher() message.Publisher
	Subscriber() message.Subscriber
	Close() error
}

// --- in-process transport ---

type channelBus struct {
	pubsub *gochannel.GoChannel
}

// NewChannelBus returns an in-process bus backed by watermill's gochannel
// pubsub. Every subscriber of a topic receives every message.
func NewChannelBus(logger *slog.Logger) EventBus {
	return &channelBus{
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NewSlogLogger(logger),
		),
	}
}

func (b *channelBus) Publish(topic string, messages ...*message.Message) error {
	return b.pubsub.Publish(topic, messages...)
}

func (b *channelBus) Publisher() message.Publisher   { return b.pubsub }
func (b *channelBus) Subscriber() message.Subscriber { return b.pubsub }
func (b *channelBus) Close() error                   { return b.pubsub.Close() }

// --- NATS JetStream transport ---

type natsBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	js         jetstream.JetStream
	conn       *nc.Conn
	logger     *slog.Logger

	streamMu       sync.Mutex
	createdStreams map[string]bool
}

// NewNATSBus connects to NATS JetStream and returns a bus whose publisher
// and subscriber speak the watermill NATS transport.
func NewNATSBus(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	conn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaler := &watermillnats.NATSMarshaler{}

	publisher, err := watermillnats.NewPublisher(
		watermillnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaler,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := watermillnats.NewSubscriber(
		watermillnats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaler,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		conn.Close()
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	bus := &natsBus{
		publisher:      publisher,
		subscriber:     subscriber,
		js:             js,
		conn:           conn,
		logger:         logger,
		createdStreams: map[string]bool{},
	}

	if err := bus.ensureStream(ctx, "rounds"); err != nil {
		_ = bus.Close()
		return nil, err
	}

	return bus, nil
}

// ensureStream creates the JetStream stream for a subject prefix once.
func (b *natsBus) ensureStream(ctx context.Context, name string) error {
	b.streamMu.Lock()
	defer b.streamMu.Unlock()

	if b.createdStreams[name] {
		return nil
	}

	_, err := b.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     name,
		Subjects: []string{name + ".>"},
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %q: %w", name, err)
	}

	b.createdStreams[name] = true
	b.logger.Info("JetStream stream ready", attr.String("stream", name))
	return nil
}

func (b *natsBus) Publish(topic string, messages ...*message.Message) error {
	return b.publisher.Publish(topic, messages...)
}

func (b *natsBus) Publisher() message.Publisher   { return b.publisher }
func (b *natsBus) Subscriber() message.Subscriber { return b.subscriber }

func (b *natsBus) Close() error {
	err := b.publisher.Close()
	if subErr := b.subscriber.Close(); err == nil {
		err = subErr
	}
	b.conn.Close()
	return err
}

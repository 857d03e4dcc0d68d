package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grachmannico95/rent-recon/internal/domain"
	"github.com/grachmannico95/rent-recon/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConsumer struct {
	mu       sync.Mutex
	events   []Event
	failures int32
	calls    atomic.Int32
	workers  int
}

func (c *recordingConsumer) Consume(ctx context.Context, event Event) error {
	if c.calls.Add(1) <= c.failures {
		return errors.New("transient")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *recordingConsumer) GetWorkerCount() int { return c.workers }

func (c *recordingConsumer) received() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func testDetails() domain.ConfirmationDetails {
	return domain.ConfirmationDetails{
		TransactionID: "TX-1",
		Date:          "2025-01-03",
		Amount:        decimal.NewFromInt(50000),
		Source:        domain.ConfirmationSourceBankFile,
	}
}

func newTestBus(buffer int) EventBus {
	return New(logger.NewNop(), &Config{
		ChannelBuffer:  buffer,
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
	})
}

func TestEventBus_DeliversToConsumer(t *testing.T) {
	bus := newTestBus(10)
	consumer := &recordingConsumer{workers: 2}
	require.NoError(t, bus.Subscribe(EventTypePaymentConfirmed, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer func() { _ = bus.Shutdown(context.Background()) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Publish(context.Background(), NewPaymentConfirmedEvent("p1", testDetails())))
	}

	assert.Eventually(t, func() bool { return consumer.received() == 5 }, time.Second, 5*time.Millisecond)
}

func TestEventBus_RetriesFailedConsume(t *testing.T) {
	bus := newTestBus(10)
	consumer := &recordingConsumer{workers: 1, failures: 2}
	require.NoError(t, bus.Subscribe(EventTypePaymentConfirmed, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer func() { _ = bus.Shutdown(context.Background()) }()

	require.NoError(t, bus.Publish(context.Background(), NewPaymentConfirmedEvent("p1", testDetails())))

	assert.Eventually(t, func() bool { return consumer.received() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), consumer.calls.Load())
}

func TestEventBus_PublishWithoutSubscriber(t *testing.T) {
	bus := newTestBus(1)

	assert.NoError(t, bus.Publish(context.Background(), NewPaymentConfirmedEvent("p1", testDetails())))
}

func TestEventBus_PublishFullBufferHonoursContext(t *testing.T) {
	bus := newTestBus(1)
	require.NoError(t, bus.Subscribe(EventTypePaymentConfirmed, &recordingConsumer{workers: 1}))

	// Not started, so nothing drains the channel.
	require.NoError(t, bus.Publish(context.Background(), NewPaymentConfirmedEvent("p1", testDetails())))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := bus.Publish(ctx, NewPaymentConfirmedEvent("p2", testDetails()))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEventBus_SubscribeAfterStart(t *testing.T) {
	bus := newTestBus(1)
	require.NoError(t, bus.Start(context.Background()))
	defer func() { _ = bus.Shutdown(context.Background()) }()

	err := bus.Subscribe(EventTypePaymentConfirmed, &recordingConsumer{workers: 1})
	assert.ErrorIs(t, err, ErrBusStarted)
}

func TestEventBus_Shutdown(t *testing.T) {
	bus := newTestBus(1)
	require.NoError(t, bus.Subscribe(EventTypePaymentConfirmed, &recordingConsumer{workers: 3}))
	require.NoError(t, bus.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, bus.Shutdown(ctx))
}

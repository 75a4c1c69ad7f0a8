package messaging

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietEntry() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestConsumeLoop_ReconnectsAfterChannelClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rounds, reconnects int32
	round := func(ctx context.Context) error {
		if atomic.AddInt32(&rounds, 1) <= 2 {
			return ErrDeliveriesClosed
		}
		cancel()
		<-ctx.Done()
		return ctx.Err()
	}
	reconnect := func() error {
		atomic.AddInt32(&reconnects, 1)
		return nil
	}

	err := consumeLoop(ctx, time.Millisecond, quietEntry(), round, reconnect)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(3), atomic.LoadInt32(&rounds))
	assert.Equal(t, int32(2), atomic.LoadInt32(&reconnects))
}

func TestConsumeLoop_KeepsTryingWhenReconnectFails(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reconnects int32
	round := func(ctx context.Context) error { return ErrDeliveriesClosed }
	reconnect := func() error {
		if atomic.AddInt32(&reconnects, 1) == 3 {
			cancel()
		}
		return errors.New("connection refused")
	}

	err := consumeLoop(ctx, time.Millisecond, quietEntry(), round, reconnect)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(3), atomic.LoadInt32(&reconnects))
}

func TestConsumeLoop_StopsDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var reconnects int32
	round := func(ctx context.Context) error {
		cancel()
		return ErrDeliveriesClosed
	}

	err := consumeLoop(ctx, time.Hour, quietEntry(), round, func() error {
		atomic.AddInt32(&reconnects, 1)
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt32(&reconnects))
}

// Package batcher groups items into batches and hands each batch to a flush
// callback, either when it is full or when it has waited long enough.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// FlushFunc receives one batch. The slice is owned by the callee.
type FlushFunc[T any] func(ctx context.Context, batch []T) error

// Batcher buffers items and flushes them by size or interval. Flushes are
// paced by a rate limiter.
type Batcher[T any] struct {
	logger   *zap.Logger
	flush    FlushFunc[T]
	items    chan T
	size     int
	interval time.Duration
	limiter  ratelimit.Limiter

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a batcher flushing at most size items at a time, at least every
// interval, and no more than rps batches per second. A non-positive rps
// disables pacing.
func New[T any](logger *zap.Logger, flush FlushFunc[T], size int, interval time.Duration, rps int) *Batcher[T] {
	if size <= 0 {
		size = 1
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Batcher[T]{
		logger:   logger,
		flush:    flush,
		items:    make(chan T, size*2),
		size:     size,
		interval: interval,
		limiter:  limiter,
		stop:     make(chan struct{}),
	}
}

// Start runs the flushing loop until ctx ends or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe to
// call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	var buf []T
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		batch := buf
		buf = make([]T, 0, b.size)

		b.limiter.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}
	drain := func() {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			flush(context.WithoutCancel(ctx))
			return
		case <-b.stop:
			drain()
			flush(context.WithoutCancel(ctx))
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.size {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

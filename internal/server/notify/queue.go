// Package notify delivers account emails in the background.
//
// Services hand a Message to a Queue and return immediately; worker
// goroutines pass it to a Sender, retrying with exponential backoff.
// Delivery failures are logged and never reach the enqueuing caller.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/sethvargo/go-retry"
)

var (
	ErrQueueFull   = errors.New("notification queue is full")
	ErrQueueClosed = errors.New("notification queue is closed")
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sink accepts messages for asynchronous delivery.
type Sink interface {
	Enqueue(ctx context.Context, m Message) error
}

// Sender performs one delivery attempt.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

type Queue struct {
	ch           chan Message
	sender       Sender
	log          logging.Logger
	workers      int
	backoff      func() retry.Backoff
	drainTimeout time.Duration

	mu      sync.Mutex
	stopped bool
}

type Option func(*Queue)

// WithBackoff overrides the retry policy used for each message.
func WithBackoff(f func() retry.Backoff) Option {
	return func(q *Queue) { q.backoff = f }
}

// WithDrainTimeout bounds how long Run keeps delivering queued messages
// after its context is cancelled.
func WithDrainTimeout(d time.Duration) Option {
	return func(q *Queue) { q.drainTimeout = d }
}

func defaultBackoff() retry.Backoff {
	b := retry.NewExponential(200 * time.Millisecond)
	b = retry.WithJitterPercent(20, b)
	return retry.WithMaxRetries(3, b)
}

func NewQueue(sender Sender, size, workers int, log logging.Logger, opts ...Option) *Queue {
	if size < 1 {
		size = 1
	}
	if workers < 1 {
		workers = 1
	}
	q := &Queue{
		ch:           make(chan Message, size),
		sender:       sender,
		log:          log,
		workers:      workers,
		backoff:      defaultBackoff,
		drainTimeout: 5 * time.Second,
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// Enqueue never blocks. It fails with ErrQueueFull when the buffer is
// exhausted and with ErrQueueClosed once Run has returned.
func (q *Queue) Enqueue(_ context.Context, m Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return ErrQueueClosed
	}
	select {
	case q.ch <- m:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run delivers messages until ctx is cancelled, then drains what is left.
func (q *Queue) Run(ctx context.Context) error {
	q.log.Info(ctx, "notification workers started", "workers", q.workers)

	var wg sync.WaitGroup
	for i := 0; i < q.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case m := <-q.ch:
					// an accepted message finishes its retries even during shutdown
					q.deliver(context.WithoutCancel(ctx), m)
				}
			}
		}()
	}
	wg.Wait()

	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()

	q.drain()
	q.log.Info(context.Background(), "notification workers stopped")
	return nil
}

func (q *Queue) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), q.drainTimeout)
	defer cancel()

	for {
		select {
		case m := <-q.ch:
			q.deliver(ctx, m)
		default:
			return
		}
	}
}

func (q *Queue) deliver(ctx context.Context, m Message) {
	attempts := 0
	err := retry.Do(ctx, q.backoff(), func(ctx context.Context) error {
		attempts++
		if err := q.sender.Send(ctx, m); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		q.log.Error(ctx, "notification delivery failed",
			"to", m.To, "subject", m.Subject, "attempts", attempts, "error", err)
	}
}

package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bazaarly/marketplace-system/internal/api/metrics"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes account events to a fixed set of workers using consistent
// hashing on the email, so events for the same account are processed in order.
type Dispatcher struct {
	workers []chan ports.AccountEvent
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AccountEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AccountEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an event to the worker responsible for its account. It never
// blocks the caller: when the worker's buffer is full the event is dropped
// and counted, rather than stalling the signup request that produced it.
func (d *Dispatcher) Enqueue(event ports.AccountEvent) {
	idx := d.shardIndex(event.Email)
	select {
	case d.workers[idx] <- event:
	default:
		metrics.NotifyDroppedTotal.Inc()
		d.log.Warn().
			Str("user_id", event.UserID).
			Int("worker_id", idx).
			Msg("notification buffer full, event dropped")
	}
	metrics.NotifyQueueDepth.WithLabelValues(workerLabel(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AccountEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Notify(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("user_id", event.UserID).
					Int("worker_id", id).
					Msg("account notification failed")
			} else {
				metrics.VerificationEmailsTotal.Inc()
			}
			metrics.NotifyQueueDepth.WithLabelValues(workerLabel(id)).Set(float64(len(ch)))
		}
	}
}

func workerLabel(id int) string {
	return strconv.Itoa(id)
}

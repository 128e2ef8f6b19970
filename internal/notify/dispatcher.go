package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"prwatch/internal/core"
)

const deliveryTimeout = 10 * time.Second

// Dispatcher queues notification events and delivers them on a worker
// goroutine, so the poll loop never waits on the notification sink. Events
// whose delivery fails are logged and dropped; there is no replay.
type Dispatcher struct {
	notifier core.Notifier
	queue    chan core.Event
	sound    bool
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewDispatcher starts a dispatcher with a single delivery worker, keeping
// notifications in the order their events were produced.
func NewDispatcher(notifier core.Notifier, sound bool, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan core.Event, 100),
		sound:    sound,
		logger:   logger,
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// Dispatch enqueues events without blocking. If the queue is full the
// remaining events are dropped and logged.
func (d *Dispatcher) Dispatch(events []core.Event) {
	for i, ev := range events {
		select {
		case d.queue <- ev:
		default:
			d.logger.Warn("notification queue full, dropping events", "dropped", len(events)-i)
			return
		}
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev core.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := d.notifier.Notify(ctx, ev.Title, ev.Subtitle, ev.Message, d.sound); err != nil {
		d.logger.Error("notification delivery failed", "kind", ev.Kind, "url", ev.URL, "error", err)
	}
}

// Stop drains the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	close(d.queue)
	d.wg.Wait()
}

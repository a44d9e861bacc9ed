package notify

import (
	"log"
	"sync"
)

type confirmation struct {
	orderID string
	total   string
	email   string
}

// Dispatcher queues confirmations and delivers them on a single worker
// goroutine, keeping the notifier's error channel out of the checkout result.
// It implements Notifier itself so checkout only sees the interface.
type Dispatcher struct {
	sink  Notifier
	queue chan confirmation
	wg    sync.WaitGroup
}

func NewDispatcher(sink Notifier, buffer int) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan confirmation, buffer),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for c := range d.queue {
		if err := d.sink.OrderConfirmation(c.orderID, c.total, c.email); err != nil {
			log.Printf("notify: confirmation for order %s failed: %v", c.orderID, err)
		}
	}
}

// OrderConfirmation enqueues without blocking; when the queue is full the
// confirmation is dropped and logged.
func (d *Dispatcher) OrderConfirmation(orderID, total, email string) error {
	select {
	case d.queue <- confirmation{orderID: orderID, total: total, email: email}:
	default:
		log.Printf("notify: queue full, dropping confirmation for order %s", orderID)
	}
	return nil
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

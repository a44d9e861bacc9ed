package notify

import (
	"errors"
	"sync"
	"testing"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *recordingNotifier) OrderConfirmation(orderID, total, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, orderID)
	return r.err
}

func TestDispatcherDelivers(t *testing.T) {
	sink := &recordingNotifier{}
	d := NewDispatcher(sink, 4)

	if err := d.OrderConfirmation("order-1", "16.00", "a@example.com"); err != nil {
		t.Fatalf("enqueue should not fail: %v", err)
	}
	d.Close()

	if len(sink.calls) != 1 || sink.calls[0] != "order-1" {
		t.Fatalf("expected one delivery for order-1, got %v", sink.calls)
	}
}

func TestDispatcherSwallowsSinkError(t *testing.T) {
	sink := &recordingNotifier{err: errors.New("smtp down")}
	d := NewDispatcher(sink, 4)

	if err := d.OrderConfirmation("order-2", "8.00", "b@example.com"); err != nil {
		t.Fatalf("sink errors must not surface: %v", err)
	}
	d.Close()

	if len(sink.calls) != 1 {
		t.Fatalf("expected the sink to still be invoked, got %v", sink.calls)
	}
}

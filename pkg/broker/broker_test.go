package broker

import (
	"testing"
	"time"
)

func TestBroker_PublishReachesAllClients(t *testing.T) {
	b := New()

	client1 := b.Subscribe()
	client2 := b.Subscribe()

	event := Event{
		Type:      "order.created",
		Timestamp: time.Now().Unix(),
		Data: map[string]any{
			"order_number": "1756600000-a1b2c3d4",
		},
	}

	go b.Publish(event)

	for i, client := range []chan Event{client1, client2} {
		select {
		case e := <-client:
			if e.Type != "order.created" {
				t.Errorf("client %d: expected order.created, got %s", i+1, e.Type)
			}
		case <-time.After(time.Second):
			t.Errorf("client %d timeout", i+1)
		}
	}
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := New()

	client := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Errorf("expected 1 client, got %d", b.ClientCount())
	}

	b.Unsubscribe(client)
	if b.ClientCount() != 0 {
		t.Errorf("expected 0 clients, got %d", b.ClientCount())
	}

	// Channel must be closed after unsubscribe.
	select {
	case _, open := <-client:
		if open {
			t.Error("expected closed channel")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("channel not closed")
	}
}

func TestBroker_SlowClientDoesNotBlock(t *testing.T) {
	b := New()

	slow := b.Subscribe()
	// Fill the slow client's buffer.
	for i := 0; i < 20; i++ {
		b.Publish(Event{Type: "order.created", Timestamp: int64(i)})
	}

	done := make(chan struct{})
	go func() {
		b.Publish(Event{Type: "order.created"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("publish blocked on a slow client")
	}

	b.Unsubscribe(slow)
}

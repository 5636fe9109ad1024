package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestHub_BroadcastCatalogueUpdated(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(client)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.NotifyCatalogueUpdated(7)

	select {
	case msg := <-client.send:
		var evt CatalogueUpdatedEvent
		if err := json.Unmarshal(msg, &evt); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if evt.Type != EventCatalogueUpdated || evt.Version != 7 {
			t.Fatalf("unexpected event %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no message received")
	}

	hub.Unregister(client)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHub_NilIsSafe(t *testing.T) {
	var hub *Hub
	hub.NotifyCatalogueUpdated(1)
	hub.Broadcast([]byte("x"))
	if hub.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
}

func TestHub_UnregisterAfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(client)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	cancel()
	<-stopped

	if _, ok := <-client.send; ok {
		t.Fatalf("expected send closed on shutdown")
	}

	// More than the unregister buffer holds.
	finished := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.Unregister(&Client{hub: hub, send: make(chan []byte)})
		}
		hub.Register(&Client{hub: hub, send: make(chan []byte)})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Unregister blocked after the hub stopped")
	}
}

package SSE

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// EventQuotasUpdated tells mounted screens to re-fetch usage counters after a
// generation consumed a credit.
const EventQuotasUpdated = "quotas_updated"

// Broadcaster fans events out to every connected dashboard client.
type Broadcaster struct {
	clients map[chan string]bool
	mu      sync.Mutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[chan string]bool),
	}
}

func (b *Broadcaster) Register(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

func (b *Broadcaster) Unregister(client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[client]; ok {
		delete(b.clients, client)
		close(client)
	}
}

// Broadcast delivers an event to all registered clients, dropping clients
// that stop draining their channel.
func (b *Broadcaster) Broadcast(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- event:
		case <-time.After(1 * time.Second):
			delete(b.clients, client)
			close(client)
		}
	}
}

var Events = NewBroadcaster()

// NotifyQuotasUpdated broadcasts the quota refresh event.
func NotifyQuotasUpdated() {
	Events.Broadcast(EventQuotasUpdated)
}

// RequestSSE keeps an event-stream response open and forwards broadcast
// events to the client until it disconnects.
func RequestSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientChan := make(chan string)
	Events.Register(clientChan)
	defer Events.Unregister(clientChan)

	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()

	for {
		select {
		case event, ok := <-clientChan:
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", event)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

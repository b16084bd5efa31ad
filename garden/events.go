package garden

import (
	"context"
	"log"

	"github.com/cs232s20/plants-backend/garden/model"
	"github.com/google/uuid"
)

// EventChannel registers a subscriber for garden events. The channel
// is removed and closed once ctx is cancelled.
func (c *controller) EventChannel(ctx context.Context) chan model.GardenEvent {
	ch := make(chan model.GardenEvent, 16)
	id, _ := uuid.NewUUID()

	c.mutex.Lock()
	c.eventChannels[id.String()] = ch
	c.mutex.Unlock()

	go func() {
		<-ctx.Done()

		// Close may already have torn the subscriber down
		c.mutex.Lock()
		if _, ok := c.eventChannels[id.String()]; ok {
			delete(c.eventChannels, id.String())
			close(ch)
		}
		c.mutex.Unlock()

		log.Println("event subscriber closed", id.String())
	}()

	return ch
}

// Broadcast fans an event out to every subscriber. Sends never block;
// a subscriber with a full buffer misses the event.
func (c *controller) Broadcast(event model.GardenEvent) {
	c.mutex.RLock()
	for _, out := range c.eventChannels {
		select {
		case out <- event:
		default:
		}
	}
	c.mutex.RUnlock()
}

package framework

import "calculator-service/internal/app/models"

// Subscribe registers fn to receive a snapshot after every state change. The
// returned func removes the subscription.
func (c *Calculator) Subscribe(fn func(models.Snapshot)) func() {
	c.mu.Lock()
	id := c.nextObserverID
	c.nextObserverID++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// notify must be called without holding the mutex so observers may read the
// calculator.
func (c *Calculator) notify() {
	c.mu.Lock()
	if len(c.observers) == 0 {
		c.mu.Unlock()
		return
	}
	snapshot := c.snapshotLocked()
	observers := make([]func(models.Snapshot), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}

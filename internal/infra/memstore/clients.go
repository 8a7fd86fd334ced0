package memstore

import (
	"sync"

	"hotel-console/internal/domain/client"
)

// ClientLedger owns every client record for the process lifetime. Records
// are keyed by exact name, case-sensitive, no normalization.
type ClientLedger struct {
	mu      sync.RWMutex
	clients map[string]*client.Client
}

func NewClientLedger() *ClientLedger {
	return &ClientLedger{
		clients: make(map[string]*client.Client),
	}
}

// GetOrCreate returns the record for name, creating it with zero points on
// first sight. An empty name is the anonymous path: no record, no error,
// no loyalty tracking.
func (l *ClientLedger) GetOrCreate(name string) (*client.Client, error) {
	if name == "" {
		return nil, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.clients[name]; ok {
		return c, nil
	}

	c, err := client.NewClient(name)
	if err != nil {
		return nil, err
	}
	l.clients[name] = c
	return c, nil
}

func (l *ClientLedger) Find(name string) (*client.Client, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, ok := l.clients[name]
	return c, ok
}

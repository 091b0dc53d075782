package events

import "sync"

// InMemoryStore keeps events in memory, grouped by stream. Safe for
// concurrent use.
type InMemoryStore struct {
	mutex     sync.RWMutex
	streams   map[string][]Event
	allEvents []Event
}

// NewInMemoryStore creates an empty in-memory event store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		streams: make(map[string][]Event),
	}
}

// Append records an event under the given stream
func (s *InMemoryStore) Append(streamID string, event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.streams[streamID] = append(s.streams[streamID], event)
	s.allEvents = append(s.allEvents, event)
	return nil
}

// ReadStream returns all events of one stream in append order
func (s *InMemoryStore) ReadStream(streamID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.streams[streamID]))
	copy(events, s.streams[streamID])
	return events, nil
}

// ReadAll returns every recorded event in append order
func (s *InMemoryStore) ReadAll() ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	events := make([]Event, len(s.allEvents))
	copy(events, s.allEvents)
	return events, nil
}

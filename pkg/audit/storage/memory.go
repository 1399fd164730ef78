package storage

import (
	"context"
	"sort"
	"sync"

	"sportsgate-hq/sportsgate/pkg/audit"
)

// MemoryStorage implements audit.Storage in process memory. It is used in
// tests and for ephemeral runs where durability does not matter.
type MemoryStorage struct {
	mu     sync.RWMutex
	events []*audit.Event
}

// NewMemoryStorage creates an empty in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Store persists one event.
func (s *MemoryStorage) Store(ctx context.Context, event *audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *event
	s.events = append(s.events, &clone)
	return nil
}

// Query retrieves events matching the filters, newest first.
func (s *MemoryStorage) Query(ctx context.Context, query *audit.Query) ([]*audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*audit.Event
	for _, event := range s.events {
		if matches(event, query) {
			matched = append(matched, event)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RecordedAt.After(matched[j].RecordedAt)
	})

	if query != nil && query.Offset > 0 {
		if query.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[query.Offset:]
	}
	if query != nil && query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

// Count returns the number of events matching the filters.
func (s *MemoryStorage) Count(ctx context.Context, query *audit.Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, event := range s.events {
		if matches(event, query) {
			count++
		}
	}
	return count, nil
}

// Delete removes events matching the filters.
func (s *MemoryStorage) Delete(ctx context.Context, query *audit.Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*audit.Event
	var deleted int64
	for _, event := range s.events {
		if matches(event, query) {
			deleted++
			continue
		}
		kept = append(kept, event)
	}
	s.events = kept
	return deleted, nil
}

// Close is a no-op for memory storage.
func (s *MemoryStorage) Close() error {
	return nil
}

// matches reports whether an event satisfies every query filter.
func matches(event *audit.Event, query *audit.Query) bool {
	if query == nil {
		return true
	}
	if query.StartTime != nil && event.RecordedAt.Before(*query.StartTime) {
		return false
	}
	if query.EndTime != nil && event.RecordedAt.After(*query.EndTime) {
		return false
	}
	if query.CorrelationID != "" && event.CorrelationID != query.CorrelationID {
		return false
	}
	if query.Stage != "" && event.Stage != query.Stage {
		return false
	}
	if query.Operation != "" && event.Operation != query.Operation {
		return false
	}
	if query.Outcome != "" && event.Outcome != query.Outcome {
		return false
	}
	return true
}

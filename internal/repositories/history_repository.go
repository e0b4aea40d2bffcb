package repositories

import (
	"context"
	"sync"

	"touristguide/internal/domain/models"
)

// HistoryRepository records a summary of every planned trip. List returns entries
// oldest first; implementations keep at most their configured limit.
type HistoryRepository interface {
	Append(ctx context.Context, entry models.HistoryEntry) error
	List(ctx context.Context) ([]models.HistoryEntry, error)
	Ping(ctx context.Context) error
	Name() string
}

type MemoryHistoryRepository struct {
	mu      sync.RWMutex
	entries []models.HistoryEntry
	limit   int
}

// NewMemoryHistoryRepository keeps the newest limit entries; limit <= 0 keeps everything.
func NewMemoryHistoryRepository(limit int) *MemoryHistoryRepository {
	return &MemoryHistoryRepository{limit: limit}
}

func (r *MemoryHistoryRepository) Append(_ context.Context, entry models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	if r.limit > 0 && len(r.entries) > r.limit {
		r.entries = append([]models.HistoryEntry(nil), r.entries[len(r.entries)-r.limit:]...)
	}
	return nil
}

func (r *MemoryHistoryRepository) List(_ context.Context) ([]models.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.HistoryEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func (r *MemoryHistoryRepository) Ping(context.Context) error { return nil }

func (r *MemoryHistoryRepository) Name() string { return "memory" }

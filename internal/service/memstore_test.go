package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"vocabox/internal/domain"
)

// memProgress is an in-memory progress store with the same guard semantics as postgres
type memProgress struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]domain.Progress
}

func newMemProgress() *memProgress {
	return &memProgress{records: make(map[int64]domain.Progress)}
}

func (m *memProgress) get(id int64) domain.Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id]
}

func (m *memProgress) forUser(userID int64) []domain.Progress {
	var out []domain.Progress
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memProgress) FindDue(_ context.Context, userID int64, now time.Time, limit int) ([]domain.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var due []domain.Progress
	for _, r := range m.forUser(userID) {
		if r.IsDue(now) {
			due = append(due, r)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].NextReviewDue.Before(due[j].NextReviewDue) })
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (m *memProgress) FindLeastRecentlyUpdated(_ context.Context, userID int64, limit int) ([]domain.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.forUser(userID)
	sort.SliceStable(all, func(i, j int) bool { return all[i].UpdatedAt.Before(all[j].UpdatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memProgress) FindAllForUser(_ context.Context, userID int64) ([]domain.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forUser(userID), nil
}

func (m *memProgress) FindAllForUserWithItems(_ context.Context, userID int64) ([]domain.ProgressItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.forUser(userID)
	out := make([]domain.ProgressItem, len(all))
	for i, r := range all {
		out[i] = domain.ProgressItem{Progress: r, Item: domain.Item{ID: r.ItemID, Frequency: int(r.ItemID)}}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Item.Frequency < out[j].Item.Frequency })
	return out, nil
}

func (m *memProgress) FindByID(_ context.Context, id int64) (*domain.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (m *memProgress) Update(_ context.Context, id, userID int64, patch domain.ProgressPatch, expectedUpdatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok || r.UserID != userID || !r.UpdatedAt.Equal(expectedUpdatedAt) {
		return domain.ErrConflict
	}
	r.BucketLevel = patch.BucketLevel
	r.NextReviewDue = patch.NextReviewDue
	r.LastQuality = patch.LastQuality
	r.ReviewCount = patch.ReviewCount
	r.CorrectCount = patch.CorrectCount
	r.IncorrectCount = patch.IncorrectCount
	r.UpdatedAt = patch.UpdatedAt
	m.records[id] = r
	return nil
}

func (m *memProgress) DeleteAllForUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteLocked(userID)
	return nil
}

func (m *memProgress) deleteLocked(userID int64) {
	for id, r := range m.records {
		if r.UserID == userID {
			delete(m.records, id)
		}
	}
}

func (m *memProgress) insertLocked(userID int64, itemIDs []int64, now time.Time) int {
	assigned := make(map[int64]bool)
	for _, r := range m.forUser(userID) {
		assigned[r.ItemID] = true
	}
	created := 0
	for _, itemID := range itemIDs {
		if assigned[itemID] {
			continue
		}
		assigned[itemID] = true
		m.nextID++
		m.records[m.nextID] = domain.Progress{
			ID:            m.nextID,
			UserID:        userID,
			ItemID:        itemID,
			BucketLevel:   1,
			NextReviewDue: now,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		created++
	}
	return created
}

func (m *memProgress) CreateBatch(_ context.Context, userID int64, itemIDs []int64, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(userID, itemIDs, now), nil
}

func (m *memProgress) ReplaceAllForUser(_ context.Context, userID int64, itemIDs []int64, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteLocked(userID)
	return m.insertLocked(userID, itemIDs, now), nil
}

func (m *memProgress) CountForUser(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.forUser(userID)), nil
}

func (m *memProgress) CountDue(_ context.Context, userID int64, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	due := 0
	for _, r := range m.forUser(userID) {
		if r.IsDue(now) {
			due++
		}
	}
	return due, nil
}

// staticItems serves items for any requested id
type staticItems struct{}

func (staticItems) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	item := domain.Item{ID: id, SourceText: "parola", TargetText: "word", Frequency: int(id)}
	return &item, nil
}

func (staticItems) GetByIDs(_ context.Context, ids []int64) ([]domain.Item, error) {
	items := make([]domain.Item, len(ids))
	for i, id := range ids {
		items[i] = domain.Item{ID: id, SourceText: "parola", TargetText: "word", Frequency: int(id)}
	}
	return items, nil
}

func (staticItems) TopByFrequency(_ context.Context, limit int) ([]domain.Item, error) {
	items := make([]domain.Item, limit)
	for i := range items {
		items[i] = domain.Item{ID: int64(i + 1), Frequency: i + 1}
	}
	return items, nil
}

// clockAt is a settable clock
type clockAt struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clockAt) set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *clockAt) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

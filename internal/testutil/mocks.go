package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vocabox/internal/domain"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) ListAuthorized(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockItemRepository is a mock for ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) TopByFrequency(ctx context.Context, limit int) ([]domain.Item, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) FindDue(ctx context.Context, userID int64, now time.Time, limit int) ([]domain.Progress, error) {
	args := m.Called(ctx, userID, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) FindLeastRecentlyUpdated(ctx context.Context, userID int64, limit int) ([]domain.Progress, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) FindAllForUser(ctx context.Context, userID int64) ([]domain.Progress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) FindAllForUserWithItems(ctx context.Context, userID int64) ([]domain.ProgressItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgressItem), args.Error(1)
}

func (m *MockProgressRepository) FindByID(ctx context.Context, id int64) (*domain.Progress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockProgressRepository) Update(ctx context.Context, id, userID int64, patch domain.ProgressPatch, expectedUpdatedAt time.Time) error {
	args := m.Called(ctx, id, userID, patch, expectedUpdatedAt)
	return args.Error(0)
}

func (m *MockProgressRepository) DeleteAllForUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProgressRepository) CreateBatch(ctx context.Context, userID int64, itemIDs []int64, now time.Time) (int, error) {
	args := m.Called(ctx, userID, itemIDs, now)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) ReplaceAllForUser(ctx context.Context, userID int64, itemIDs []int64, now time.Time) (int, error) {
	args := m.Called(ctx, userID, itemIDs, now)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) CountDue(ctx context.Context, userID int64, now time.Time) (int, error) {
	args := m.Called(ctx, userID, now)
	return args.Int(0), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyDue(ctx context.Context, userID int64, due int) error {
	args := m.Called(ctx, userID, due)
	return args.Error(0)
}

// MockUserInitializer is a mock for service.UserInitializer
type MockUserInitializer struct {
	mock.Mock
}

func (m *MockUserInitializer) InitializeUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

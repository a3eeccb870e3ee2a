package quota

import (
	"context"
	"sync"
	"time"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

// MemoryStore is an in-process Store used in tests and in deployments that
// run without a database. State does not survive restarts.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]domain.UserQuotaStatus
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]domain.UserQuotaStatus)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*domain.UserQuotaStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := status
	return &out, nil
}

func (s *MemoryStore) Put(_ context.Context, status *domain.UserQuotaStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[status.UserID] = *status
	return nil
}

func (s *MemoryStore) Increment(_ context.Context, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, ok := s.users[userID]
	if !ok {
		s.users[userID] = domain.UserQuotaStatus{
			UserID:               userID,
			DailyGenerationCount: 1,
			LastReset:            now,
		}
		return nil
	}
	status.DailyGenerationCount++
	s.users[userID] = status
	return nil
}

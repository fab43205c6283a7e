// Package memory provides map-backed repository implementations used when no
// database is configured, and by tests.
package memory

import (
	"context"
	"sync"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
)

// weightGoalStore implements adapter.WeightGoalRepository over a plain map.
// IDs come from an internal counter: monotonic, unique, never reused even
// after deletion.
type weightGoalStore struct {
	mu     sync.RWMutex
	goals  map[int]*entity.WeightGoal
	order  []int
	lastID int
}

// NewWeightGoalStore creates an empty in-memory weight goal repository.
func NewWeightGoalStore() adapter.WeightGoalRepository {
	return &weightGoalStore{
		goals: make(map[int]*entity.WeightGoal),
	}
}

// NextID allocates the next goal id.
func (s *weightGoalStore) NextID(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID, nil
}

// Create stores a new goal.
func (s *weightGoalStore) Create(_ context.Context, goal *entity.WeightGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *goal
	s.goals[goal.ID] = &copied
	s.order = append(s.order, goal.ID)
	return nil
}

// FindByID retrieves a goal by its id.
func (s *weightGoalStore) FindByID(_ context.Context, id int) (*entity.WeightGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[id]
	if !ok {
		return nil, notFound()
	}
	copied := *goal
	return &copied, nil
}

// FindByUserID retrieves all goals for a user in insertion order.
func (s *weightGoalStore) FindByUserID(_ context.Context, userID int) ([]*entity.WeightGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := []*entity.WeightGoal{}
	for _, id := range s.order {
		goal, ok := s.goals[id]
		if !ok || goal.UserID != userID {
			continue
		}
		copied := *goal
		goals = append(goals, &copied)
	}
	return goals, nil
}

// Update overwrites an existing goal.
func (s *weightGoalStore) Update(_ context.Context, goal *entity.WeightGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[goal.ID]; !ok {
		return notFound()
	}
	copied := *goal
	s.goals[goal.ID] = &copied
	return nil
}

// Delete hard-removes a goal. Deleting an absent id fails; the id is never
// handed out again.
func (s *weightGoalStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[id]; !ok {
		return notFound()
	}
	delete(s.goals, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists checks whether a goal id is present.
func (s *weightGoalStore) Exists(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.goals[id]
	return ok, nil
}

func notFound() error {
	return domainerror.NewWeightGoalError(
		domainerror.ErrCodeWeightGoalNotFound,
		"weight goal not found",
		domainerror.ErrWeightGoalNotFound,
	)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/vitaltrack/backend/internal/domain/entity"
)

// WeightGoalRepository defines the interface for weight goal persistence operations.
// IDs are monotonically increasing integers assigned at creation and never reused.
type WeightGoalRepository interface {
	// NextID allocates the next goal id.
	NextID(ctx context.Context) (int, error)

	// Create stores a new goal. The goal's ID must already be assigned.
	Create(ctx context.Context, goal *entity.WeightGoal) error

	// FindByID retrieves a goal by its id. Returns domain ErrWeightGoalNotFound if absent.
	FindByID(ctx context.Context, id int) (*entity.WeightGoal, error)

	// FindByUserID retrieves all goals for a given user in insertion order.
	FindByUserID(ctx context.Context, userID int) ([]*entity.WeightGoal, error)

	// Update overwrites an existing goal. Returns ErrWeightGoalNotFound if absent.
	Update(ctx context.Context, goal *entity.WeightGoal) error

	// Delete hard-removes a goal. Returns ErrWeightGoalNotFound if absent.
	Delete(ctx context.Context, id int) error

	// Exists checks whether a goal id is present.
	Exists(ctx context.Context, id int) (bool, error)
}

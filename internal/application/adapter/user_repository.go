package adapter

import (
	"context"

	"github.com/vitaltrack/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// NextID allocates the next user id.
	NextID(ctx context.Context) (int, error)

	// Create stores a new user. The user's ID must already be assigned.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id. Returns domain ErrUserNotFound if absent.
	FindByID(ctx context.Context, id int) (*entity.User, error)

	// FindByEmail retrieves a user by email. Returns ErrUserNotFound if absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether an email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

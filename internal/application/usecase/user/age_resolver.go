package user

import (
	"context"
	"time"

	"github.com/vitaltrack/backend/internal/application/adapter"
)

// ageResolver implements adapter.UserProfileService on top of the user
// repository, resolving age from the stored birth date.
type ageResolver struct {
	userRepo adapter.UserRepository
	now      func() time.Time
}

// NewAgeResolver creates a UserProfileService backed by the user repository.
func NewAgeResolver(userRepo adapter.UserRepository) adapter.UserProfileService {
	return &ageResolver{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// GetAge returns the user's current age in whole years.
func (r *ageResolver) GetAge(ctx context.Context, userID int) (int, error) {
	user, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.AgeAt(r.now().UTC()), nil
}

package user

import (
	"context"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
)

// GetProfileInput represents the input for profile retrieval.
type GetProfileInput struct {
	UserID int
}

// GetProfileOutput represents the output of profile retrieval.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase handles retrieval of the authenticated user's profile.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute performs the profile retrieval.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{User: user}, nil
}

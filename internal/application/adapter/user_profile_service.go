package adapter

import "context"

// UserProfileService resolves profile facts about a user at goal-creation
// time. Abstracted so the goal engine does not depend on how profiles are
// stored; the age contract (reject under-18 users) is enforced by the caller.
type UserProfileService interface {
	// GetAge returns the user's current age in whole years.
	GetAge(ctx context.Context, userID int) (int, error)
}

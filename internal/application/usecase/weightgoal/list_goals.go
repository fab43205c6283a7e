package weightgoal

import (
	"context"
	"fmt"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
)

// ListWeightGoalsInput represents the input for listing a user's goals.
type ListWeightGoalsInput struct {
	UserID int
}

// ListWeightGoalsOutput represents the output of the goal listing.
type ListWeightGoalsOutput struct {
	Goals []entity.WeightGoalSummary
	Total int
}

// ListWeightGoalsUseCase handles listing all goals of a user as summaries,
// in creation order.
type ListWeightGoalsUseCase struct {
	goalRepo adapter.WeightGoalRepository
}

// NewListWeightGoalsUseCase creates a new ListWeightGoalsUseCase instance.
func NewListWeightGoalsUseCase(goalRepo adapter.WeightGoalRepository) *ListWeightGoalsUseCase {
	return &ListWeightGoalsUseCase{goalRepo: goalRepo}
}

// Execute performs the goal listing.
func (uc *ListWeightGoalsUseCase) Execute(ctx context.Context, input ListWeightGoalsInput) (*ListWeightGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight goals: %w", err)
	}

	summaries := make([]entity.WeightGoalSummary, 0, len(goals))
	for _, goal := range goals {
		summaries = append(summaries, goal.Summary())
	}

	return &ListWeightGoalsOutput{
		Goals: summaries,
		Total: len(summaries),
	}, nil
}

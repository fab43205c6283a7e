package weightgoal

import (
	"context"

	"github.com/vitaltrack/backend/internal/application/adapter"
)

// DeleteWeightGoalInput represents the input for goal deletion.
type DeleteWeightGoalInput struct {
	GoalID int
}

// DeleteWeightGoalOutput represents the output of goal deletion.
type DeleteWeightGoalOutput struct {
	Message string
}

// DeleteWeightGoalUseCase handles hard deletion of a goal.
type DeleteWeightGoalUseCase struct {
	goalRepo adapter.WeightGoalRepository
}

// NewDeleteWeightGoalUseCase creates a new DeleteWeightGoalUseCase instance.
func NewDeleteWeightGoalUseCase(goalRepo adapter.WeightGoalRepository) *DeleteWeightGoalUseCase {
	return &DeleteWeightGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal deletion. Deleting an absent goal is an error,
// not a no-op.
func (uc *DeleteWeightGoalUseCase) Execute(ctx context.Context, input DeleteWeightGoalInput) (*DeleteWeightGoalOutput, error) {
	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return nil, err
	}
	return &DeleteWeightGoalOutput{Message: "Weight goal deleted successfully"}, nil
}

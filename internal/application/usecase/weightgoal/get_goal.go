package weightgoal

import (
	"context"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
)

// GetWeightGoalInput represents the input for retrieving a single goal.
type GetWeightGoalInput struct {
	GoalID int
}

// GetWeightGoalOutput represents the output of goal retrieval.
type GetWeightGoalOutput struct {
	Goal *entity.WeightGoal
}

// GetWeightGoalUseCase handles retrieval of a single goal by id.
type GetWeightGoalUseCase struct {
	goalRepo adapter.WeightGoalRepository
}

// NewGetWeightGoalUseCase creates a new GetWeightGoalUseCase instance.
func NewGetWeightGoalUseCase(goalRepo adapter.WeightGoalRepository) *GetWeightGoalUseCase {
	return &GetWeightGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal retrieval.
func (uc *GetWeightGoalUseCase) Execute(ctx context.Context, input GetWeightGoalInput) (*GetWeightGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}
	return &GetWeightGoalOutput{Goal: goal}, nil
}

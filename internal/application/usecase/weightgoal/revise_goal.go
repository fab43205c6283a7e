package weightgoal

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// ManualAdjustments are the user-proposed overrides in a revision request.
type ManualAdjustments struct {
	NewTargetWeight  *decimal.Decimal
	NewDurationWeeks *int
}

// ReviseWeightGoalInput represents the input for a goal revision.
type ReviseWeightGoalInput struct {
	GoalID             int
	Reason             valueobject.RevisionReason
	ApproveAdjustments bool
	ManualAdjustments  *ManualAdjustments
}

// ProposedAdjustments is the preview of what a revision would change.
type ProposedAdjustments struct {
	NewTargetWeight  decimal.Decimal `json:"newTargetWeight"`
	NewDurationWeeks int             `json:"newDurationWeeks"`
	Rationale        string          `json:"rationale"`
	PlanImpact       string          `json:"planImpact"`
}

// ReviseWeightGoalOutput represents the output of a goal revision.
type ReviseWeightGoalOutput struct {
	Goal                *entity.WeightGoal
	ProposedAdjustments ProposedAdjustments
	Applied             bool
}

// ReviseWeightGoalUseCase handles goal revision: computing proposed
// adjustments and, when approved, applying them as a constrained update.
// Without approval the revision is a pure preview with no persisted effect.
type ReviseWeightGoalUseCase struct {
	goalRepo      adapter.WeightGoalRepository
	updateUseCase *UpdateWeightGoalUseCase
}

// NewReviseWeightGoalUseCase creates a new ReviseWeightGoalUseCase instance.
func NewReviseWeightGoalUseCase(goalRepo adapter.WeightGoalRepository, updateUseCase *UpdateWeightGoalUseCase) *ReviseWeightGoalUseCase {
	return &ReviseWeightGoalUseCase{
		goalRepo:      goalRepo,
		updateUseCase: updateUseCase,
	}
}

// Execute performs the goal revision.
func (uc *ReviseWeightGoalUseCase) Execute(ctx context.Context, input ReviseWeightGoalInput) (*ReviseWeightGoalOutput, error) {
	if !valueobject.IsValidRevisionReason(input.Reason) {
		return nil, invalidField("reason is not a valid revision reason")
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	proposed := ProposedAdjustments{
		NewTargetWeight:  goal.TargetWeight,
		NewDurationWeeks: goal.DurationWeeks,
		Rationale:        fmt.Sprintf("Revision requested due to: %s", input.Reason),
		PlanImpact:       "The plan will be adjusted to the new parameters",
	}
	if input.ManualAdjustments != nil {
		if input.ManualAdjustments.NewTargetWeight != nil {
			proposed.NewTargetWeight = *input.ManualAdjustments.NewTargetWeight
		}
		if input.ManualAdjustments.NewDurationWeeks != nil {
			proposed.NewDurationWeeks = *input.ManualAdjustments.NewDurationWeeks
		}
	}

	if !input.ApproveAdjustments {
		return &ReviseWeightGoalOutput{
			Goal:                goal,
			ProposedAdjustments: proposed,
			Applied:             false,
		}, nil
	}

	updated, err := uc.updateUseCase.Execute(ctx, UpdateWeightGoalInput{
		GoalID:        input.GoalID,
		TargetWeight:  &proposed.NewTargetWeight,
		DurationWeeks: &proposed.NewDurationWeeks,
	})
	if err != nil {
		return nil, err
	}

	return &ReviseWeightGoalOutput{
		Goal:                updated.Goal,
		ProposedAdjustments: proposed,
		Applied:             true,
	}, nil
}

package weightgoal

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// UpdateWeightGoalInput represents the input for a partial goal update.
// Nil pointers leave the corresponding field untouched.
type UpdateWeightGoalInput struct {
	GoalID             int
	CurrentWeight      *decimal.Decimal
	TargetWeight       *decimal.Decimal
	DurationWeeks      *int
	SecondaryGoals     *entity.SecondaryGoals
	MainMotivation     *valueobject.Motivation
	PersonalMotivation *string
	PreferredApproach  *valueobject.Approach
	AutoMilestones     *bool
	MilestoneFrequency *valueobject.MilestoneFrequency
	CustomMilestones   []entity.CustomMilestone
	UserApproval       *bool
	AlertPreferences   *entity.AlertPreferences
	PersonalizedAlerts []entity.PersonalizedAlert
	SmartConfiguration *bool
	Active             *bool
}

// UpdateWeightGoalOutput represents the output of a goal update.
type UpdateWeightGoalOutput struct {
	Goal *entity.WeightGoal
}

// UpdateWeightGoalUseCase handles partial updates of a goal. When weight or
// duration change, the safety validation, derived loss and caloric deficit
// are recomputed against the bracket stored at creation. The recomputed
// validation is recorded but never blocks the update; the rejection gate
// applies at creation only.
type UpdateWeightGoalUseCase struct {
	goalRepo adapter.WeightGoalRepository
}

// NewUpdateWeightGoalUseCase creates a new UpdateWeightGoalUseCase instance.
func NewUpdateWeightGoalUseCase(goalRepo adapter.WeightGoalRepository) *UpdateWeightGoalUseCase {
	return &UpdateWeightGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal update.
func (uc *UpdateWeightGoalUseCase) Execute(ctx context.Context, input UpdateWeightGoalInput) (*UpdateWeightGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	if err := validateUpdateFields(input); err != nil {
		return nil, err
	}

	recompute := input.CurrentWeight != nil || input.TargetWeight != nil || input.DurationWeeks != nil

	if input.CurrentWeight != nil {
		goal.CurrentWeight = *input.CurrentWeight
	}
	if input.TargetWeight != nil {
		goal.TargetWeight = *input.TargetWeight
	}
	if input.DurationWeeks != nil {
		goal.DurationWeeks = *input.DurationWeeks
	}

	if recompute {
		// The derived-loss invariant still holds on the merged values
		if !goal.TargetWeight.LessThan(goal.CurrentWeight) {
			return nil, domainerror.NewWeightGoalError(
				domainerror.ErrCodeInvalidTargetWeight,
				"target weight must be lower than current weight",
				domainerror.ErrInvalidTargetWeight,
			)
		}

		goal.TotalWeightToLose = goal.CurrentWeight.Sub(goal.TargetWeight)
		goal.SafetyValidation = ValidateWeightLossSafety(goal.CurrentWeight, goal.TargetWeight, goal.DurationWeeks, goal.AgeBracket)
		goal.DailyCaloricDeficit = CalculateDailyCaloricDeficit(goal.TotalWeightToLose, goal.DurationWeeks, goal.AgeBracket)
	}

	if input.SecondaryGoals != nil {
		goal.SecondaryGoals = input.SecondaryGoals
	}
	if input.MainMotivation != nil {
		goal.MainMotivation = *input.MainMotivation
	}
	if input.PersonalMotivation != nil {
		goal.PersonalMotivation = input.PersonalMotivation
	}
	if input.PreferredApproach != nil {
		goal.PreferredApproach = *input.PreferredApproach
	}
	if input.AutoMilestones != nil {
		goal.AutoMilestones = *input.AutoMilestones
	}
	if input.MilestoneFrequency != nil {
		goal.MilestoneFrequency = input.MilestoneFrequency
	}
	if input.CustomMilestones != nil {
		goal.CustomMilestones = input.CustomMilestones
	}
	if input.UserApproval != nil {
		goal.UserApproval = *input.UserApproval
	}
	// Alert preferences are stored as-is; configured and objective alerts
	// are generated once at creation and not rebuilt here.
	if input.AlertPreferences != nil {
		goal.AlertPreferences = *input.AlertPreferences
	}
	if input.PersonalizedAlerts != nil {
		goal.PersonalizedAlerts = input.PersonalizedAlerts
	}
	if input.SmartConfiguration != nil {
		goal.SmartConfiguration = *input.SmartConfiguration
	}
	if input.Active != nil {
		goal.Active = *input.Active
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update weight goal: %w", err)
	}

	return &UpdateWeightGoalOutput{Goal: goal}, nil
}

func validateUpdateFields(input UpdateWeightGoalInput) error {
	minWeight := decimal.NewFromInt(valueobject.MinWeightKg)
	maxWeight := decimal.NewFromInt(valueobject.MaxWeightKg)

	if input.CurrentWeight != nil && (input.CurrentWeight.LessThan(minWeight) || input.CurrentWeight.GreaterThan(maxWeight)) {
		return invalidField("currentWeight must be between 30 and 300 kg")
	}
	if input.TargetWeight != nil && (input.TargetWeight.LessThan(minWeight) || input.TargetWeight.GreaterThan(maxWeight)) {
		return invalidField("targetWeight must be between 30 and 300 kg")
	}
	if input.DurationWeeks != nil && (*input.DurationWeeks < valueobject.MinDurationWeeks || *input.DurationWeeks > valueobject.MaxDurationWeeks) {
		return invalidField("durationWeeks must be between 4 and 104")
	}
	if input.MainMotivation != nil && !valueobject.IsValidMotivation(*input.MainMotivation) {
		return invalidField("mainMotivation is not a valid option")
	}
	if input.PreferredApproach != nil && !valueobject.IsValidApproach(*input.PreferredApproach) {
		return invalidField("preferredApproach is not a valid option")
	}
	if input.MilestoneFrequency != nil && !valueobject.IsValidMilestoneFrequency(*input.MilestoneFrequency) {
		return invalidField("milestoneFrequency is not a valid option")
	}
	if len(input.CustomMilestones) > 10 {
		return invalidField("customMilestones is limited to 10 entries")
	}
	if len(input.PersonalizedAlerts) > 20 {
		return invalidField("personalizedAlerts is limited to 20 entries")
	}
	if input.AlertPreferences != nil {
		for _, desired := range input.AlertPreferences.DesiredTypes {
			if !valueobject.IsValidAlertType(desired) {
				return invalidField("alertPreferences.desiredTypes contains an unknown alert type")
			}
		}
		for _, preferred := range []string{
			input.AlertPreferences.PreferredTimes.Morning,
			input.AlertPreferences.PreferredTimes.Afternoon,
			input.AlertPreferences.PreferredTimes.Evening,
		} {
			if preferred != "" && !timeOfDayPattern.MatchString(preferred) {
				return invalidField("alertPreferences.preferredTimes must use the HH:MM format")
			}
		}
	}
	for _, alert := range input.PersonalizedAlerts {
		if alert.Time != "" && !timeOfDayPattern.MatchString(alert.Time) {
			return invalidField("personalizedAlerts time must use the HH:MM format")
		}
	}
	return nil
}

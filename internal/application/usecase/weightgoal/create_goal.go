package weightgoal

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// CreateWeightGoalInput represents the input for goal creation.
type CreateWeightGoalInput struct {
	UserID             int
	CurrentWeight      decimal.Decimal
	TargetWeight       decimal.Decimal
	DurationWeeks      int
	SecondaryGoals     *entity.SecondaryGoals
	MainMotivation     valueobject.Motivation
	PersonalMotivation *string
	PreferredApproach  valueobject.Approach
	PreviousExperience valueobject.Experience
	AutoMilestones     bool
	MilestoneFrequency *valueobject.MilestoneFrequency
	CustomMilestones   []entity.CustomMilestone
	AlertPreferences   entity.AlertPreferences
	PersonalizedAlerts []entity.PersonalizedAlert
	SmartConfiguration bool
}

// CreateWeightGoalOutput represents the output of goal creation.
type CreateWeightGoalOutput struct {
	Goal *entity.WeightGoal
}

// CreateWeightGoalUseCase handles goal creation: safety validation, plan
// generation and persistence. A rejected validation aborts before any write.
type CreateWeightGoalUseCase struct {
	goalRepo       adapter.WeightGoalRepository
	profileService adapter.UserProfileService
}

// NewCreateWeightGoalUseCase creates a new CreateWeightGoalUseCase instance.
func NewCreateWeightGoalUseCase(goalRepo adapter.WeightGoalRepository, profileService adapter.UserProfileService) *CreateWeightGoalUseCase {
	return &CreateWeightGoalUseCase{
		goalRepo:       goalRepo,
		profileService: profileService,
	}
}

// Execute performs the goal creation.
func (uc *CreateWeightGoalUseCase) Execute(ctx context.Context, input CreateWeightGoalInput) (*CreateWeightGoalOutput, error) {
	// Validate field ranges and enum options
	if err := validateGoalFields(input); err != nil {
		return nil, err
	}

	// Target must be strictly below current weight
	if !input.TargetWeight.LessThan(input.CurrentWeight) {
		return nil, domainerror.NewWeightGoalError(
			domainerror.ErrCodeInvalidTargetWeight,
			"target weight must be lower than current weight",
			domainerror.ErrInvalidTargetWeight,
		)
	}

	// Resolve age and classify the bracket
	age, err := uc.profileService.GetAge(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user age: %w", err)
	}
	if age < valueobject.MinAge {
		return nil, domainerror.NewWeightGoalError(
			domainerror.ErrCodeUnderageUser,
			"user must be at least 18 years old",
			domainerror.ErrUnderageUser,
		)
	}
	bracket := valueobject.ClassifyAgeBracket(age)

	// Safety validation; a rejected goal is never persisted
	validation := ValidateWeightLossSafety(input.CurrentWeight, input.TargetWeight, input.DurationWeeks, bracket)
	if validation.Status == valueobject.ValidationStatusRejected {
		return nil, domainerror.NewWeightGoalErrorWithDetails(
			domainerror.ErrCodeUnsafeGoal,
			"goal does not meet safety criteria",
			domainerror.ErrUnsafeGoal,
			validation,
		)
	}

	totalLoss := input.CurrentWeight.Sub(input.TargetWeight)

	id, err := uc.goalRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate goal id: %w", err)
	}

	now := time.Now().UTC()
	goal := &entity.WeightGoal{
		ID:                 id,
		UserID:             input.UserID,
		CurrentWeight:      input.CurrentWeight,
		TargetWeight:       input.TargetWeight,
		DurationWeeks:      input.DurationWeeks,
		TotalWeightToLose:  totalLoss,
		AgeBracket:         bracket,
		UserAge:            age,
		SecondaryGoals:     input.SecondaryGoals,
		MainMotivation:     input.MainMotivation,
		PersonalMotivation: input.PersonalMotivation,
		PreferredApproach:  input.PreferredApproach,
		PreviousExperience: input.PreviousExperience,
		AutoMilestones:     input.AutoMilestones,
		MilestoneFrequency: input.MilestoneFrequency,
		CustomMilestones:   input.CustomMilestones,

		SafetyValidation:    validation,
		UserApproval:        false,
		DailyCaloricDeficit: CalculateDailyCaloricDeficit(totalLoss, input.DurationWeeks, bracket),
		ActionPlan:          GenerateActionPlan(),
		ConfiguredAlerts:    GenerateConfiguredAlerts(input.AlertPreferences),
		ReviewFrequency:     ReviewFrequencyFor(input.DurationWeeks),
		ReviewCriteria:      BuildReviewCriteria(bracket),
		NextReviewDate:      now.Add(firstReviewDelay),
		ReviewAlerts:        []entity.ReviewAlert{},

		AlertPreferences:   input.AlertPreferences,
		PersonalizedAlerts: input.PersonalizedAlerts,
		SmartConfiguration: input.SmartConfiguration,
		InteractionHistory: entity.InteractionHistory{
			ResponseRate:       0,
			MostEffectiveTimes: []string{},
			MostFollowedTypes:  []valueobject.AlertType{},
		},
		ObjectiveAlerts:          GenerateObjectiveAlerts(input.AlertPreferences),
		SecondaryObjectiveAlerts: []entity.SecondaryObjectiveAlert{},
		MilestoneAlerts:          []entity.MilestoneAlert{},
		MotivationalAlerts:       []entity.MotivationalAlert{},

		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create weight goal: %w", err)
	}

	return &CreateWeightGoalOutput{Goal: goal}, nil
}

func validateGoalFields(input CreateWeightGoalInput) error {
	minWeight := decimal.NewFromInt(valueobject.MinWeightKg)
	maxWeight := decimal.NewFromInt(valueobject.MaxWeightKg)

	if input.CurrentWeight.LessThan(minWeight) || input.CurrentWeight.GreaterThan(maxWeight) {
		return invalidField("currentWeight must be between 30 and 300 kg")
	}
	if input.TargetWeight.LessThan(minWeight) || input.TargetWeight.GreaterThan(maxWeight) {
		return invalidField("targetWeight must be between 30 and 300 kg")
	}
	if input.DurationWeeks < valueobject.MinDurationWeeks || input.DurationWeeks > valueobject.MaxDurationWeeks {
		return invalidField("durationWeeks must be between 4 and 104")
	}
	if !valueobject.IsValidMotivation(input.MainMotivation) {
		return invalidField("mainMotivation is not a valid option")
	}
	if !valueobject.IsValidApproach(input.PreferredApproach) {
		return invalidField("preferredApproach is not a valid option")
	}
	if !valueobject.IsValidExperience(input.PreviousExperience) {
		return invalidField("previousExperience is not a valid option")
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
	for _, alert := range input.PersonalizedAlerts {
		if alert.Time != "" && !timeOfDayPattern.MatchString(alert.Time) {
			return invalidField("personalizedAlerts time must use the HH:MM format")
		}
	}
	return nil
}

// timeOfDayPattern matches 24-hour HH:MM times.
var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func invalidField(message string) error {
	return domainerror.NewWeightGoalError(
		domainerror.ErrCodeInvalidGoalField,
		message,
		domainerror.ErrInvalidGoalField,
	)
}

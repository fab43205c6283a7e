package weightgoal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/vitaltrack/backend/internal/domain/error"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
	"github.com/vitaltrack/backend/internal/integration/persistence/memory"
)

type stubProfileService struct {
	age int
	err error
}

func (s *stubProfileService) GetAge(_ context.Context, _ int) (int, error) {
	return s.age, s.err
}

func newTestUseCases(age int) (*CreateWeightGoalUseCase, *GetWeightGoalUseCase, *ListWeightGoalsUseCase, *UpdateWeightGoalUseCase, *DeleteWeightGoalUseCase, *ReviseWeightGoalUseCase) {
	repo := memory.NewWeightGoalStore()
	profiles := &stubProfileService{age: age}

	createUC := NewCreateWeightGoalUseCase(repo, profiles)
	getUC := NewGetWeightGoalUseCase(repo)
	listUC := NewListWeightGoalsUseCase(repo)
	updateUC := NewUpdateWeightGoalUseCase(repo)
	deleteUC := NewDeleteWeightGoalUseCase(repo)
	reviseUC := NewReviseWeightGoalUseCase(repo, updateUC)
	return createUC, getUC, listUC, updateUC, deleteUC, reviseUC
}

func validCreateInput(userID int) CreateWeightGoalInput {
	return CreateWeightGoalInput{
		UserID:             userID,
		CurrentWeight:      decimal.NewFromInt(90),
		TargetWeight:       decimal.NewFromInt(82),
		DurationWeeks:      16,
		MainMotivation:     valueobject.MotivationHealth,
		PreferredApproach:  valueobject.ApproachCombined,
		PreviousExperience: valueobject.ExperienceFirstTime,
	}
}

func TestCreateWeightGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("creates goal with all derived fields", func(t *testing.T) {
		createUC, _, _, _, _, _ := newTestUseCases(30)

		before := time.Now().UTC()
		output, err := createUC.Execute(ctx, validCreateInput(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		goal := output.Goal
		if goal.ID != 1 {
			t.Errorf("expected first goal id 1, got %d", goal.ID)
		}
		if goal.AgeBracket != valueobject.AgeBracketAdult {
			t.Errorf("expected adult bracket for age 30, got %s", goal.AgeBracket)
		}
		if goal.UserAge != 30 {
			t.Errorf("expected stored age 30, got %d", goal.UserAge)
		}
		if !goal.TotalWeightToLose.Equal(decimal.NewFromInt(8)) {
			t.Errorf("expected total loss 8, got %s", goal.TotalWeightToLose)
		}
		if goal.SafetyValidation.Status != valueobject.ValidationStatusApproved {
			t.Errorf("expected approved validation, got %s", goal.SafetyValidation.Status)
		}
		// 8 * 7700 / 112 * 0.9 = 495
		if goal.DailyCaloricDeficit != 495 {
			t.Errorf("expected deficit 495, got %d", goal.DailyCaloricDeficit)
		}
		if goal.ReviewFrequency != valueobject.ReviewFrequencyBiweekly {
			t.Errorf("expected biweekly review for 16 weeks, got %s", goal.ReviewFrequency)
		}
		if goal.NextReviewDate.Before(before.Add(7*24*time.Hour - time.Minute)) {
			t.Errorf("expected first review about 7 days out, got %s", goal.NextReviewDate)
		}
		if len(goal.ObjectiveAlerts) != 1 {
			t.Errorf("expected 1 objective alert, got %d", len(goal.ObjectiveAlerts))
		}
		if !goal.Active {
			t.Error("expected new goal to be active")
		}
		if goal.UserApproval {
			t.Error("expected user approval to start false")
		}
	})

	t.Run("rejects target weight at or above current weight", func(t *testing.T) {
		createUC, _, listUC, _, _, _ := newTestUseCases(30)

		input := validCreateInput(1)
		input.TargetWeight = input.CurrentWeight
		_, err := createUC.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidTargetWeight) {
			t.Fatalf("expected ErrInvalidTargetWeight, got %v", err)
		}

		listed, err := listUC.Execute(ctx, ListWeightGoalsInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if listed.Total != 0 {
			t.Errorf("expected nothing persisted, found %d goals", listed.Total)
		}
	})

	t.Run("rejected safety validation persists nothing", func(t *testing.T) {
		createUC, _, listUC, _, _, _ := newTestUseCases(30)

		input := validCreateInput(1)
		input.CurrentWeight = decimal.NewFromInt(100)
		input.TargetWeight = decimal.NewFromInt(70)
		input.DurationWeeks = 10

		_, err := createUC.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrUnsafeGoal) {
			t.Fatalf("expected ErrUnsafeGoal, got %v", err)
		}

		var goalErr *domainerror.WeightGoalError
		if !errors.As(err, &goalErr) {
			t.Fatal("expected a WeightGoalError")
		}
		if goalErr.Details == nil {
			t.Error("expected the rejected validation result in the error details")
		}

		listed, err := listUC.Execute(ctx, ListWeightGoalsInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if listed.Total != 0 {
			t.Errorf("expected nothing persisted, found %d goals", listed.Total)
		}
	})

	t.Run("rejects underage users", func(t *testing.T) {
		createUC, _, _, _, _, _ := newTestUseCases(17)

		_, err := createUC.Execute(ctx, validCreateInput(1))
		if !errors.Is(err, domainerror.ErrUnderageUser) {
			t.Fatalf("expected ErrUnderageUser, got %v", err)
		}
	})

	t.Run("rejects out-of-range duration", func(t *testing.T) {
		createUC, _, _, _, _, _ := newTestUseCases(30)

		input := validCreateInput(1)
		input.DurationWeeks = 3
		_, err := createUC.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidGoalField) {
			t.Fatalf("expected ErrInvalidGoalField, got %v", err)
		}
	})

	t.Run("rejects malformed preferred times", func(t *testing.T) {
		createUC, _, _, _, _, _ := newTestUseCases(30)

		input := validCreateInput(1)
		input.AlertPreferences.PreferredTimes.Morning = "25:99"
		_, err := createUC.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidGoalField) {
			t.Fatalf("expected ErrInvalidGoalField, got %v", err)
		}
	})
}

func TestListWeightGoals(t *testing.T) {
	ctx := context.Background()
	createUC, _, listUC, _, _, _ := newTestUseCases(30)

	for i := 0; i < 3; i++ {
		if _, err := createUC.Execute(ctx, validCreateInput(7)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// A goal for another user must not leak into the listing.
	if _, err := createUC.Execute(ctx, validCreateInput(8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := listUC.Execute(ctx, ListWeightGoalsInput{UserID: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Total != 3 {
		t.Fatalf("expected 3 goals, got %d", output.Total)
	}
	for i := 1; i < len(output.Goals); i++ {
		if output.Goals[i].ID <= output.Goals[i-1].ID {
			t.Errorf("expected strictly increasing ids in insertion order, got %d after %d",
				output.Goals[i].ID, output.Goals[i-1].ID)
		}
	}
}

func TestUpdateWeightGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivation does not touch derived fields", func(t *testing.T) {
		createUC, _, _, updateUC, _, _ := newTestUseCases(30)

		created, err := createUC.Execute(ctx, validCreateInput(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		inactive := false
		updated, err := updateUC.Execute(ctx, UpdateWeightGoalInput{
			GoalID: created.Goal.ID,
			Active: &inactive,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if updated.Goal.Active {
			t.Error("expected goal to be inactive")
		}
		if updated.Goal.SafetyValidation.SafetyScore != created.Goal.SafetyValidation.SafetyScore {
			t.Error("expected safety validation to be untouched")
		}
		if updated.Goal.DailyCaloricDeficit != created.Goal.DailyCaloricDeficit {
			t.Error("expected caloric deficit to be untouched")
		}
	})

	t.Run("changing target weight recomputes safety and deficit", func(t *testing.T) {
		createUC, _, _, updateUC, _, _ := newTestUseCases(30)

		created, err := createUC.Execute(ctx, validCreateInput(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		time.Sleep(2 * time.Millisecond)

		newTarget := decimal.NewFromInt(78)
		updated, err := updateUC.Execute(ctx, UpdateWeightGoalInput{
			GoalID:       created.Goal.ID,
			TargetWeight: &newTarget,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !updated.Goal.TotalWeightToLose.Equal(decimal.NewFromInt(12)) {
			t.Errorf("expected recomputed total loss 12, got %s", updated.Goal.TotalWeightToLose)
		}
		if updated.Goal.DailyCaloricDeficit == created.Goal.DailyCaloricDeficit {
			t.Error("expected caloric deficit to change")
		}
		if !updated.Goal.UpdatedAt.After(created.Goal.UpdatedAt) {
			t.Error("expected updatedAt to advance")
		}
	})

	t.Run("update keeps generated plan data intact", func(t *testing.T) {
		createUC, _, _, updateUC, _, _ := newTestUseCases(30)

		created, err := createUC.Execute(ctx, validCreateInput(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		weeks := 40
		updated, err := updateUC.Execute(ctx, UpdateWeightGoalInput{
			GoalID:        created.Goal.ID,
			DurationWeeks: &weeks,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Review cadence and action plan are fixed at creation.
		if updated.Goal.ReviewFrequency != created.Goal.ReviewFrequency {
			t.Error("expected review frequency to stay as created")
		}
		if len(updated.Goal.ActionPlan.WeeklySchedule) != 4 {
			t.Error("expected action plan to survive the update")
		}
	})

	t.Run("update of a missing goal fails", func(t *testing.T) {
		_, _, _, updateUC, _, _ := newTestUseCases(30)

		active := true
		_, err := updateUC.Execute(ctx, UpdateWeightGoalInput{GoalID: 99, Active: &active})
		if !errors.Is(err, domainerror.ErrWeightGoalNotFound) {
			t.Fatalf("expected ErrWeightGoalNotFound, got %v", err)
		}
	})
}

func TestReviseWeightGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("preview without approval changes nothing", func(t *testing.T) {
		createUC, getUC, _, _, _, reviseUC := newTestUseCases(30)

		created, err := createUC.Execute(ctx, validCreateInput(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newTarget := decimal.NewFromInt(80)
		output, err := reviseUC.Execute(ctx, ReviseWeightGoalInput{
			GoalID:             created.Goal.ID,
			Reason:             valueobject.RevisionReasonSlowProgress,
			ApproveAdjustments: false,
			ManualAdjustments:  &ManualAdjustments{NewTargetWeight: &newTarget},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Applied {
			t.Error("expected revision to be a pure preview")
		}
		if !output.ProposedAdjustments.NewTargetWeight.Equal(newTarget) {
			t.Errorf("expected proposed target 80, got %s", output.ProposedAdjustments.NewTargetWeight)
		}

		fetched, err := getUC.Execute(ctx, GetWeightGoalInput{GoalID: created.Goal.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fetched.Goal.TargetWeight.Equal(created.Goal.TargetWeight) {
			t.Error("expected persisted target weight to be unchanged")
		}
		if !fetched.Goal.UpdatedAt.Equal(created.Goal.UpdatedAt) {
			t.Error("expected no persisted mutation at all")
		}
	})

	t.Run("approved adjustments apply as an update", func(t *testing.T) {
		createUC, getUC, _, _, _, reviseUC := newTestUseCases(30)

		created, err := createUC.Execute(ctx, validCreateInput(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		newTarget := decimal.NewFromInt(80)
		newWeeks := 24
		output, err := reviseUC.Execute(ctx, ReviseWeightGoalInput{
			GoalID:             created.Goal.ID,
			Reason:             valueobject.RevisionReasonCircumstanceChange,
			ApproveAdjustments: true,
			ManualAdjustments: &ManualAdjustments{
				NewTargetWeight:  &newTarget,
				NewDurationWeeks: &newWeeks,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Applied {
			t.Error("expected adjustments to be applied")
		}

		fetched, err := getUC.Execute(ctx, GetWeightGoalInput{GoalID: created.Goal.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fetched.Goal.TargetWeight.Equal(newTarget) {
			t.Errorf("expected persisted target 80, got %s", fetched.Goal.TargetWeight)
		}
		if fetched.Goal.DurationWeeks != newWeeks {
			t.Errorf("expected persisted duration 24, got %d", fetched.Goal.DurationWeeks)
		}
	})

	t.Run("unknown revision reason fails", func(t *testing.T) {
		createUC, _, _, _, _, reviseUC := newTestUseCases(30)

		created, err := createUC.Execute(ctx, validCreateInput(1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = reviseUC.Execute(ctx, ReviseWeightGoalInput{
			GoalID: created.Goal.ID,
			Reason: "bored",
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalField) {
			t.Fatalf("expected ErrInvalidGoalField, got %v", err)
		}
	})
}

func TestDeleteWeightGoal(t *testing.T) {
	ctx := context.Background()
	createUC, getUC, _, _, deleteUC, _ := newTestUseCases(30)

	created, err := createUC.Execute(ctx, validCreateInput(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := deleteUC.Execute(ctx, DeleteWeightGoalInput{GoalID: created.Goal.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("expected a confirmation message")
	}

	_, err = getUC.Execute(ctx, GetWeightGoalInput{GoalID: created.Goal.ID})
	if !errors.Is(err, domainerror.ErrWeightGoalNotFound) {
		t.Fatalf("expected ErrWeightGoalNotFound after delete, got %v", err)
	}

	// Deleting again is a not-found error, not a silent success.
	_, err = deleteUC.Execute(ctx, DeleteWeightGoalInput{GoalID: created.Goal.ID})
	if !errors.Is(err, domainerror.ErrWeightGoalNotFound) {
		t.Fatalf("expected ErrWeightGoalNotFound on repeat delete, got %v", err)
	}
}

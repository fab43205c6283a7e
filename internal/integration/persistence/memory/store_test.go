package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
)

func newGoal(id, userID int) *entity.WeightGoal {
	return &entity.WeightGoal{
		ID:            id,
		UserID:        userID,
		CurrentWeight: decimal.NewFromInt(90),
		TargetWeight:  decimal.NewFromInt(82),
		DurationWeeks: 16,
		Active:        true,
	}
}

func TestWeightGoalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ids are monotonic and never reused", func(t *testing.T) {
		store := NewWeightGoalStore()

		first, err := store.NextID(ctx)
		if err != nil {
			t.Fatalf("NextID failed: %v", err)
		}
		if first != 1 {
			t.Fatalf("expected first id 1, got %d", first)
		}

		if err := store.Create(ctx, newGoal(first, 1)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if err := store.Delete(ctx, first); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		second, err := store.NextID(ctx)
		if err != nil {
			t.Fatalf("NextID failed: %v", err)
		}
		if second != 2 {
			t.Errorf("expected id 2 after deleting goal 1, got %d", second)
		}
	})

	t.Run("find by id returns a copy", func(t *testing.T) {
		store := NewWeightGoalStore()
		if err := store.Create(ctx, newGoal(1, 1)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := store.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}

		found.DurationWeeks = 99

		again, err := store.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if again.DurationWeeks != 16 {
			t.Errorf("mutating a returned goal leaked into the store: got %d weeks", again.DurationWeeks)
		}
	})

	t.Run("find by user preserves insertion order and isolation", func(t *testing.T) {
		store := NewWeightGoalStore()
		for i, userID := range []int{7, 7, 8} {
			if err := store.Create(ctx, newGoal(i+1, userID)); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
		}

		goals, err := store.FindByUserID(ctx, 7)
		if err != nil {
			t.Fatalf("FindByUserID failed: %v", err)
		}
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals for user 7, got %d", len(goals))
		}
		if goals[0].ID != 1 || goals[1].ID != 2 {
			t.Errorf("expected goals in insertion order [1 2], got [%d %d]", goals[0].ID, goals[1].ID)
		}

		none, err := store.FindByUserID(ctx, 99)
		if err != nil {
			t.Fatalf("FindByUserID failed: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("expected no goals for unknown user, got %d", len(none))
		}
	})

	t.Run("missing goals produce not found errors", func(t *testing.T) {
		store := NewWeightGoalStore()

		if _, err := store.FindByID(ctx, 42); !errors.Is(err, domainerror.ErrWeightGoalNotFound) {
			t.Errorf("FindByID: expected ErrWeightGoalNotFound, got %v", err)
		}
		if err := store.Update(ctx, newGoal(42, 1)); !errors.Is(err, domainerror.ErrWeightGoalNotFound) {
			t.Errorf("Update: expected ErrWeightGoalNotFound, got %v", err)
		}
		if err := store.Delete(ctx, 42); !errors.Is(err, domainerror.ErrWeightGoalNotFound) {
			t.Errorf("Delete: expected ErrWeightGoalNotFound, got %v", err)
		}
	})

	t.Run("update replaces the stored goal", func(t *testing.T) {
		store := NewWeightGoalStore()
		if err := store.Create(ctx, newGoal(1, 1)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		updated := newGoal(1, 1)
		updated.DurationWeeks = 24
		if err := store.Update(ctx, updated); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := store.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if found.DurationWeeks != 24 {
			t.Errorf("expected 24 weeks after update, got %d", found.DurationWeeks)
		}
	})
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()

	newUser := func(id int, email string) *entity.User {
		return &entity.User{ID: id, Name: "Test User", Email: email}
	}

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		store := NewUserStore()
		if err := store.Create(ctx, newUser(1, "maria@example.com")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		found, err := store.FindByEmail(ctx, "  MARIA@Example.COM ")
		if err != nil {
			t.Fatalf("FindByEmail failed: %v", err)
		}
		if found.ID != 1 {
			t.Errorf("expected user 1, got %d", found.ID)
		}

		exists, err := store.ExistsByEmail(ctx, "Maria@example.com")
		if err != nil {
			t.Fatalf("ExistsByEmail failed: %v", err)
		}
		if !exists {
			t.Error("expected email to exist regardless of case")
		}
	})

	t.Run("missing users produce not found errors", func(t *testing.T) {
		store := NewUserStore()

		if _, err := store.FindByID(ctx, 42); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("FindByID: expected ErrUserNotFound, got %v", err)
		}
		if _, err := store.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("FindByEmail: expected ErrUserNotFound, got %v", err)
		}
	})
}

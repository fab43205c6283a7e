// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
	"github.com/vitaltrack/backend/internal/integration/persistence/model"
)

// weightGoalRepository implements the adapter.WeightGoalRepository interface.
// IDs are allocated from an atomic counter seeded with MAX(id) on first use,
// so they stay monotonic and are never reused while the process lives.
type weightGoalRepository struct {
	db       *gorm.DB
	seedOnce sync.Once
	seedErr  error
	nextID   int64
}

// NewWeightGoalRepository creates a new weight goal repository instance.
func NewWeightGoalRepository(db *gorm.DB) adapter.WeightGoalRepository {
	return &weightGoalRepository{db: db}
}

// NextID allocates the next goal id.
func (r *weightGoalRepository) NextID(ctx context.Context) (int, error) {
	r.seedOnce.Do(func() {
		var maxID int64
		result := r.db.WithContext(ctx).
			Model(&model.WeightGoalModel{}).
			Select("COALESCE(MAX(id), 0)").
			Scan(&maxID)
		if result.Error != nil {
			r.seedErr = result.Error
			return
		}
		atomic.StoreInt64(&r.nextID, maxID)
	})
	if r.seedErr != nil {
		return 0, r.seedErr
	}
	return int(atomic.AddInt64(&r.nextID, 1)), nil
}

// Create stores a new goal in the database.
func (r *weightGoalRepository) Create(ctx context.Context, goal *entity.WeightGoal) error {
	goalModel := model.WeightGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *weightGoalRepository) FindByID(ctx context.Context, id int) (*entity.WeightGoal, error) {
	var goalModel model.WeightGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewWeightGoalError(
				domainerror.ErrCodeWeightGoalNotFound,
				"weight goal not found",
				domainerror.ErrWeightGoalNotFound,
			)
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user in insertion order.
func (r *weightGoalRepository) FindByUserID(ctx context.Context, userID int) ([]*entity.WeightGoal, error) {
	var goalModels []model.WeightGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.WeightGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update overwrites an existing goal in the database.
func (r *weightGoalRepository) Update(ctx context.Context, goal *entity.WeightGoal) error {
	exists, err := r.Exists(ctx, goal.ID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerror.NewWeightGoalError(
			domainerror.ErrCodeWeightGoalNotFound,
			"weight goal not found",
			domainerror.ErrWeightGoalNotFound,
		)
	}

	goalModel := model.WeightGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete hard-removes a goal from the database.
func (r *weightGoalRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&model.WeightGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewWeightGoalError(
			domainerror.ErrCodeWeightGoalNotFound,
			"weight goal not found",
			domainerror.ErrWeightGoalNotFound,
		)
	}
	return nil
}

// Exists checks whether a goal id is present.
func (r *weightGoalRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.WeightGoalModel{}).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/domain/entity"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

func scanJSON(value interface{}, dest any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("type assertion to []byte failed")
	}
}

// SafetyValidationJSON represents the JSONB structure of a stored validation result.
type SafetyValidationJSON struct {
	entity.ValidationResult
}

// Value implements the driver.Valuer interface.
func (s SafetyValidationJSON) Value() (driver.Value, error) {
	return json.Marshal(s.ValidationResult)
}

// Scan implements the sql.Scanner interface.
func (s *SafetyValidationJSON) Scan(value interface{}) error {
	return scanJSON(value, &s.ValidationResult)
}

// GoalTargetsJSON represents the JSONB structure bundling the optional
// secondary targets and custom milestones of a goal.
type GoalTargetsJSON struct {
	SecondaryGoals   *entity.SecondaryGoals   `json:"secondaryGoals,omitempty"`
	CustomMilestones []entity.CustomMilestone `json:"customMilestones,omitempty"`
}

// Value implements the driver.Valuer interface.
func (g GoalTargetsJSON) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements the sql.Scanner interface.
func (g *GoalTargetsJSON) Scan(value interface{}) error {
	return scanJSON(value, g)
}

// GoalPlanJSON represents the JSONB structure of the generated plan data.
type GoalPlanJSON struct {
	ActionPlan     entity.ActionPlan     `json:"actionPlan"`
	ReviewCriteria entity.ReviewCriteria `json:"reviewCriteria"`
	ReviewAlerts   []entity.ReviewAlert  `json:"reviewAlerts"`
}

// Value implements the driver.Valuer interface.
func (g GoalPlanJSON) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements the sql.Scanner interface.
func (g *GoalPlanJSON) Scan(value interface{}) error {
	return scanJSON(value, g)
}

// GoalAlertsJSON represents the JSONB structure of all alert-related data.
type GoalAlertsJSON struct {
	ConfiguredAlerts         []entity.ConfiguredAlert         `json:"configuredAlerts"`
	AlertPreferences         entity.AlertPreferences          `json:"alertPreferences"`
	PersonalizedAlerts       []entity.PersonalizedAlert       `json:"personalizedAlerts"`
	InteractionHistory       entity.InteractionHistory        `json:"interactionHistory"`
	ObjectiveAlerts          []entity.ObjectiveAlert          `json:"objectiveAlerts"`
	SecondaryObjectiveAlerts []entity.SecondaryObjectiveAlert `json:"secondaryObjectiveAlerts"`
	MilestoneAlerts          []entity.MilestoneAlert          `json:"milestoneAlerts"`
	MotivationalAlerts       []entity.MotivationalAlert       `json:"motivationalAlerts"`
}

// Value implements the driver.Valuer interface.
func (g GoalAlertsJSON) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements the sql.Scanner interface.
func (g *GoalAlertsJSON) Scan(value interface{}) error {
	return scanJSON(value, g)
}

// WeightGoalModel represents the weight_goals table in the database.
// Rows are hard-deleted; the Active flag is the only deactivation mechanism.
type WeightGoalModel struct {
	ID                  int             `gorm:"primaryKey;autoIncrement"`
	UserID              int             `gorm:"not null;index"`
	CurrentWeight       decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	TargetWeight        decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	DurationWeeks       int             `gorm:"not null"`
	TotalWeightToLose   decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	AgeBracket          string          `gorm:"type:varchar(10);not null"`
	UserAge             int             `gorm:"not null"`
	MainMotivation      string          `gorm:"type:varchar(20);not null"`
	PersonalMotivation  *string         `gorm:"type:text"`
	PreferredApproach   string          `gorm:"type:varchar(20);not null"`
	PreviousExperience  string          `gorm:"type:varchar(30);not null"`
	AutoMilestones      bool            `gorm:"not null;default:false"`
	MilestoneFrequency  *string         `gorm:"type:varchar(10)"`
	Targets             GoalTargetsJSON `gorm:"type:jsonb"`
	SafetyValidation    SafetyValidationJSON `gorm:"type:jsonb"`
	UserApproval        bool            `gorm:"not null;default:false"`
	DailyCaloricDeficit int             `gorm:"not null"`
	Plan                GoalPlanJSON    `gorm:"type:jsonb"`
	Alerts              GoalAlertsJSON  `gorm:"type:jsonb"`
	ReviewFrequency     string          `gorm:"type:varchar(10);not null"`
	NextReviewDate      time.Time       `gorm:"not null"`
	SmartConfiguration  bool            `gorm:"not null;default:false"`
	Active              bool            `gorm:"not null;default:true;index"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the WeightGoalModel.
func (WeightGoalModel) TableName() string {
	return "weight_goals"
}

// ToEntity converts a WeightGoalModel to a domain WeightGoal entity.
func (m *WeightGoalModel) ToEntity() *entity.WeightGoal {
	var milestoneFrequency *valueobject.MilestoneFrequency
	if m.MilestoneFrequency != nil {
		mf := valueobject.MilestoneFrequency(*m.MilestoneFrequency)
		milestoneFrequency = &mf
	}

	return &entity.WeightGoal{
		ID:                 m.ID,
		UserID:             m.UserID,
		CurrentWeight:      m.CurrentWeight,
		TargetWeight:       m.TargetWeight,
		DurationWeeks:      m.DurationWeeks,
		TotalWeightToLose:  m.TotalWeightToLose,
		AgeBracket:         valueobject.AgeBracket(m.AgeBracket),
		UserAge:            m.UserAge,
		SecondaryGoals:     m.Targets.SecondaryGoals,
		MainMotivation:     valueobject.Motivation(m.MainMotivation),
		PersonalMotivation: m.PersonalMotivation,
		PreferredApproach:  valueobject.Approach(m.PreferredApproach),
		PreviousExperience: valueobject.Experience(m.PreviousExperience),
		AutoMilestones:     m.AutoMilestones,
		MilestoneFrequency: milestoneFrequency,
		CustomMilestones:   m.Targets.CustomMilestones,

		SafetyValidation:    m.SafetyValidation.ValidationResult,
		UserApproval:        m.UserApproval,
		DailyCaloricDeficit: m.DailyCaloricDeficit,
		ActionPlan:          m.Plan.ActionPlan,
		ConfiguredAlerts:    m.Alerts.ConfiguredAlerts,
		ReviewFrequency:     valueobject.ReviewFrequency(m.ReviewFrequency),
		ReviewCriteria:      m.Plan.ReviewCriteria,
		NextReviewDate:      m.NextReviewDate,
		ReviewAlerts:        m.Plan.ReviewAlerts,

		AlertPreferences:         m.Alerts.AlertPreferences,
		PersonalizedAlerts:       m.Alerts.PersonalizedAlerts,
		SmartConfiguration:       m.SmartConfiguration,
		InteractionHistory:       m.Alerts.InteractionHistory,
		ObjectiveAlerts:          m.Alerts.ObjectiveAlerts,
		SecondaryObjectiveAlerts: m.Alerts.SecondaryObjectiveAlerts,
		MilestoneAlerts:          m.Alerts.MilestoneAlerts,
		MotivationalAlerts:       m.Alerts.MotivationalAlerts,

		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// WeightGoalFromEntity creates a WeightGoalModel from a domain WeightGoal entity.
func WeightGoalFromEntity(goal *entity.WeightGoal) *WeightGoalModel {
	var milestoneFrequency *string
	if goal.MilestoneFrequency != nil {
		mf := string(*goal.MilestoneFrequency)
		milestoneFrequency = &mf
	}

	return &WeightGoalModel{
		ID:                 goal.ID,
		UserID:             goal.UserID,
		CurrentWeight:      goal.CurrentWeight,
		TargetWeight:       goal.TargetWeight,
		DurationWeeks:      goal.DurationWeeks,
		TotalWeightToLose:  goal.TotalWeightToLose,
		AgeBracket:         string(goal.AgeBracket),
		UserAge:            goal.UserAge,
		MainMotivation:     string(goal.MainMotivation),
		PersonalMotivation: goal.PersonalMotivation,
		PreferredApproach:  string(goal.PreferredApproach),
		PreviousExperience: string(goal.PreviousExperience),
		AutoMilestones:     goal.AutoMilestones,
		MilestoneFrequency: milestoneFrequency,
		Targets: GoalTargetsJSON{
			SecondaryGoals:   goal.SecondaryGoals,
			CustomMilestones: goal.CustomMilestones,
		},
		SafetyValidation:    SafetyValidationJSON{ValidationResult: goal.SafetyValidation},
		UserApproval:        goal.UserApproval,
		DailyCaloricDeficit: goal.DailyCaloricDeficit,
		Plan: GoalPlanJSON{
			ActionPlan:     goal.ActionPlan,
			ReviewCriteria: goal.ReviewCriteria,
			ReviewAlerts:   goal.ReviewAlerts,
		},
		Alerts: GoalAlertsJSON{
			ConfiguredAlerts:         goal.ConfiguredAlerts,
			AlertPreferences:         goal.AlertPreferences,
			PersonalizedAlerts:       goal.PersonalizedAlerts,
			InteractionHistory:       goal.InteractionHistory,
			ObjectiveAlerts:          goal.ObjectiveAlerts,
			SecondaryObjectiveAlerts: goal.SecondaryObjectiveAlerts,
			MilestoneAlerts:          goal.MilestoneAlerts,
			MotivationalAlerts:       goal.MotivationalAlerts,
		},
		ReviewFrequency:    string(goal.ReviewFrequency),
		NextReviewDate:     goal.NextReviewDate,
		SmartConfiguration: goal.SmartConfiguration,
		Active:             goal.Active,
		CreatedAt:          goal.CreatedAt,
		UpdatedAt:          goal.UpdatedAt,
	}
}

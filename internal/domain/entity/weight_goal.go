// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// Suggestion is a corrective proposal emitted by the safety validator when a
// goal parameter falls outside its bracket's safe band.
type Suggestion struct {
	Type           valueobject.SuggestionType `json:"type"`
	SuggestedValue decimal.Decimal            `json:"suggestedValue"`
	Rationale      string                     `json:"rationale"`
}

// ValidationResult is the outcome of the weight-loss safety validation.
type ValidationResult struct {
	Status      valueobject.ValidationStatus `json:"status"`
	Alerts      []string                     `json:"alerts"`
	Suggestions []Suggestion                 `json:"suggestions"`
	SafetyScore int                          `json:"safetyScore"`
}

// SecondaryGoals carries optional body-measurement and activity targets
// attached to a goal at creation. Stored verbatim.
type SecondaryGoals struct {
	CurrentWaistCm        *float64 `json:"currentWaistCm,omitempty"`
	TargetWaistCm         *float64 `json:"targetWaistCm,omitempty"`
	CurrentHipCm          *float64 `json:"currentHipCm,omitempty"`
	TargetHipCm           *float64 `json:"targetHipCm,omitempty"`
	CurrentArmCm          *float64 `json:"currentArmCm,omitempty"`
	TargetArmCm           *float64 `json:"targetArmCm,omitempty"`
	WeeklyExerciseDays    *int     `json:"weeklyExerciseDays,omitempty"`
	DailyWaterIntakeLiter *float64 `json:"dailyWaterIntakeLiters,omitempty"`
}

// CustomMilestone is a user-defined intermediate checkpoint.
type CustomMilestone struct {
	TargetWeight  float64 `json:"targetWeight"`
	DeadlineWeeks int     `json:"deadlineWeeks"`
	Description   string  `json:"description"`
}

// ActionPlan is the fixed-shape initial plan generated at goal creation.
type ActionPlan struct {
	NutritionTips  []string            `json:"nutritionTips"`
	Activities     []string            `json:"activities"`
	NextSteps      []string            `json:"nextSteps"`
	WeeklySchedule map[string][]string `json:"weeklySchedule"`
}

// ConfiguredAlert is a reminder derived from the user's alert preferences.
type ConfiguredAlert struct {
	Type      valueobject.AlertType `json:"type"`
	Frequency string                `json:"frequency"`
	Time      string                `json:"time"`
	Message   string                `json:"message"`
	Active    bool                  `json:"active"`
}

// ObjectiveAlert is a reminder derived from the main weight objective itself.
type ObjectiveAlert struct {
	Type          string `json:"type"`
	Frequency     string `json:"frequency"`
	SuggestedTime string `json:"suggestedTime"`
	Message       string `json:"message"`
	BasedOn       string `json:"basedOn"`
}

// SecondaryObjectiveAlert is a reminder tied to a secondary goal.
// Not populated by the baseline engine.
type SecondaryObjectiveAlert struct {
	RelatedObjective string `json:"relatedObjective"`
	AlertType        string `json:"alertType"`
	Frequency        string `json:"frequency"`
	Message          string `json:"message"`
}

// MilestoneAlert is a reminder tied to an intermediate milestone.
// Not populated by the baseline engine.
type MilestoneAlert struct {
	MilestoneID         string `json:"milestoneId"`
	ExpectedDate        string `json:"expectedDate"`
	AlertType           string `json:"alertType"`
	MotivationalMessage string `json:"motivationalMessage"`
}

// MotivationalAlert is a reminder derived from the user's stated motivation.
// Not populated by the baseline engine.
type MotivationalAlert struct {
	BaseMotivation valueobject.Motivation `json:"baseMotivation"`
	Frequency      string                 `json:"frequency"`
	Time           string                 `json:"time"`
	Message        string                 `json:"message"`
}

// ReviewAlert records a detected deviation during an automatic review.
type ReviewAlert struct {
	Type            string `json:"type"`
	CriterionMet    string `json:"criterionMet"`
	DetectedAt      string `json:"detectedAt"`
	SuggestedAction string `json:"suggestedAction"`
}

// ReviewCriteria defines the thresholds checked at each automatic review.
type ReviewCriteria struct {
	MaxDeviationPercent  float64 `json:"maxDeviationPercent"`
	WeeksWithoutProgress int     `json:"weeksWithoutProgress"`
	MaxAcceleration      float64 `json:"maxAcceleration"`
}

// PreferredTimes holds the user's preferred alert times of day (HH:MM).
type PreferredTimes struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// AlertPreferences captures the user's requested reminder setup.
type AlertPreferences struct {
	DesiredTypes    []valueobject.AlertType           `json:"desiredTypes"`
	PreferredTimes  PreferredTimes                    `json:"preferredTimes"`
	CustomFrequency map[string]string                 `json:"customFrequency"`
	Channels        []valueobject.NotificationChannel `json:"channels"`
}

// PersonalizedAlert is a fully user-specified reminder, stored verbatim.
type PersonalizedAlert struct {
	Type      valueobject.AlertType `json:"type"`
	Time      string                `json:"time"`
	Frequency string                `json:"frequency"`
	Message   string                `json:"message"`
	Active    bool                  `json:"active"`
}

// InteractionHistory tracks how the user responds to alerts over time.
// Initialized empty; populated by future engagement tracking.
type InteractionHistory struct {
	ResponseRate       float64                 `json:"responseRate"`
	MostEffectiveTimes []string                `json:"mostEffectiveTimes"`
	MostFollowedTypes  []valueobject.AlertType `json:"mostFollowedTypes"`
}

// WeightGoal is the central weight-loss objective entity. Weights are decimal
// kilograms; TotalWeightToLose is always derived, never set independently.
type WeightGoal struct {
	ID                 int
	UserID             int
	CurrentWeight      decimal.Decimal
	TargetWeight       decimal.Decimal
	DurationWeeks      int
	TotalWeightToLose  decimal.Decimal
	AgeBracket         valueobject.AgeBracket
	UserAge            int
	SecondaryGoals     *SecondaryGoals
	MainMotivation     valueobject.Motivation
	PersonalMotivation *string
	PreferredApproach  valueobject.Approach
	PreviousExperience valueobject.Experience
	AutoMilestones     bool
	MilestoneFrequency *valueobject.MilestoneFrequency
	CustomMilestones   []CustomMilestone

	SafetyValidation    ValidationResult
	UserApproval        bool
	DailyCaloricDeficit int
	ActionPlan          ActionPlan
	ConfiguredAlerts    []ConfiguredAlert
	ReviewFrequency     valueobject.ReviewFrequency
	ReviewCriteria      ReviewCriteria
	NextReviewDate      time.Time
	ReviewAlerts        []ReviewAlert

	AlertPreferences         AlertPreferences
	PersonalizedAlerts       []PersonalizedAlert
	SmartConfiguration       bool
	InteractionHistory       InteractionHistory
	ObjectiveAlerts          []ObjectiveAlert
	SecondaryObjectiveAlerts []SecondaryObjectiveAlert
	MilestoneAlerts          []MilestoneAlert
	MotivationalAlerts       []MotivationalAlert

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeightGoalSummary is the projection returned by list operations.
type WeightGoalSummary struct {
	ID                int
	CurrentWeight     decimal.Decimal
	TargetWeight      decimal.Decimal
	TotalWeightToLose decimal.Decimal
	DurationWeeks     int
	Active            bool
	CreatedAt         time.Time
}

// Summary projects the goal into its list shape.
func (g *WeightGoal) Summary() WeightGoalSummary {
	return WeightGoalSummary{
		ID:                g.ID,
		CurrentWeight:     g.CurrentWeight,
		TargetWeight:      g.TargetWeight,
		TotalWeightToLose: g.TotalWeightToLose,
		DurationWeeks:     g.DurationWeeks,
		Active:            g.Active,
		CreatedAt:         g.CreatedAt,
	}
}

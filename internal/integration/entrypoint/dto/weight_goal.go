package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/application/usecase/weightgoal"
	"github.com/vitaltrack/backend/internal/domain/entity"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// CreateWeightGoalRequest represents the request body for goal creation.
// Nested sub-records are stored verbatim; the engine validates the
// conditional rules the binding tags cannot express.
type CreateWeightGoalRequest struct {
	CurrentWeight      float64                    `json:"currentWeight" binding:"required,gte=30,lte=300"`
	TargetWeight       float64                    `json:"targetWeight" binding:"required,gte=30,lte=300"`
	DurationWeeks      int                        `json:"durationWeeks" binding:"required,gte=4,lte=104"`
	SecondaryGoals     *entity.SecondaryGoals     `json:"secondaryGoals,omitempty"`
	MainMotivation     string                     `json:"mainMotivation" binding:"required,oneof=health aesthetic self_esteem performance medical"`
	PersonalMotivation *string                    `json:"personalMotivation,omitempty" binding:"omitempty,max=500"`
	PreferredApproach  string                     `json:"preferredApproach" binding:"required,oneof=diet exercise combined"`
	PreviousExperience string                     `json:"previousExperience" binding:"required,oneof=first_time previous_attempts professional_guidance"`
	AutoMilestones     bool                       `json:"autoMilestones"`
	MilestoneFrequency *string                    `json:"milestoneFrequency,omitempty" binding:"omitempty,oneof=weekly biweekly monthly"`
	CustomMilestones   []entity.CustomMilestone   `json:"customMilestones,omitempty" binding:"omitempty,max=10"`
	AlertPreferences   *entity.AlertPreferences   `json:"alertPreferences,omitempty"`
	PersonalizedAlerts []entity.PersonalizedAlert `json:"personalizedAlerts,omitempty" binding:"omitempty,max=20"`
	SmartConfiguration bool                       `json:"smartConfiguration"`
}

// UpdateWeightGoalRequest represents the request body for a partial goal update.
type UpdateWeightGoalRequest struct {
	CurrentWeight      *float64                   `json:"currentWeight,omitempty" binding:"omitempty,gte=30,lte=300"`
	TargetWeight       *float64                   `json:"targetWeight,omitempty" binding:"omitempty,gte=30,lte=300"`
	DurationWeeks      *int                       `json:"durationWeeks,omitempty" binding:"omitempty,gte=4,lte=104"`
	SecondaryGoals     *entity.SecondaryGoals     `json:"secondaryGoals,omitempty"`
	MainMotivation     *string                    `json:"mainMotivation,omitempty" binding:"omitempty,oneof=health aesthetic self_esteem performance medical"`
	PersonalMotivation *string                    `json:"personalMotivation,omitempty" binding:"omitempty,max=500"`
	PreferredApproach  *string                    `json:"preferredApproach,omitempty" binding:"omitempty,oneof=diet exercise combined"`
	AutoMilestones     *bool                      `json:"autoMilestones,omitempty"`
	MilestoneFrequency *string                    `json:"milestoneFrequency,omitempty" binding:"omitempty,oneof=weekly biweekly monthly"`
	CustomMilestones   []entity.CustomMilestone   `json:"customMilestones,omitempty" binding:"omitempty,max=10"`
	UserApproval       *bool                      `json:"userApproval,omitempty"`
	AlertPreferences   *entity.AlertPreferences   `json:"alertPreferences,omitempty"`
	PersonalizedAlerts []entity.PersonalizedAlert `json:"personalizedAlerts,omitempty" binding:"omitempty,max=20"`
	SmartConfiguration *bool                      `json:"smartConfiguration,omitempty"`
	Active             *bool                      `json:"active,omitempty"`
}

// ManualAdjustmentsRequest represents user-proposed overrides in a revision.
type ManualAdjustmentsRequest struct {
	NewTargetWeight  *float64 `json:"newTargetWeight,omitempty" binding:"omitempty,gte=30,lte=300"`
	NewDurationWeeks *int     `json:"newDurationWeeks,omitempty" binding:"omitempty,gte=4,lte=104"`
}

// ReviseWeightGoalRequest represents the request body for a goal revision.
type ReviseWeightGoalRequest struct {
	Reason             string                    `json:"reason" binding:"required,oneof=slow_progress fast_progress circumstance_change health_issue new_goal"`
	ApproveAdjustments bool                      `json:"approveAdjustments"`
	ManualAdjustments  *ManualAdjustmentsRequest `json:"manualAdjustments,omitempty"`
}

// WeightGoalResponse represents a single goal in API responses.
type WeightGoalResponse struct {
	ID                 int                        `json:"id"`
	UserID             int                        `json:"userId"`
	CurrentWeight      float64                    `json:"currentWeight"`
	TargetWeight       float64                    `json:"targetWeight"`
	DurationWeeks      int                        `json:"durationWeeks"`
	TotalWeightToLose  float64                    `json:"totalWeightToLose"`
	AgeBracket         string                     `json:"ageBracket"`
	UserAge            int                        `json:"userAge"`
	SecondaryGoals     *entity.SecondaryGoals     `json:"secondaryGoals,omitempty"`
	MainMotivation     string                     `json:"mainMotivation"`
	PersonalMotivation *string                    `json:"personalMotivation,omitempty"`
	PreferredApproach  string                     `json:"preferredApproach"`
	PreviousExperience string                     `json:"previousExperience"`
	AutoMilestones     bool                       `json:"autoMilestones"`
	MilestoneFrequency *string                    `json:"milestoneFrequency,omitempty"`
	CustomMilestones   []entity.CustomMilestone   `json:"customMilestones,omitempty"`
	SafetyValidation   entity.ValidationResult    `json:"safetyValidation"`
	UserApproval       bool                       `json:"userApproval"`
	DailyCaloricDeficit int                       `json:"dailyCaloricDeficit"`
	ActionPlan         entity.ActionPlan          `json:"actionPlan"`
	ConfiguredAlerts   []entity.ConfiguredAlert   `json:"configuredAlerts"`
	ReviewFrequency    string                     `json:"reviewFrequency"`
	ReviewCriteria     entity.ReviewCriteria      `json:"reviewCriteria"`
	NextReviewDate     time.Time                  `json:"nextReviewDate"`
	ReviewAlerts       []entity.ReviewAlert       `json:"reviewAlerts"`
	AlertPreferences   entity.AlertPreferences    `json:"alertPreferences"`
	PersonalizedAlerts []entity.PersonalizedAlert `json:"personalizedAlerts"`
	SmartConfiguration bool                       `json:"smartConfiguration"`
	InteractionHistory entity.InteractionHistory  `json:"interactionHistory"`
	ObjectiveAlerts    []entity.ObjectiveAlert    `json:"objectiveAlerts"`
	Active             bool                       `json:"active"`
	CreatedAt          time.Time                  `json:"createdAt"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
}

// WeightGoalSummaryResponse represents a goal in list responses.
type WeightGoalSummaryResponse struct {
	ID                int       `json:"id"`
	CurrentWeight     float64   `json:"currentWeight"`
	TargetWeight      float64   `json:"targetWeight"`
	TotalWeightToLose float64   `json:"totalWeightToLose"`
	DurationWeeks     int       `json:"durationWeeks"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
}

// WeightGoalListResponse represents the response for listing goals.
type WeightGoalListResponse struct {
	Goals []WeightGoalSummaryResponse `json:"goals"`
	Total int                         `json:"total"`
}

// DeleteWeightGoalResponse represents the response for goal deletion.
type DeleteWeightGoalResponse struct {
	Message string `json:"message"`
}

// ProposedAdjustmentsResponse represents the revision preview in responses.
type ProposedAdjustmentsResponse struct {
	NewTargetWeight  float64 `json:"newTargetWeight"`
	NewDurationWeeks int     `json:"newDurationWeeks"`
	Rationale        string  `json:"rationale"`
	PlanImpact       string  `json:"planImpact"`
}

// ReviseWeightGoalResponse represents the response for a goal revision.
type ReviseWeightGoalResponse struct {
	Goal                WeightGoalResponse          `json:"goal"`
	ProposedAdjustments ProposedAdjustmentsResponse `json:"proposedAdjustments"`
	Applied             bool                        `json:"applied"`
}

// ToCreateWeightGoalInput converts a create request to the use case input.
func ToCreateWeightGoalInput(userID int, req CreateWeightGoalRequest) weightgoal.CreateWeightGoalInput {
	input := weightgoal.CreateWeightGoalInput{
		UserID:             userID,
		CurrentWeight:      decimal.NewFromFloat(req.CurrentWeight),
		TargetWeight:       decimal.NewFromFloat(req.TargetWeight),
		DurationWeeks:      req.DurationWeeks,
		SecondaryGoals:     req.SecondaryGoals,
		MainMotivation:     valueobject.Motivation(req.MainMotivation),
		PersonalMotivation: req.PersonalMotivation,
		PreferredApproach:  valueobject.Approach(req.PreferredApproach),
		PreviousExperience: valueobject.Experience(req.PreviousExperience),
		AutoMilestones:     req.AutoMilestones,
		CustomMilestones:   req.CustomMilestones,
		PersonalizedAlerts: req.PersonalizedAlerts,
		SmartConfiguration: req.SmartConfiguration,
	}
	if req.MilestoneFrequency != nil {
		mf := valueobject.MilestoneFrequency(*req.MilestoneFrequency)
		input.MilestoneFrequency = &mf
	}
	if req.AlertPreferences != nil {
		input.AlertPreferences = *req.AlertPreferences
	}
	return input
}

// ToUpdateWeightGoalInput converts an update request to the use case input.
func ToUpdateWeightGoalInput(goalID int, req UpdateWeightGoalRequest) weightgoal.UpdateWeightGoalInput {
	input := weightgoal.UpdateWeightGoalInput{
		GoalID:             goalID,
		SecondaryGoals:     req.SecondaryGoals,
		PersonalMotivation: req.PersonalMotivation,
		AutoMilestones:     req.AutoMilestones,
		CustomMilestones:   req.CustomMilestones,
		UserApproval:       req.UserApproval,
		AlertPreferences:   req.AlertPreferences,
		PersonalizedAlerts: req.PersonalizedAlerts,
		SmartConfiguration: req.SmartConfiguration,
		Active:             req.Active,
	}
	if req.CurrentWeight != nil {
		w := decimal.NewFromFloat(*req.CurrentWeight)
		input.CurrentWeight = &w
	}
	if req.TargetWeight != nil {
		w := decimal.NewFromFloat(*req.TargetWeight)
		input.TargetWeight = &w
	}
	if req.DurationWeeks != nil {
		input.DurationWeeks = req.DurationWeeks
	}
	if req.MainMotivation != nil {
		m := valueobject.Motivation(*req.MainMotivation)
		input.MainMotivation = &m
	}
	if req.PreferredApproach != nil {
		a := valueobject.Approach(*req.PreferredApproach)
		input.PreferredApproach = &a
	}
	if req.MilestoneFrequency != nil {
		mf := valueobject.MilestoneFrequency(*req.MilestoneFrequency)
		input.MilestoneFrequency = &mf
	}
	return input
}

// ToReviseWeightGoalInput converts a revise request to the use case input.
func ToReviseWeightGoalInput(goalID int, req ReviseWeightGoalRequest) weightgoal.ReviseWeightGoalInput {
	input := weightgoal.ReviseWeightGoalInput{
		GoalID:             goalID,
		Reason:             valueobject.RevisionReason(req.Reason),
		ApproveAdjustments: req.ApproveAdjustments,
	}
	if req.ManualAdjustments != nil {
		adjustments := &weightgoal.ManualAdjustments{
			NewDurationWeeks: req.ManualAdjustments.NewDurationWeeks,
		}
		if req.ManualAdjustments.NewTargetWeight != nil {
			w := decimal.NewFromFloat(*req.ManualAdjustments.NewTargetWeight)
			adjustments.NewTargetWeight = &w
		}
		input.ManualAdjustments = adjustments
	}
	return input
}

// ToWeightGoalResponse converts a domain WeightGoal entity to its response DTO.
func ToWeightGoalResponse(g *entity.WeightGoal) WeightGoalResponse {
	var milestoneFrequency *string
	if g.MilestoneFrequency != nil {
		mf := string(*g.MilestoneFrequency)
		milestoneFrequency = &mf
	}

	return WeightGoalResponse{
		ID:                  g.ID,
		UserID:              g.UserID,
		CurrentWeight:       g.CurrentWeight.InexactFloat64(),
		TargetWeight:        g.TargetWeight.InexactFloat64(),
		DurationWeeks:       g.DurationWeeks,
		TotalWeightToLose:   g.TotalWeightToLose.InexactFloat64(),
		AgeBracket:          string(g.AgeBracket),
		UserAge:             g.UserAge,
		SecondaryGoals:      g.SecondaryGoals,
		MainMotivation:      string(g.MainMotivation),
		PersonalMotivation:  g.PersonalMotivation,
		PreferredApproach:   string(g.PreferredApproach),
		PreviousExperience:  string(g.PreviousExperience),
		AutoMilestones:      g.AutoMilestones,
		MilestoneFrequency:  milestoneFrequency,
		CustomMilestones:    g.CustomMilestones,
		SafetyValidation:    g.SafetyValidation,
		UserApproval:        g.UserApproval,
		DailyCaloricDeficit: g.DailyCaloricDeficit,
		ActionPlan:          g.ActionPlan,
		ConfiguredAlerts:    g.ConfiguredAlerts,
		ReviewFrequency:     string(g.ReviewFrequency),
		ReviewCriteria:      g.ReviewCriteria,
		NextReviewDate:      g.NextReviewDate,
		ReviewAlerts:        g.ReviewAlerts,
		AlertPreferences:    g.AlertPreferences,
		PersonalizedAlerts:  g.PersonalizedAlerts,
		SmartConfiguration:  g.SmartConfiguration,
		InteractionHistory:  g.InteractionHistory,
		ObjectiveAlerts:     g.ObjectiveAlerts,
		Active:              g.Active,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

// ToWeightGoalListResponse converts goal summaries to the list response DTO.
func ToWeightGoalListResponse(summaries []entity.WeightGoalSummary, total int) WeightGoalListResponse {
	goals := make([]WeightGoalSummaryResponse, len(summaries))
	for i, s := range summaries {
		goals[i] = WeightGoalSummaryResponse{
			ID:                s.ID,
			CurrentWeight:     s.CurrentWeight.InexactFloat64(),
			TargetWeight:      s.TargetWeight.InexactFloat64(),
			TotalWeightToLose: s.TotalWeightToLose.InexactFloat64(),
			DurationWeeks:     s.DurationWeeks,
			Active:            s.Active,
			CreatedAt:         s.CreatedAt,
		}
	}
	return WeightGoalListResponse{Goals: goals, Total: total}
}

// ToReviseWeightGoalResponse converts a revision output to its response DTO.
func ToReviseWeightGoalResponse(output *weightgoal.ReviseWeightGoalOutput) ReviseWeightGoalResponse {
	return ReviseWeightGoalResponse{
		Goal: ToWeightGoalResponse(output.Goal),
		ProposedAdjustments: ProposedAdjustmentsResponse{
			NewTargetWeight:  output.ProposedAdjustments.NewTargetWeight.InexactFloat64(),
			NewDurationWeeks: output.ProposedAdjustments.NewDurationWeeks,
			Rationale:        output.ProposedAdjustments.Rationale,
			PlanImpact:       output.ProposedAdjustments.PlanImpact,
		},
		Applied: output.Applied,
	}
}

// Package weightgoal contains the weight-goal engine use cases: safety
// validation, plan generation and the goal lifecycle.
package weightgoal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/domain/entity"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// Score penalties applied by the safety validator. Penalties are independent
// and additive; the raw score is reported even when it goes below zero.
const (
	penaltyAggressiveWeeklyLoss = 30
	penaltySlowWeeklyLoss       = 10
	penaltyExcessiveTotalLoss   = 40

	scoreRejectedBelow = 60
	scoreApprovedFrom  = 80
)

var oneHundred = decimal.NewFromInt(100)

// ValidateWeightLossSafety scores a proposed goal against the age bracket's
// safety limits. Pure function; called at creation and on every update that
// touches weight or duration.
func ValidateWeightLossSafety(
	currentWeight decimal.Decimal,
	targetWeight decimal.Decimal,
	durationWeeks int,
	bracket valueobject.AgeBracket,
) entity.ValidationResult {
	totalLoss := currentWeight.Sub(targetWeight)
	weeklyLoss := totalLoss.Div(decimal.NewFromInt(int64(durationWeeks)))
	lossPercent := totalLoss.Div(currentWeight).Mul(oneHundred)

	limits := valueobject.SafetyLimitsFor(bracket)

	alerts := []string{}
	suggestions := []entity.Suggestion{}
	score := 100

	if weeklyLoss.GreaterThan(limits.MaxWeeklyLossKg) {
		score -= penaltyAggressiveWeeklyLoss
		alerts = append(alerts, "Weekly loss is too aggressive for your age bracket")

		suggestedWeeks := totalLoss.Div(limits.MaxWeeklyLossKg).Ceil()
		suggestions = append(suggestions, entity.Suggestion{
			Type:           valueobject.SuggestionTypeDeadline,
			SuggestedValue: suggestedWeeks,
			Rationale:      fmt.Sprintf("We recommend %s weeks for a safe rate of loss", suggestedWeeks),
		})
	}

	if weeklyLoss.LessThan(valueobject.MinWeeklyLossKg) {
		score -= penaltySlowWeeklyLoss
		alerts = append(alerts, "Weekly loss is too slow and may hurt motivation")
	}

	if lossPercent.GreaterThan(limits.MaxTotalLossPercent) {
		score -= penaltyExcessiveTotalLoss
		alerts = append(alerts, "Total loss exceeds the safe limit for your age bracket")

		maxSafeLoss := currentWeight.Mul(limits.MaxTotalLossPercent).Div(oneHundred)
		suggestions = append(suggestions, entity.Suggestion{
			Type:           valueobject.SuggestionTypeTargetWeight,
			SuggestedValue: currentWeight.Sub(maxSafeLoss).Round(1),
			Rationale:      fmt.Sprintf("Maximum safe loss: %skg", maxSafeLoss.Round(1)),
		})
	}

	status := valueobject.ValidationStatusApproved
	switch {
	case score < scoreRejectedBelow:
		status = valueobject.ValidationStatusRejected
	case score < scoreApprovedFrom:
		status = valueobject.ValidationStatusWarning
	}

	return entity.ValidationResult{
		Status:      status,
		Alerts:      alerts,
		Suggestions: suggestions,
		SafetyScore: score,
	}
}

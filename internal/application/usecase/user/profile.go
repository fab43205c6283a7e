// Package user contains user-related use cases: registration, login and
// profile retrieval.
package user

import (
	"math"

	"github.com/vitaltrack/backend/internal/domain/entity"
)

// Platform registration age band. Users under 18 additionally need guardian
// authorization; goal creation has its own stricter 18+ rule.
const (
	minRegistrationAge = 13
	maxRegistrationAge = 120
)

// CalculateBMI returns the body mass index rounded to 2 decimals.
func CalculateBMI(weightKg, heightM float64) float64 {
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100
}

// BMICategoryFor maps a BMI value to its WHO band.
func BMICategoryFor(bmi float64) entity.BMICategory {
	switch {
	case bmi < 18.5:
		return entity.BMICategoryUnderweight
	case bmi < 25:
		return entity.BMICategoryNormal
	case bmi < 30:
		return entity.BMICategoryOverweight
	case bmi < 35:
		return entity.BMICategoryObesity1
	case bmi < 40:
		return entity.BMICategoryObesity2
	default:
		return entity.BMICategoryObesity3
	}
}

// riskLevelFor computes the simplified signup risk classification.
func riskLevelFor(bmi float64, age int, healthConditions []string) entity.RiskLevel {
	risk := entity.RiskLevelLow
	if bmi >= 30 || age > 60 || len(healthConditions) > 0 {
		risk = entity.RiskLevelMedium
	}
	if bmi >= 40 || len(healthConditions) > 2 {
		risk = entity.RiskLevelHigh
	}
	return risk
}

// initialRecommendations builds the generic starter advice list.
func initialRecommendations(activityLevel entity.ActivityLevel) []string {
	recommendations := []string{
		"Keep a balanced diet",
		"Drink at least 2 liters of water per day",
	}
	if activityLevel == entity.ActivityLevelSedentary {
		recommendations = append(recommendations, "Start with light 30-minute walks")
	}
	return recommendations
}

// suggestedTargetWeight proposes a first goal: the lighter of a 10% loss and
// the weight that lands at BMI 24.9, rounded to 1 decimal.
func suggestedTargetWeight(weightKg, heightM float64) float64 {
	healthyWeight := 24.9 * heightM * heightM
	target := math.Min(weightKg*0.9, healthyWeight)
	return math.Round(target*10) / 10
}

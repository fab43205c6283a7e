// Package valueobject defines immutable domain values and the safety rule set.
package valueobject

import "github.com/shopspring/decimal"

// AgeBracket groups users into the bands that drive all safety thresholds.
type AgeBracket string

const (
	AgeBracketYoung  AgeBracket = "young"  // 18-25
	AgeBracketAdult  AgeBracket = "adult"  // 26-59
	AgeBracketSenior AgeBracket = "senior" // 60+
)

// Platform-wide goal limits.
const (
	MinAge           = 18
	MinWeightKg      = 30
	MaxWeightKg      = 300
	MinDurationWeeks = 4
	MaxDurationWeeks = 104
)

// MinWeeklyLossKg is the global floor below which progress is considered
// too slow to sustain motivation. The boundary itself is safe.
var MinWeeklyLossKg = decimal.RequireFromString("0.25")

// KcalPerKg is the assumed energy content of one kilogram of body fat.
var KcalPerKg = decimal.NewFromInt(7700)

// Caloric deficit clamp band, kcal/day.
const (
	MinDailyDeficitKcal = 200
	MaxDailyDeficitKcal = 1000
)

// SafetyLimits holds the per-bracket thresholds used by the safety validator
// and the review cadence planner.
type SafetyLimits struct {
	MaxWeeklyLossKg     decimal.Decimal
	MaxTotalLossPercent decimal.Decimal
	MaxDeviationPercent decimal.Decimal
}

var safetyLimitsByBracket = map[AgeBracket]SafetyLimits{
	AgeBracketYoung: {
		MaxWeeklyLossKg:     decimal.RequireFromString("1.0"),
		MaxTotalLossPercent: decimal.NewFromInt(20),
		MaxDeviationPercent: decimal.NewFromInt(20),
	},
	AgeBracketAdult: {
		MaxWeeklyLossKg:     decimal.RequireFromString("0.8"),
		MaxTotalLossPercent: decimal.NewFromInt(15),
		MaxDeviationPercent: decimal.NewFromInt(15),
	},
	AgeBracketSenior: {
		MaxWeeklyLossKg:     decimal.RequireFromString("0.5"),
		MaxTotalLossPercent: decimal.NewFromInt(10),
		MaxDeviationPercent: decimal.NewFromInt(10),
	},
}

// SafetyLimitsFor returns the safety limits for the given age bracket.
// Unknown brackets fall back to the senior (most conservative) limits.
func SafetyLimitsFor(bracket AgeBracket) SafetyLimits {
	if limits, ok := safetyLimitsByBracket[bracket]; ok {
		return limits
	}
	return safetyLimitsByBracket[AgeBracketSenior]
}

// ClassifyAgeBracket maps a user age to its bracket. Callers guarantee
// age >= MinAge; the platform rejects younger users earlier in the pipeline.
func ClassifyAgeBracket(age int) AgeBracket {
	switch {
	case age <= 25:
		return AgeBracketYoung
	case age <= 59:
		return AgeBracketAdult
	default:
		return AgeBracketSenior
	}
}

// DeficitSafetyFactor returns the age-adjustment factor applied to the raw
// daily caloric deficit.
func DeficitSafetyFactor(bracket AgeBracket) decimal.Decimal {
	switch bracket {
	case AgeBracketSenior:
		return decimal.RequireFromString("0.8")
	case AgeBracketAdult:
		return decimal.RequireFromString("0.9")
	default:
		return decimal.NewFromInt(1)
	}
}

package weightgoal

import (
	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// CalculateDailyCaloricDeficit derives the daily kcal shortfall needed to
// lose totalLoss kilograms over the goal duration, adjusted by the age
// bracket's safety factor and clamped to the physiologically sane band.
func CalculateDailyCaloricDeficit(totalLoss decimal.Decimal, durationWeeks int, bracket valueobject.AgeBracket) int {
	days := decimal.NewFromInt(int64(durationWeeks) * 7)
	baseDeficit := totalLoss.Mul(valueobject.KcalPerKg).Div(days)

	adjusted := baseDeficit.Mul(valueobject.DeficitSafetyFactor(bracket))

	kcal := int(adjusted.Round(0).IntPart())
	if kcal < valueobject.MinDailyDeficitKcal {
		return valueobject.MinDailyDeficitKcal
	}
	if kcal > valueobject.MaxDailyDeficitKcal {
		return valueobject.MaxDailyDeficitKcal
	}
	return kcal
}

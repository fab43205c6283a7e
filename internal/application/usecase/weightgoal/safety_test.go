package weightgoal

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

func TestClassifyAgeBracket(t *testing.T) {
	cases := []struct {
		age      int
		expected valueobject.AgeBracket
	}{
		{18, valueobject.AgeBracketYoung},
		{25, valueobject.AgeBracketYoung},
		{26, valueobject.AgeBracketAdult},
		{59, valueobject.AgeBracketAdult},
		{60, valueobject.AgeBracketSenior},
		{85, valueobject.AgeBracketSenior},
	}

	for _, tc := range cases {
		if got := valueobject.ClassifyAgeBracket(tc.age); got != tc.expected {
			t.Errorf("ClassifyAgeBracket(%d) = %s, expected %s", tc.age, got, tc.expected)
		}
	}
}

func TestValidateWeightLossSafety_AggressiveAndExcessive(t *testing.T) {
	// 30kg over 10 weeks for an adult: 3.0 kg/week and 30% of body weight,
	// both far over the limits.
	result := ValidateWeightLossSafety(
		decimal.NewFromInt(100),
		decimal.NewFromInt(70),
		10,
		valueobject.AgeBracketAdult,
	)

	if result.SafetyScore != 30 {
		t.Errorf("expected safety score 30, got %d", result.SafetyScore)
	}
	if result.Status != valueobject.ValidationStatusRejected {
		t.Errorf("expected status rejected, got %s", result.Status)
	}
	if len(result.Alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d: %v", len(result.Alerts), result.Alerts)
	}
	if len(result.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(result.Suggestions))
	}

	deadline := result.Suggestions[0]
	if deadline.Type != valueobject.SuggestionTypeDeadline {
		t.Errorf("expected first suggestion to be deadline, got %s", deadline.Type)
	}
	// ceil(30 / 0.8) = 38 weeks
	if !deadline.SuggestedValue.Equal(decimal.NewFromInt(38)) {
		t.Errorf("expected suggested deadline of 38 weeks, got %s", deadline.SuggestedValue)
	}

	targetWeight := result.Suggestions[1]
	if targetWeight.Type != valueobject.SuggestionTypeTargetWeight {
		t.Errorf("expected second suggestion to be target_weight, got %s", targetWeight.Type)
	}
	// 100 - 100*15% = 85.0
	if !targetWeight.SuggestedValue.Equal(decimal.NewFromInt(85)) {
		t.Errorf("expected suggested target weight of 85, got %s", targetWeight.SuggestedValue)
	}
}

func TestValidateWeightLossSafety_WeeklyLossBoundaryIsSafe(t *testing.T) {
	// 5kg over 20 weeks: exactly 0.25 kg/week. The minimum boundary itself
	// carries no slow-progress penalty.
	result := ValidateWeightLossSafety(
		decimal.NewFromInt(80),
		decimal.NewFromInt(75),
		20,
		valueobject.AgeBracketAdult,
	)

	if result.SafetyScore != 100 {
		t.Errorf("expected safety score 100, got %d", result.SafetyScore)
	}
	if result.Status != valueobject.ValidationStatusApproved {
		t.Errorf("expected status approved, got %s", result.Status)
	}
	if len(result.Alerts) != 0 {
		t.Errorf("expected no alerts, got %v", result.Alerts)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %d", len(result.Suggestions))
	}
}

func TestValidateWeightLossSafety_SlowLossWarnsWithoutSuggestion(t *testing.T) {
	// 1kg over 20 weeks: 0.05 kg/week, below the motivation floor.
	result := ValidateWeightLossSafety(
		decimal.NewFromInt(80),
		decimal.NewFromInt(79),
		20,
		valueobject.AgeBracketAdult,
	)

	if result.SafetyScore != 90 {
		t.Errorf("expected safety score 90, got %d", result.SafetyScore)
	}
	if result.Status != valueobject.ValidationStatusApproved {
		t.Errorf("expected status approved, got %s", result.Status)
	}
	if len(result.Alerts) != 1 {
		t.Errorf("expected 1 alert, got %v", result.Alerts)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("expected no suggestions for slow loss, got %d", len(result.Suggestions))
	}
}

func TestValidateWeightLossSafety_AggressiveOnlyIsWarning(t *testing.T) {
	// 12kg over 10 weeks for a young user: 1.2 kg/week over the 1.0 limit,
	// but only 12% of body weight, within the 20% cap.
	result := ValidateWeightLossSafety(
		decimal.NewFromInt(100),
		decimal.NewFromInt(88),
		10,
		valueobject.AgeBracketYoung,
	)

	if result.SafetyScore != 70 {
		t.Errorf("expected safety score 70, got %d", result.SafetyScore)
	}
	if result.Status != valueobject.ValidationStatusWarning {
		t.Errorf("expected status warning, got %s", result.Status)
	}
	if len(result.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(result.Suggestions))
	}
	if result.Suggestions[0].Type != valueobject.SuggestionTypeDeadline {
		t.Errorf("expected deadline suggestion, got %s", result.Suggestions[0].Type)
	}
}

func TestValidateWeightLossSafety_BracketLimitsDiffer(t *testing.T) {
	// 0.6 kg/week: fine for adults, aggressive for seniors.
	current := decimal.NewFromInt(90)
	target := decimal.NewFromInt(84)

	adult := ValidateWeightLossSafety(current, target, 10, valueobject.AgeBracketAdult)
	if adult.SafetyScore != 100 {
		t.Errorf("expected adult score 100, got %d", adult.SafetyScore)
	}

	senior := ValidateWeightLossSafety(current, target, 10, valueobject.AgeBracketSenior)
	if senior.SafetyScore != 70 {
		t.Errorf("expected senior score 70, got %d", senior.SafetyScore)
	}
	if senior.Status != valueobject.ValidationStatusWarning {
		t.Errorf("expected senior status warning, got %s", senior.Status)
	}
}

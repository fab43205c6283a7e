package user

import (
	"testing"

	"github.com/vitaltrack/backend/internal/domain/entity"
)

func TestCalculateBMI(t *testing.T) {
	// 90kg at 1.80m: 27.78
	if got := CalculateBMI(90, 1.80); got != 27.78 {
		t.Errorf("expected BMI 27.78, got %v", got)
	}
	// 60kg at 1.65m: 22.04
	if got := CalculateBMI(60, 1.65); got != 22.04 {
		t.Errorf("expected BMI 22.04, got %v", got)
	}
}

func TestBMICategoryFor(t *testing.T) {
	cases := []struct {
		bmi      float64
		expected entity.BMICategory
	}{
		{17.0, entity.BMICategoryUnderweight},
		{18.5, entity.BMICategoryNormal},
		{24.9, entity.BMICategoryNormal},
		{25.0, entity.BMICategoryOverweight},
		{30.0, entity.BMICategoryObesity1},
		{35.0, entity.BMICategoryObesity2},
		{40.0, entity.BMICategoryObesity3},
	}

	for _, tc := range cases {
		if got := BMICategoryFor(tc.bmi); got != tc.expected {
			t.Errorf("BMICategoryFor(%v) = %s, expected %s", tc.bmi, got, tc.expected)
		}
	}
}

func TestRiskLevelFor(t *testing.T) {
	if got := riskLevelFor(22, 30, nil); got != entity.RiskLevelLow {
		t.Errorf("expected low risk, got %s", got)
	}
	if got := riskLevelFor(31, 30, nil); got != entity.RiskLevelMedium {
		t.Errorf("expected medium risk for obesity, got %s", got)
	}
	if got := riskLevelFor(22, 65, nil); got != entity.RiskLevelMedium {
		t.Errorf("expected medium risk for age over 60, got %s", got)
	}
	if got := riskLevelFor(22, 30, []string{"hypertension"}); got != entity.RiskLevelMedium {
		t.Errorf("expected medium risk with a health condition, got %s", got)
	}
	if got := riskLevelFor(41, 30, nil); got != entity.RiskLevelHigh {
		t.Errorf("expected high risk for severe obesity, got %s", got)
	}
	if got := riskLevelFor(22, 30, []string{"a", "b", "c"}); got != entity.RiskLevelHigh {
		t.Errorf("expected high risk with 3 conditions, got %s", got)
	}
}

func TestSuggestedTargetWeight(t *testing.T) {
	// 90kg at 1.80m: the BMI-24.9 weight (80.676 -> 80.7) is lighter than a
	// 10% loss (81.0), so the healthy weight wins.
	if got := suggestedTargetWeight(90, 1.80); got != 80.7 {
		t.Errorf("expected 80.7, got %v", got)
	}
	// 70kg at 1.80m: healthy weight is above 63.0, so the 10% loss wins.
	if got := suggestedTargetWeight(70, 1.80); got != 63.0 {
		t.Errorf("expected 63.0, got %v", got)
	}
}

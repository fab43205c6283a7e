package weightgoal

import (
	"testing"

	"github.com/vitaltrack/backend/internal/domain/entity"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

func TestReviewFrequencyFor(t *testing.T) {
	cases := []struct {
		weeks    int
		expected valueobject.ReviewFrequency
	}{
		{4, valueobject.ReviewFrequencyWeekly},
		{12, valueobject.ReviewFrequencyWeekly},
		{13, valueobject.ReviewFrequencyBiweekly},
		{26, valueobject.ReviewFrequencyBiweekly},
		{27, valueobject.ReviewFrequencyMonthly},
		{104, valueobject.ReviewFrequencyMonthly},
	}

	for _, tc := range cases {
		if got := ReviewFrequencyFor(tc.weeks); got != tc.expected {
			t.Errorf("ReviewFrequencyFor(%d) = %s, expected %s", tc.weeks, got, tc.expected)
		}
	}
}

func TestBuildReviewCriteria(t *testing.T) {
	criteria := BuildReviewCriteria(valueobject.AgeBracketAdult)

	if criteria.MaxDeviationPercent != 15 {
		t.Errorf("expected adult deviation limit 15, got %v", criteria.MaxDeviationPercent)
	}
	if criteria.WeeksWithoutProgress != 3 {
		t.Errorf("expected 3 weeks without progress, got %d", criteria.WeeksWithoutProgress)
	}
	if criteria.MaxAcceleration != 1.5 {
		t.Errorf("expected max acceleration 1.5, got %v", criteria.MaxAcceleration)
	}

	young := BuildReviewCriteria(valueobject.AgeBracketYoung)
	if young.MaxDeviationPercent != 20 {
		t.Errorf("expected young deviation limit 20, got %v", young.MaxDeviationPercent)
	}
}

func TestGenerateActionPlan(t *testing.T) {
	plan := GenerateActionPlan()

	if len(plan.NutritionTips) == 0 || len(plan.Activities) == 0 || len(plan.NextSteps) == 0 {
		t.Error("expected every plan section to be populated")
	}
	if len(plan.WeeklySchedule) != 4 {
		t.Fatalf("expected a 4-week schedule, got %d weeks", len(plan.WeeklySchedule))
	}
	for _, week := range []string{"week1", "week2", "week3", "week4"} {
		if len(plan.WeeklySchedule[week]) == 0 {
			t.Errorf("expected schedule entries for %s", week)
		}
	}
}

func TestGenerateConfiguredAlerts(t *testing.T) {
	t.Run("weighing preference produces a weekly reminder", func(t *testing.T) {
		alerts := GenerateConfiguredAlerts(entity.AlertPreferences{
			DesiredTypes: []valueobject.AlertType{valueobject.AlertTypeWeighing},
			PreferredTimes: entity.PreferredTimes{
				Morning: "07:30",
			},
		})

		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		alert := alerts[0]
		if alert.Type != valueobject.AlertTypeWeighing {
			t.Errorf("expected weighing alert, got %s", alert.Type)
		}
		if alert.Frequency != "weekly" {
			t.Errorf("expected weekly frequency, got %s", alert.Frequency)
		}
		if alert.Time != "07:30" {
			t.Errorf("expected preferred morning time, got %s", alert.Time)
		}
		if !alert.Active {
			t.Error("expected alert to be active")
		}
	})

	t.Run("missing morning preference falls back to the default time", func(t *testing.T) {
		alerts := GenerateConfiguredAlerts(entity.AlertPreferences{
			DesiredTypes: []valueobject.AlertType{valueobject.AlertTypeWeighing},
		})

		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(alerts))
		}
		if alerts[0].Time != "08:00" {
			t.Errorf("expected default time 08:00, got %s", alerts[0].Time)
		}
	})

	t.Run("other desired types produce no alert yet", func(t *testing.T) {
		alerts := GenerateConfiguredAlerts(entity.AlertPreferences{
			DesiredTypes: []valueobject.AlertType{
				valueobject.AlertTypeExercise,
				valueobject.AlertTypeHydration,
			},
		})

		if len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})
}

func TestGenerateObjectiveAlerts(t *testing.T) {
	alerts := GenerateObjectiveAlerts(entity.AlertPreferences{})

	if len(alerts) != 1 {
		t.Fatalf("expected exactly 1 objective alert, got %d", len(alerts))
	}
	alert := alerts[0]
	if alert.Type != "weekly_weighing" {
		t.Errorf("expected weekly_weighing alert, got %s", alert.Type)
	}
	if alert.BasedOn != "main_weight_goal" {
		t.Errorf("expected alert based on main_weight_goal, got %s", alert.BasedOn)
	}
	if alert.SuggestedTime != "08:00" {
		t.Errorf("expected default suggested time, got %s", alert.SuggestedTime)
	}
}

package weightgoal

import (
	"time"

	"github.com/vitaltrack/backend/internal/domain/entity"
	"github.com/vitaltrack/backend/internal/domain/valueobject"
)

// firstReviewDelay is the fixed interval between goal creation and the first
// automatic review, independent of the review frequency.
const firstReviewDelay = 7 * 24 * time.Hour

// Review cadence thresholds, in goal duration weeks.
const (
	weeklyReviewMaxWeeks   = 12
	biweeklyReviewMaxWeeks = 26
)

// ReviewFrequencyFor selects the review cadence from the goal duration.
// Shorter goals are reviewed more often.
func ReviewFrequencyFor(durationWeeks int) valueobject.ReviewFrequency {
	switch {
	case durationWeeks <= weeklyReviewMaxWeeks:
		return valueobject.ReviewFrequencyWeekly
	case durationWeeks <= biweeklyReviewMaxWeeks:
		return valueobject.ReviewFrequencyBiweekly
	default:
		return valueobject.ReviewFrequencyMonthly
	}
}

// BuildReviewCriteria derives the automatic-review thresholds from the age
// bracket. Only the deviation threshold varies per bracket.
func BuildReviewCriteria(bracket valueobject.AgeBracket) entity.ReviewCriteria {
	limits := valueobject.SafetyLimitsFor(bracket)
	return entity.ReviewCriteria{
		MaxDeviationPercent:  limits.MaxDeviationPercent.InexactFloat64(),
		WeeksWithoutProgress: 3,
		MaxAcceleration:      1.5,
	}
}

// GenerateActionPlan returns the initial plan attached to every approved goal.
// The content is intentionally static; personalization happens through alerts
// and reviews, not through the plan itself.
func GenerateActionPlan() entity.ActionPlan {
	return entity.ActionPlan{
		NutritionTips: []string{
			"Increase vegetable and lean protein intake",
			"Cut back on refined carbohydrates and sugar",
			"Keep your hydration level adequate",
		},
		Activities: []string{
			"30-minute daily walk",
			"Resistance training 2-3x per week",
			"Daily stretching",
		},
		NextSteps: []string{
			"Record your starting weight",
			"Set your meal times",
			"Plan your physical activities",
		},
		WeeklySchedule: map[string][]string{
			"week1": {"Adapt to the new plan", "Log every meal"},
			"week2": {"Start light exercise", "Adjust portion sizes"},
			"week3": {"Gradually increase intensity", "First progress check"},
			"week4": {"Consolidate habits", "Review progress"},
		},
	}
}

// GenerateConfiguredAlerts builds reminders from the user's preferences.
// Only the weighing reminder is wired today; other desired types are stored
// in the preferences but produce no alert yet.
func GenerateConfiguredAlerts(prefs entity.AlertPreferences) []entity.ConfiguredAlert {
	alerts := []entity.ConfiguredAlert{}

	for _, desired := range prefs.DesiredTypes {
		if desired != valueobject.AlertTypeWeighing {
			continue
		}
		alertTime := prefs.PreferredTimes.Morning
		if alertTime == "" {
			alertTime = "08:00"
		}
		alerts = append(alerts, entity.ConfiguredAlert{
			Type:      valueobject.AlertTypeWeighing,
			Frequency: "weekly",
			Time:      alertTime,
			Message:   "Time to record your weekly weigh-in!",
			Active:    true,
		})
	}

	return alerts
}

// GenerateObjectiveAlerts builds the reminders derived from the main weight
// objective. Every goal gets exactly one weekly weighing reminder.
func GenerateObjectiveAlerts(prefs entity.AlertPreferences) []entity.ObjectiveAlert {
	suggestedTime := prefs.PreferredTimes.Morning
	if suggestedTime == "" {
		suggestedTime = "08:00"
	}
	return []entity.ObjectiveAlert{
		{
			Type:          "weekly_weighing",
			Frequency:     "weekly",
			SuggestedTime: suggestedTime,
			Message:       "Record your weight to track your progress",
			BasedOn:       "main_weight_goal",
		},
	}
}

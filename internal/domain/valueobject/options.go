package valueobject

// ValidationStatus is the verdict of the weight-loss safety validator.
type ValidationStatus string

const (
	ValidationStatusApproved ValidationStatus = "approved"
	ValidationStatusWarning  ValidationStatus = "warning"
	ValidationStatusRejected ValidationStatus = "rejected"
)

// ReviewFrequency is how often a goal should be re-examined.
type ReviewFrequency string

const (
	ReviewFrequencyWeekly   ReviewFrequency = "weekly"
	ReviewFrequencyBiweekly ReviewFrequency = "biweekly"
	ReviewFrequencyMonthly  ReviewFrequency = "monthly"
)

// Motivation is the user's main driver for the goal.
type Motivation string

const (
	MotivationHealth      Motivation = "health"
	MotivationAesthetic   Motivation = "aesthetic"
	MotivationSelfEsteem  Motivation = "self_esteem"
	MotivationPerformance Motivation = "performance"
	MotivationMedical     Motivation = "medical"
)

// Approach is the user's preferred weight-loss strategy.
type Approach string

const (
	ApproachDiet     Approach = "diet"
	ApproachExercise Approach = "exercise"
	ApproachCombined Approach = "combined"
)

// Experience describes the user's history with weight-loss attempts.
type Experience string

const (
	ExperienceFirstTime            Experience = "first_time"
	ExperiencePreviousAttempts     Experience = "previous_attempts"
	ExperienceProfessionalGuidance Experience = "professional_guidance"
)

// AlertType identifies a reminder category a user can subscribe to.
type AlertType string

const (
	AlertTypeWeighing    AlertType = "weighing"
	AlertTypeMeasurement AlertType = "measurement"
	AlertTypeExercise    AlertType = "exercise"
	AlertTypeHydration   AlertType = "hydration"
	AlertTypeMeal        AlertType = "meal"
)

// MilestoneFrequency controls how often automatic milestones are placed.
type MilestoneFrequency string

const (
	MilestoneFrequencyWeekly   MilestoneFrequency = "weekly"
	MilestoneFrequencyBiweekly MilestoneFrequency = "biweekly"
	MilestoneFrequencyMonthly  MilestoneFrequency = "monthly"
)

// RevisionReason is why a user requests a goal revision.
type RevisionReason string

const (
	RevisionReasonSlowProgress       RevisionReason = "slow_progress"
	RevisionReasonFastProgress       RevisionReason = "fast_progress"
	RevisionReasonCircumstanceChange RevisionReason = "circumstance_change"
	RevisionReasonHealthIssue        RevisionReason = "health_issue"
	RevisionReasonNewGoal            RevisionReason = "new_goal"
)

// SuggestionType identifies what a safety suggestion proposes to change.
type SuggestionType string

const (
	SuggestionTypeDeadline     SuggestionType = "deadline"
	SuggestionTypeTargetWeight SuggestionType = "target_weight"
)

// NotificationChannel is a delivery channel for alerts.
type NotificationChannel string

const (
	NotificationChannelPush  NotificationChannel = "push"
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSMS   NotificationChannel = "sms"
)

// IsValidMotivation reports whether v is a known motivation option.
func IsValidMotivation(v Motivation) bool {
	switch v {
	case MotivationHealth, MotivationAesthetic, MotivationSelfEsteem, MotivationPerformance, MotivationMedical:
		return true
	}
	return false
}

// IsValidApproach reports whether v is a known approach option.
func IsValidApproach(v Approach) bool {
	switch v {
	case ApproachDiet, ApproachExercise, ApproachCombined:
		return true
	}
	return false
}

// IsValidExperience reports whether v is a known experience option.
func IsValidExperience(v Experience) bool {
	switch v {
	case ExperienceFirstTime, ExperiencePreviousAttempts, ExperienceProfessionalGuidance:
		return true
	}
	return false
}

// IsValidAlertType reports whether v is a known alert type.
func IsValidAlertType(v AlertType) bool {
	switch v {
	case AlertTypeWeighing, AlertTypeMeasurement, AlertTypeExercise, AlertTypeHydration, AlertTypeMeal:
		return true
	}
	return false
}

// IsValidMilestoneFrequency reports whether v is a known milestone frequency.
func IsValidMilestoneFrequency(v MilestoneFrequency) bool {
	switch v {
	case MilestoneFrequencyWeekly, MilestoneFrequencyBiweekly, MilestoneFrequencyMonthly:
		return true
	}
	return false
}

// IsValidRevisionReason reports whether v is a known revision reason.
func IsValidRevisionReason(v RevisionReason) bool {
	switch v {
	case RevisionReasonSlowProgress, RevisionReasonFastProgress, RevisionReasonCircumstanceChange,
		RevisionReasonHealthIssue, RevisionReasonNewGoal:
		return true
	}
	return false
}

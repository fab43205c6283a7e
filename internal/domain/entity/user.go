package entity

import (
	"time"
)

// Gender is the user's self-declared gender.
type Gender string

const (
	GenderMale         Gender = "male"
	GenderFemale       Gender = "female"
	GenderOther        Gender = "other"
	GenderNotDisclosed Gender = "not_disclosed"
)

// ActivityLevel describes the user's habitual physical activity.
type ActivityLevel string

const (
	ActivityLevelSedentary   ActivityLevel = "sedentary"
	ActivityLevelLight       ActivityLevel = "light"
	ActivityLevelModerate    ActivityLevel = "moderate"
	ActivityLevelIntense     ActivityLevel = "intense"
	ActivityLevelVeryIntense ActivityLevel = "very_intense"
)

// BMICategory is the World Health Organization BMI band.
type BMICategory string

const (
	BMICategoryUnderweight BMICategory = "underweight"
	BMICategoryNormal      BMICategory = "normal"
	BMICategoryOverweight  BMICategory = "overweight"
	BMICategoryObesity1    BMICategory = "obesity_1"
	BMICategoryObesity2    BMICategory = "obesity_2"
	BMICategoryObesity3    BMICategory = "obesity_3"
)

// RiskLevel is the simplified health-risk classification computed at signup.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// InitialProfile is the health snapshot generated when a user registers.
type InitialProfile struct {
	ProfileID             string      `json:"profileId"`
	BMI                   float64     `json:"bmi"`
	BMICategory           BMICategory `json:"bmiCategory"`
	RiskLevel             RiskLevel   `json:"riskLevel"`
	Recommendations       []string    `json:"recommendations"`
	SuggestedTargetWeight float64     `json:"suggestedTargetWeight"`
}

// User represents a registered platform user.
type User struct {
	ID                int
	Name              string
	Email             string
	PasswordHash      string
	BirthDate         time.Time
	Gender            Gender
	HeightM           float64
	CurrentWeightKg   float64
	HealthConditions  []string
	ActivityLevel     ActivityLevel
	InitialProfile    InitialProfile
	ConfirmationToken string
	EmailConfirmed    bool
	TermsAcceptedAt   time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AgeAt computes the user's age in whole years at the given instant.
func (u *User) AgeAt(now time.Time) int {
	age := now.Year() - u.BirthDate.Year()
	anniversary := u.BirthDate.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}

package dto

import (
	"time"

	"github.com/vitaltrack/backend/internal/application/usecase/user"
	"github.com/vitaltrack/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name               string   `json:"name" binding:"required,min=2,max=255"`
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required,min=8"`
	BirthDate          string   `json:"birthDate" binding:"required,datetime=2006-01-02"`
	Gender             string   `json:"gender" binding:"required,oneof=male female other not_disclosed"`
	Height             float64  `json:"height" binding:"required,gt=0"`
	CurrentWeight      float64  `json:"currentWeight" binding:"required,gte=30,lte=300"`
	HealthConditions   []string `json:"healthConditions,omitempty"`
	ActivityLevel      string   `json:"activityLevel" binding:"required,oneof=sedentary light moderate intense very_intense"`
	TermsAccepted      bool     `json:"termsAccepted"`
	GuardianAuthorized bool     `json:"guardianAuthorized"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// InitialProfileResponse represents the signup health snapshot in responses.
type InitialProfileResponse struct {
	ProfileID             string   `json:"profileId"`
	BMI                   float64  `json:"bmi"`
	BMICategory           string   `json:"bmiCategory"`
	RiskLevel             string   `json:"riskLevel"`
	Recommendations       []string `json:"recommendations"`
	SuggestedTargetWeight float64  `json:"suggestedTargetWeight"`
}

// UserResponse represents a user in API responses. The password hash and
// confirmation token never leave the server.
type UserResponse struct {
	ID             int                    `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	BirthDate      string                 `json:"birthDate"`
	Gender         string                 `json:"gender"`
	Height         float64                `json:"height"`
	CurrentWeight  float64                `json:"currentWeight"`
	ActivityLevel  string                 `json:"activityLevel"`
	InitialProfile InitialProfileResponse `json:"initialProfile"`
	EmailConfirmed bool                   `json:"emailConfirmed"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// RegisterResponse represents the response for user registration.
type RegisterResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// LoginResponse represents the response for user login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// ToRegisterUserInput converts a register request to the use case input.
// The birth date has already passed the datetime binding check.
func ToRegisterUserInput(req RegisterRequest) user.RegisterUserInput {
	birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
	return user.RegisterUserInput{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		BirthDate:          birthDate,
		Gender:             entity.Gender(req.Gender),
		HeightM:            req.Height,
		CurrentWeightKg:    req.CurrentWeight,
		HealthConditions:   req.HealthConditions,
		ActivityLevel:      entity.ActivityLevel(req.ActivityLevel),
		TermsAccepted:      req.TermsAccepted,
		GuardianAuthorized: req.GuardianAuthorized,
	}
}

// ToUserResponse converts a domain User entity to its response DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		BirthDate:     u.BirthDate.Format("2006-01-02"),
		Gender:        string(u.Gender),
		Height:        u.HeightM,
		CurrentWeight: u.CurrentWeightKg,
		ActivityLevel: string(u.ActivityLevel),
		InitialProfile: InitialProfileResponse{
			ProfileID:             u.InitialProfile.ProfileID,
			BMI:                   u.InitialProfile.BMI,
			BMICategory:           string(u.InitialProfile.BMICategory),
			RiskLevel:             string(u.InitialProfile.RiskLevel),
			Recommendations:       u.InitialProfile.Recommendations,
			SuggestedTargetWeight: u.InitialProfile.SuggestedTargetWeight,
		},
		EmailConfirmed: u.EmailConfirmed,
		CreatedAt:      u.CreatedAt,
	}
}

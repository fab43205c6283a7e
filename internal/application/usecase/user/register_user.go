package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name               string
	Email              string
	Password           string
	BirthDate          time.Time
	Gender             entity.Gender
	HeightM            float64
	CurrentWeightKg    float64
	HealthConditions   []string
	ActivityLevel      entity.ActivityLevel
	TermsAccepted      bool
	GuardianAuthorized bool
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration: profile snapshot generation,
// password hashing and the best-effort confirmation email.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	emailSender     adapter.EmailSender
	logger          *slog.Logger
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	emailSender adapter.EmailSender,
	logger *slog.Logger,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		emailSender:     emailSender,
		logger:          logger,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeWeakPassword,
			err.Error(),
			domainerror.ErrWeakPassword,
		)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeEmailExists,
			"this email is already registered",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	now := time.Now().UTC()
	age := (&entity.User{BirthDate: input.BirthDate}).AgeAt(now)
	if age < minRegistrationAge || age > maxRegistrationAge {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidUserField,
			fmt.Sprintf("age must be between %d and %d years", minRegistrationAge, maxRegistrationAge),
			domainerror.ErrInvalidUserField,
		)
	}
	if age < 18 && !input.GuardianAuthorized {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeGuardianAuthRequired,
			"guardian authorization is required for users under 18",
			domainerror.ErrGuardianAuthorizationRequired,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	bmi := CalculateBMI(input.CurrentWeightKg, input.HeightM)
	profile := entity.InitialProfile{
		ProfileID:             uuid.NewString(),
		BMI:                   bmi,
		BMICategory:           BMICategoryFor(bmi),
		RiskLevel:             riskLevelFor(bmi, age, input.HealthConditions),
		Recommendations:       initialRecommendations(input.ActivityLevel),
		SuggestedTargetWeight: suggestedTargetWeight(input.CurrentWeightKg, input.HeightM),
	}

	id, err := uc.userRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate user id: %w", err)
	}

	user := &entity.User{
		ID:                id,
		Name:              input.Name,
		Email:             email,
		PasswordHash:      passwordHash,
		BirthDate:         input.BirthDate,
		Gender:            input.Gender,
		HeightM:           input.HeightM,
		CurrentWeightKg:   input.CurrentWeightKg,
		HealthConditions:  input.HealthConditions,
		ActivityLevel:     input.ActivityLevel,
		InitialProfile:    profile,
		ConfirmationToken: uuid.NewString(),
		EmailConfirmed:    false,
		TermsAcceptedAt:   now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Confirmation email is best-effort; registration succeeds regardless.
	uc.sendConfirmationEmail(ctx, user)

	return &RegisterUserOutput{User: user}, nil
}

func (uc *RegisterUserUseCase) sendConfirmationEmail(ctx context.Context, user *entity.User) {
	if uc.emailSender == nil {
		return
	}
	_, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: "Confirm your VitalTrack account",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Confirm your account with the token below:</p><p><strong>%s</strong></p>",
			user.Name, user.ConfirmationToken,
		),
		Text: fmt.Sprintf("Hi %s, confirm your account with this token: %s", user.Name, user.ConfirmationToken),
	})
	if err != nil && uc.logger != nil {
		uc.logger.Warn("failed to send confirmation email",
			slog.Int("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}
}

func validateRegistration(input RegisterUserInput) error {
	if !input.TermsAccepted {
		return domainerror.NewUserError(
			domainerror.ErrCodeTermsNotAccepted,
			"terms of service must be accepted",
			domainerror.ErrTermsNotAccepted,
		)
	}
	if strings.TrimSpace(input.Name) == "" {
		return invalidUserField("name is required")
	}
	if !strings.Contains(input.Email, "@") {
		return invalidUserField("email is not valid")
	}
	if input.HeightM < 0.5 || input.HeightM > 2.5 {
		return invalidUserField("height must be between 0.5 and 2.5 meters")
	}
	if input.CurrentWeightKg < 30 || input.CurrentWeightKg > 300 {
		return invalidUserField("currentWeight must be between 30 and 300 kg")
	}
	return nil
}

func invalidUserField(message string) error {
	return domainerror.NewUserError(
		domainerror.ErrCodeInvalidUserField,
		message,
		domainerror.ErrInvalidUserField,
	)
}

package user

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/domain/entity"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
	"github.com/vitaltrack/backend/internal/integration/persistence/memory"
)

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type fakeEmailSender struct {
	mu   sync.Mutex
	sent []adapter.SendEmailInput
	err  error
}

func (f *fakeEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, input)
	return &adapter.SendEmailResult{ProviderID: "email-1"}, nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateTokenPair(_ context.Context, userID int, _ string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (fakeTokenService) RevokeRefreshToken(_ context.Context, _ string) error {
	return nil
}

func birthDateForAge(age int) time.Time {
	return time.Now().UTC().AddDate(-age, 0, -1)
}

func validRegisterInput() RegisterUserInput {
	return RegisterUserInput{
		Name:            "Maria Silva",
		Email:           "Maria@Example.com",
		Password:        "correct-horse-battery",
		BirthDate:       birthDateForAge(30),
		Gender:          entity.GenderFemale,
		HeightM:         1.65,
		CurrentWeightKg: 72,
		ActivityLevel:   entity.ActivityLevelSedentary,
		TermsAccepted:   true,
	}
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers user with generated profile", func(t *testing.T) {
		repo := memory.NewUserStore()
		emails := &fakeEmailSender{}
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, emails, nil)

		output, err := uc.Execute(ctx, validRegisterInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user := output.User
		if user.ID != 1 {
			t.Errorf("expected first user id 1, got %d", user.ID)
		}
		if user.Email != "maria@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.PasswordHash == "correct-horse-battery" {
			t.Error("expected password to be hashed")
		}

		// 72 / 1.65^2 = 26.45: overweight, low risk at age 30.
		if user.InitialProfile.BMI != 26.45 {
			t.Errorf("expected BMI 26.45, got %v", user.InitialProfile.BMI)
		}
		if user.InitialProfile.BMICategory != entity.BMICategoryOverweight {
			t.Errorf("expected overweight category, got %s", user.InitialProfile.BMICategory)
		}
		if user.InitialProfile.RiskLevel != entity.RiskLevelLow {
			t.Errorf("expected low risk, got %s", user.InitialProfile.RiskLevel)
		}
		// Sedentary users get the extra walking recommendation.
		if len(user.InitialProfile.Recommendations) != 3 {
			t.Errorf("expected 3 recommendations, got %d", len(user.InitialProfile.Recommendations))
		}
		// min(72*0.9=64.8, 24.9*1.65^2=67.8) = 64.8
		if user.InitialProfile.SuggestedTargetWeight != 64.8 {
			t.Errorf("expected suggested target 64.8, got %v", user.InitialProfile.SuggestedTargetWeight)
		}
		if user.ConfirmationToken == "" {
			t.Error("expected a confirmation token")
		}
		if user.EmailConfirmed {
			t.Error("expected email to start unconfirmed")
		}

		if len(emails.sent) != 1 {
			t.Fatalf("expected 1 confirmation email, got %d", len(emails.sent))
		}
		if emails.sent[0].To != "maria@example.com" {
			t.Errorf("expected email to the registered address, got %s", emails.sent[0].To)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo := memory.NewUserStore()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeEmailSender{}, nil)

		if _, err := uc.Execute(ctx, validRegisterInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		input := validRegisterInput()
		input.Email = "MARIA@example.com"
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("minor without guardian authorization fails", func(t *testing.T) {
		repo := memory.NewUserStore()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeEmailSender{}, nil)

		input := validRegisterInput()
		input.BirthDate = birthDateForAge(16)
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrGuardianAuthorizationRequired) {
			t.Fatalf("expected ErrGuardianAuthorizationRequired, got %v", err)
		}

		input.GuardianAuthorized = true
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("expected authorized minor to register, got %v", err)
		}
	})

	t.Run("age outside the platform band fails", func(t *testing.T) {
		repo := memory.NewUserStore()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeEmailSender{}, nil)

		input := validRegisterInput()
		input.BirthDate = birthDateForAge(12)
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrInvalidUserField) {
			t.Fatalf("expected ErrInvalidUserField for age 12, got %v", err)
		}
	})

	t.Run("weak password fails", func(t *testing.T) {
		repo := memory.NewUserStore()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeEmailSender{}, nil)

		input := validRegisterInput()
		input.Password = "short"
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("terms must be accepted", func(t *testing.T) {
		repo := memory.NewUserStore()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeEmailSender{}, nil)

		input := validRegisterInput()
		input.TermsAccepted = false
		if _, err := uc.Execute(ctx, input); !errors.Is(err, domainerror.ErrTermsNotAccepted) {
			t.Fatalf("expected ErrTermsNotAccepted, got %v", err)
		}
	})

	t.Run("email failure does not block registration", func(t *testing.T) {
		repo := memory.NewUserStore()
		emails := &fakeEmailSender{err: errors.New("provider down")}
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, emails, nil)

		if _, err := uc.Execute(ctx, validRegisterInput()); err != nil {
			t.Fatalf("expected registration to succeed, got %v", err)
		}
	})
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserStore()
	registerUC := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeEmailSender{}, nil)
	loginUC := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

	if _, err := registerUC.Execute(ctx, validRegisterInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("valid credentials issue tokens", func(t *testing.T) {
		output, err := loginUC.Execute(ctx, LoginUserInput{
			Email:    "maria@example.com",
			Password: "correct-horse-battery",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		_, err := loginUC.Execute(ctx, LoginUserInput{
			Email:    "maria@example.com",
			Password: "wrong",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		_, err := loginUC.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAgeResolver(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserStore()
	registerUC := NewRegisterUserUseCase(repo, fakePasswordService{}, &fakeEmailSender{}, nil)
	resolver := NewAgeResolver(repo)

	output, err := registerUC.Execute(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	age, err := resolver.GetAge(ctx, output.User.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if age != 30 {
		t.Errorf("expected age 30, got %d", age)
	}

	if _, err := resolver.GetAge(ctx, 999); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

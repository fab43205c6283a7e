package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitaltrack/backend/internal/application/usecase/user"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/dto"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles registration, login and profile endpoints.
type AuthController struct {
	registerUseCase *user.RegisterUserUseCase
	loginUseCase    *user.LoginUserUseCase
	profileUseCase  *user.GetProfileUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *user.RegisterUserUseCase,
	loginUseCase *user.LoginUserUseCase,
	profileUseCase *user.GetProfileUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		profileUseCase:  profileUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidUserField),
		})
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), dto.ToRegisterUserInput(req))
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		User:    dto.ToUserResponse(output.User),
		Message: "Registration successful. Check your inbox to confirm your email.",
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidUserField),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), user.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Profile handles GET /users/me requests.
func (c *AuthController) Profile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.profileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// handleUserError maps user errors to HTTP responses.
func (c *AuthController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(statusCodeForUserError(userErr.Code), dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForUserError maps user error codes to HTTP status codes.
func statusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeInvalidUserField,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeTermsNotAccepted,
		domainerror.ErrCodeGuardianAuthRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitaltrack/backend/internal/application/usecase/weightgoal"
	domainerror "github.com/vitaltrack/backend/internal/domain/error"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/dto"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/middleware"
)

// WeightGoalController handles weight goal endpoints.
type WeightGoalController struct {
	createUseCase *weightgoal.CreateWeightGoalUseCase
	getUseCase    *weightgoal.GetWeightGoalUseCase
	listUseCase   *weightgoal.ListWeightGoalsUseCase
	updateUseCase *weightgoal.UpdateWeightGoalUseCase
	deleteUseCase *weightgoal.DeleteWeightGoalUseCase
	reviseUseCase *weightgoal.ReviseWeightGoalUseCase
}

// NewWeightGoalController creates a new weight goal controller instance.
func NewWeightGoalController(
	createUseCase *weightgoal.CreateWeightGoalUseCase,
	getUseCase *weightgoal.GetWeightGoalUseCase,
	listUseCase *weightgoal.ListWeightGoalsUseCase,
	updateUseCase *weightgoal.UpdateWeightGoalUseCase,
	deleteUseCase *weightgoal.DeleteWeightGoalUseCase,
	reviseUseCase *weightgoal.ReviseWeightGoalUseCase,
) *WeightGoalController {
	return &WeightGoalController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		reviseUseCase: reviseUseCase,
	}
}

// Create handles POST /weight-goals requests.
func (c *WeightGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateWeightGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := dto.ToCreateWeightGoalInput(userID, req)
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeightGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWeightGoalResponse(output.Goal))
}

// Get handles GET /weight-goals/:id requests.
func (c *WeightGoalController) Get(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), weightgoal.GetWeightGoalInput{GoalID: goalID})
	if err != nil {
		c.handleWeightGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeightGoalResponse(output.Goal))
}

// List handles GET /weight-goals requests.
func (c *WeightGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), weightgoal.ListWeightGoalsInput{UserID: userID})
	if err != nil {
		c.handleWeightGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeightGoalListResponse(output.Goals, output.Total))
}

// Update handles PATCH /weight-goals/:id requests.
func (c *WeightGoalController) Update(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateWeightGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidGoalField),
		})
		return
	}

	input := dto.ToUpdateWeightGoalInput(goalID, req)
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeightGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeightGoalResponse(output.Goal))
}

// Delete handles DELETE /weight-goals/:id requests.
func (c *WeightGoalController) Delete(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), weightgoal.DeleteWeightGoalInput{GoalID: goalID})
	if err != nil {
		c.handleWeightGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteWeightGoalResponse{Message: output.Message})
}

// Revise handles POST /weight-goals/:id/revise requests.
func (c *WeightGoalController) Revise(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.ReviseWeightGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidGoalField),
		})
		return
	}

	input := dto.ToReviseWeightGoalInput(goalID, req)
	output, err := c.reviseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeightGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReviseWeightGoalResponse(output))
}

// handleWeightGoalError maps weight goal errors to HTTP responses.
func (c *WeightGoalController) handleWeightGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.WeightGoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(statusCodeForWeightGoalError(goalErr.Code), dto.ErrorResponse{
			Error:   goalErr.Message,
			Code:    string(goalErr.Code),
			Details: goalErr.Details,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForWeightGoalError maps weight goal error codes to HTTP status codes.
func statusCodeForWeightGoalError(code domainerror.WeightGoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeWeightGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTargetWeight,
		domainerror.ErrCodeUnsafeGoal,
		domainerror.ErrCodeUnderageUser,
		domainerror.ErrCodeInvalidGoalField,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseGoalID(ctx *gin.Context) (int, bool) {
	goalID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || goalID < 1 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeInvalidGoalField),
		})
		return 0, false
	}
	return goalID, true
}

func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

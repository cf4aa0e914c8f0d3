// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/user"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// UserController handles user profile endpoints.
type UserController struct {
	getProfileUseCase        *user.GetProfileUseCase
	updatePreferencesUseCase *user.UpdatePreferencesUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updatePreferencesUseCase *user.UpdatePreferencesUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:        getProfileUseCase,
		updatePreferencesUseCase: updatePreferencesUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.getProfileUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(profile))
}

// UpdatePreferences handles PATCH /users/me/preferences requests.
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	updated, err := c.updatePreferencesUseCase.Execute(ctx.Request.Context(), user.UpdatePreferencesInput{
		UserID:             userID,
		Name:               req.Name,
		EmailNotifications: req.EmailNotifications,
		BudgetAlerts:       req.BudgetAlerts,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeUserNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	writeInternalError(ctx)
}

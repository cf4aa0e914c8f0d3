// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/auth"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// AuthController handles account creation and the session lifecycle.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	refreshUseCase  *auth.RefreshSessionUseCase
	logoutUseCase   *auth.LogoutUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	refreshUseCase *auth.RefreshSessionUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		refreshUseCase:  refreshUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register handles POST /auth/register.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindAuthRequest(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:         req.Email,
		Name:          req.Name,
		Password:      req.Password,
		TermsAccepted: req.TermsAccepted,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(output))
}

// Login handles POST /auth/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindAuthRequest(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output))
}

// Refresh handles POST /auth/refresh.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindAuthRequest(ctx, &req, domainerror.ErrCodeMissingToken) {
		return
	}

	output, err := c.refreshUseCase.Execute(ctx.Request.Context(), auth.RefreshSessionInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output))
}

// Logout handles POST /auth/logout. It answers 200 even for a missing or unknown token.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = ctx.ShouldBindJSON(&req)

	c.logoutUseCase.Execute(ctx.Request.Context(), req.RefreshToken)

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

func bindAuthRequest(ctx *gin.Context, req any, code domainerror.AuthErrorCode) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(code),
			Details: err.Error(),
		})
		return false
	}
	return true
}

func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	writeInternalError(ctx)
}

func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeTermsNotAccepted,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

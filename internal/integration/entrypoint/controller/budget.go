// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	createUseCase *budget.CreateBudgetUseCase
	getUseCase    *budget.GetBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budgets requests. Every budget comes with its current usage.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{UserID: userID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetListResponse{
		Budgets: dto.ToBudgetUsageResponses(output.Budgets),
	})
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}
	endDate, err := parseOptionalDate(req.EndDate, parseEndDate)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:    userID,
		Category:  req.Category,
		Limit:     req.Limit,
		Period:    entity.BudgetPeriod(req.Period),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetUsageResponse(output.Usage))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	startDate, err := parseOptionalDate(req.StartDate, parseDate)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}
	endDate, err := parseOptionalDate(req.EndDate, parseEndDate)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:     budgetID,
		UserID:       userID,
		Category:     req.Category,
		Limit:        req.Limit,
		StartDate:    startDate,
		EndDate:      endDate,
		ClearEndDate: req.ClearEndDate,
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, "budget")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *BudgetController) writeInvalidDate(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: err.Error(),
		Code:  string(domainerror.ErrCodeInvalidBudgetDate),
	})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	writeInternalError(ctx)
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetLimit,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidBudgetDateRange,
		domainerror.ErrCodeMissingBudgetFields,
		domainerror.ErrCodeInvalidBudgetDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/expense"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase    *expense.ListExpensesUseCase
	createUseCase  *expense.CreateExpenseUseCase
	getUseCase     *expense.GetExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /expenses requests.
// Supported query parameters: category, start_date, end_date.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	filter := entity.ExpenseFilter{UserID: userID}

	if category := strings.TrimSpace(ctx.Query("category")); category != "" {
		filter.Category = &category
	}
	if startStr := ctx.Query("start_date"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			c.writeInvalidDate(ctx, err)
			return
		}
		filter.StartDate = &start
	}
	if endStr := ctx.Query("end_date"); endStr != "" {
		end, err := parseEndDate(endStr)
		if err != nil {
			c.writeInvalidDate(ctx, err)
			return
		}
		filter.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests. The response carries any budget alerts raised.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}

	result, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Category:    req.Category,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseWithAlertsResponse(result))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	expenseID, ok := pathID(ctx, "expense")
	if !ok {
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(result))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	expenseID, ok := pathID(ctx, "expense")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := parseOptionalDate(req.Date, parseDate)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}

	result, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		UserID:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		Category:    req.Category,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseWithAlertsResponse(result))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	expenseID, ok := pathID(ctx, "expense")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	if _, ok := requireUserID(ctx); !ok {
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingDescription),
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		Description: req.Description,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   output.Category,
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}

func (c *ExpenseController) writeInvalidDate(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: err.Error(),
		Code:  string(domainerror.ErrCodeInvalidExpenseDate),
	})
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	writeInternalError(ctx)
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidExpenseFilter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleCategoryError maps category suggestion errors to HTTP responses.
func (c *ExpenseController) handleCategoryError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if !errors.As(err, &categoryErr) {
		writeInternalError(ctx)
		return
	}

	status := http.StatusInternalServerError
	switch categoryErr.Code {
	case domainerror.ErrCodeMissingDescription:
		status = http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		status = http.StatusServiceUnavailable
	case domainerror.ErrCodeSuggestionFailed:
		status = http.StatusBadGateway
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: categoryErr.Message,
		Code:  string(categoryErr.Code),
	})
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/income"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	listUseCase   *income.ListIncomesUseCase
	createUseCase *income.CreateIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	listUseCase *income.ListIncomesUseCase,
	createUseCase *income.CreateIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	incomes, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(incomes))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingIncomeFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		UserID:      userID,
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
		Date:        date,
		Category:    req.Category,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(created))
}

// Update handles PATCH /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	incomeID, ok := pathID(ctx, "income")
	if !ok {
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingIncomeFields),
		})
		return
	}

	date, err := parseOptionalDate(req.Date, parseDate)
	if err != nil {
		c.writeInvalidDate(ctx, err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), income.UpdateIncomeInput{
		IncomeID:    incomeID,
		UserID:      userID,
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
		Date:        date,
		Category:    req.Category,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(updated))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	incomeID, ok := pathID(ctx, "income")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), incomeID, userID); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *IncomeController) writeInvalidDate(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: err.Error(),
		Code:  string(domainerror.ErrCodeInvalidIncomeDate),
	})
}

func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incomeErr *domainerror.IncomeError
	if errors.As(err, &incomeErr) {
		ctx.JSON(c.getStatusCodeForIncomeError(incomeErr.Code), dto.ErrorResponse{
			Error: incomeErr.Message,
			Code:  string(incomeErr.Code),
		})
		return
	}

	writeInternalError(ctx)
}

func (c *IncomeController) getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidIncomeAmount,
		domainerror.ErrCodeInvalidIncomeDate,
		domainerror.ErrCodeMissingIncomeFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

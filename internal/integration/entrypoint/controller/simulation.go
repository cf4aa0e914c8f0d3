// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/simulation"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
)

// SimulationController handles simulation endpoints.
type SimulationController struct {
	listUseCase    *simulation.ListSimulationsUseCase
	createUseCase  *simulation.CreateSimulationUseCase
	getUseCase     *simulation.GetSimulationUseCase
	deleteUseCase  *simulation.DeleteSimulationUseCase
	previewUseCase *simulation.PreviewImpactUseCase
	convertUseCase *simulation.ConvertSimulationUseCase
}

// NewSimulationController creates a new simulation controller instance.
func NewSimulationController(
	listUseCase *simulation.ListSimulationsUseCase,
	createUseCase *simulation.CreateSimulationUseCase,
	getUseCase *simulation.GetSimulationUseCase,
	deleteUseCase *simulation.DeleteSimulationUseCase,
	previewUseCase *simulation.PreviewImpactUseCase,
	convertUseCase *simulation.ConvertSimulationUseCase,
) *SimulationController {
	return &SimulationController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		deleteUseCase:  deleteUseCase,
		previewUseCase: previewUseCase,
		convertUseCase: convertUseCase,
	}
}

// List handles GET /simulations requests.
func (c *SimulationController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), simulation.ListSimulationsInput{UserID: userID})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationListResponse(output.Simulations))
}

// Create handles POST /simulations requests.
func (c *SimulationController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateSimulationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.writeBindError(ctx, err)
		return
	}

	items, err := toItemInputs(req.Items)
	if err != nil {
		c.writeInvalidItem(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), simulation.CreateSimulationInput{
		UserID: userID,
		Name:   req.Name,
		Items:  items,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSimulationResponse(output.Simulation))
}

// Get handles GET /simulations/:id requests.
func (c *SimulationController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	simulationID, ok := pathID(ctx, "simulation")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), simulation.GetSimulationInput{
		SimulationID: simulationID,
		UserID:       userID,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationResponse(output.Simulation))
}

// Delete handles DELETE /simulations/:id requests.
func (c *SimulationController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	simulationID, ok := pathID(ctx, "simulation")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), simulation.DeleteSimulationInput{
		SimulationID: simulationID,
		UserID:       userID,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Preview handles POST /simulations/preview requests with ad-hoc items.
func (c *SimulationController) Preview(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.PreviewImpactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.writeBindError(ctx, err)
		return
	}

	items, err := toItemInputs(req.Items)
	if err != nil {
		c.writeInvalidItem(ctx, err)
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), simulation.PreviewImpactInput{
		UserID: userID,
		Items:  items,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImpactResponse(output))
}

// Impact handles GET /simulations/:id/impact requests.
func (c *SimulationController) Impact(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	simulationID, ok := pathID(ctx, "simulation")
	if !ok {
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), simulation.PreviewImpactInput{
		UserID:       userID,
		SimulationID: &simulationID,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImpactResponse(output))
}

// Convert handles POST /simulations/:id/convert requests.
func (c *SimulationController) Convert(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	simulationID, ok := pathID(ctx, "simulation")
	if !ok {
		return
	}

	output, err := c.convertUseCase.Execute(ctx.Request.Context(), simulation.ConvertSimulationInput{
		SimulationID: simulationID,
		UserID:       userID,
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ConvertSimulationResponse{
		Expenses: dto.ToExpenseResponses(output.Expenses),
	})
}

func toItemInputs(requests []dto.SimulatedExpenseRequest) ([]simulation.ItemInput, error) {
	items := make([]simulation.ItemInput, len(requests))
	for i, req := range requests {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = simulation.ItemInput{
			Amount:      req.Amount,
			Description: req.Description,
			Category:    req.Category,
			Date:        date,
		}
	}
	return items, nil
}

func (c *SimulationController) writeBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeMissingSimulationFields),
	})
}

func (c *SimulationController) writeInvalidItem(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: err.Error(),
		Code:  string(domainerror.ErrCodeInvalidSimulatedExpense),
	})
}

// handleSimulationError handles simulation errors and returns appropriate HTTP responses.
// Expense validation failures surface during conversion.
func (c *SimulationController) handleSimulationError(ctx *gin.Context, err error) {
	var simulationErr *domainerror.SimulationError
	if errors.As(err, &simulationErr) {
		ctx.JSON(c.getStatusCodeForSimulationError(simulationErr.Code), dto.ErrorResponse{
			Error: simulationErr.Message,
			Code:  string(simulationErr.Code),
		})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	writeInternalError(ctx)
}

func (c *SimulationController) getStatusCodeForSimulationError(code domainerror.SimulationErrorCode) int {
	switch code {
	case domainerror.ErrCodeSimulationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptySimulation,
		domainerror.ErrCodeInvalidSimulatedExpense,
		domainerror.ErrCodeMissingSimulationFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	categoryController     *controller.CategoryController
	budgetController       *controller.BudgetController
	expenseController      *controller.ExpenseController
	incomeController       *controller.IncomeController
	simulationController   *controller.SimulationController
	notificationController *controller.NotificationController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	metricsHandler         http.Handler
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	expenseController *controller.ExpenseController,
	incomeController *controller.IncomeController,
	simulationController *controller.SimulationController,
	notificationController *controller.NotificationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		categoryController:     categoryController,
		budgetController:       budgetController,
		expenseController:      expenseController,
		incomeController:       incomeController,
		simulationController:   simulationController,
		notificationController: notificationController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
		metricsHandler:         metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupOpsRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupOpsRoutes configures health check and metrics endpoints.
func (r *Router) setupOpsRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/logout", r.authController.Logout)
	}

	// Everything below requires authentication
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	users := protected.Group("/users")
	{
		users.GET("/me", r.userController.GetProfile)
		users.PATCH("/me/preferences", r.userController.UpdatePreferences)
	}

	protected.GET("/categories", r.categoryController.List)

	budgets := protected.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.POST("", r.budgetController.Create)
		budgets.GET("/:id", r.budgetController.Get)
		budgets.PATCH("/:id", r.budgetController.Update)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	expenses := protected.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Create)
		expenses.POST("/suggest-category", r.expenseController.SuggestCategory)
		expenses.GET("/:id", r.expenseController.Get)
		expenses.PATCH("/:id", r.expenseController.Update)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	incomes := protected.Group("/incomes")
	{
		incomes.GET("", r.incomeController.List)
		incomes.POST("", r.incomeController.Create)
		incomes.PATCH("/:id", r.incomeController.Update)
		incomes.DELETE("/:id", r.incomeController.Delete)
	}

	simulations := protected.Group("/simulations")
	{
		simulations.GET("", r.simulationController.List)
		simulations.POST("", r.simulationController.Create)
		simulations.POST("/preview", r.simulationController.Preview)
		simulations.GET("/:id", r.simulationController.Get)
		simulations.DELETE("/:id", r.simulationController.Delete)
		simulations.GET("/:id/impact", r.simulationController.Impact)
		simulations.POST("/:id/convert", r.simulationController.Convert)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", r.notificationController.List)
		notifications.GET("/unread-count", r.notificationController.UnreadCount)
		notifications.POST("/read-all", r.notificationController.MarkAllRead)
		notifications.PATCH("/:id/read", r.notificationController.MarkRead)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/application/usecase/expense"
	"github.com/budgetwise/backend/internal/application/usecase/income"
	"github.com/budgetwise/backend/internal/application/usecase/notification"
	"github.com/budgetwise/backend/internal/application/usecase/simulation"
	"github.com/budgetwise/backend/internal/application/usecase/user"
	"github.com/budgetwise/backend/internal/infra/cache"
	"github.com/budgetwise/backend/internal/infra/db"
	"github.com/budgetwise/backend/internal/infra/server/router"
	"github.com/budgetwise/backend/internal/integration/adapters"
	notificationcache "github.com/budgetwise/backend/internal/integration/cache"
	"github.com/budgetwise/backend/internal/integration/email"
	"github.com/budgetwise/backend/internal/integration/email/templates"
	"github.com/budgetwise/backend/internal/integration/entrypoint/controller"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetwise/backend/internal/integration/metrics"
	"github.com/budgetwise/backend/internal/integration/persistence"
)

// Options replaces infrastructure pieces. Zero values select the production
// implementation (system clock, Resend, Gemini, a fresh Prometheus registry).
// A nil Redis client disables the unread counter cache and shares no rate limits.
type Options struct {
	Clock       adapter.Clock
	EmailSender adapter.EmailSender
	Suggester   adapter.CategorySuggester
	Redis       *redis.Client
	Registry    *prometheus.Registry
}

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Registry *prometheus.Registry
	Router   *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *gorm.DB, opts Options) (*Injector, error) {
	var err error

	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	budgetMetrics := metrics.NewBudgetMetrics(registry)

	// Create repositories
	userRepo := persistence.NewUserRepository(database)
	refreshTokens := persistence.NewRefreshTokenStore(database)
	budgetRepo := persistence.NewBudgetRepository(database)
	expenseRepo := persistence.NewExpenseRepository(database)
	incomeRepo := persistence.NewIncomeRepository(database)
	simulationRepo := persistence.NewSimulationRepository(database)
	notificationRepo := persistence.NewNotificationRepository(database)
	if opts.Redis != nil {
		notificationRepo = notificationcache.NewCachedNotificationRepository(
			notificationRepo,
			opts.Redis,
			cfg.Notification.UnreadCacheTTL,
		)
	}
	txManager := persistence.NewTransactionManager(database)

	// Create adapters/services
	hasher := adapters.NewBcryptHasher(cfg.JWT.BcryptCost)
	sessions := adapters.NewJWTSessions(cfg.JWT.Secret, adapters.SessionTTL{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, refreshTokens, clock)

	suggester := opts.Suggester
	if suggester == nil {
		suggester = adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	sender := opts.EmailSender
	if sender == nil {
		sender, err = newEmailSender(&cfg.Email)
		if err != nil {
			return nil, err
		}
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	alertMailer := email.NewAlertMailer(sender, renderer, cfg.Email.AppBaseURL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, hasher, sessions, clock)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, hasher, sessions)
	refreshSessionUseCase := auth.NewRefreshSessionUseCase(userRepo, sessions)
	logoutUseCase := auth.NewLogoutUserUseCase(sessions)

	// Create user use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updatePreferencesUseCase := user.NewUpdatePreferencesUseCase(userRepo)

	// Create budget use cases
	evaluateImpactUseCase := budget.NewEvaluateImpactUseCase(budgetRepo, expenseRepo, clock, budgetMetrics)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, expenseRepo, clock)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, expenseRepo, clock)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create notification use cases
	triggerBudgetAlertsUseCase := notification.NewTriggerBudgetAlertsUseCase(
		evaluateImpactUseCase,
		notificationRepo,
		userRepo,
		alertMailer,
		budgetMetrics,
		cfg.TriggerConfig(),
	)
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
	markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo)
	countUnreadUseCase := notification.NewCountUnreadUseCase(notificationRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, triggerBudgetAlertsUseCase)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, triggerBudgetAlertsUseCase)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(suggester)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create simulation use cases
	listSimulationsUseCase := simulation.NewListSimulationsUseCase(simulationRepo)
	createSimulationUseCase := simulation.NewCreateSimulationUseCase(simulationRepo)
	getSimulationUseCase := simulation.NewGetSimulationUseCase(simulationRepo)
	deleteSimulationUseCase := simulation.NewDeleteSimulationUseCase(simulationRepo)
	previewImpactUseCase := simulation.NewPreviewImpactUseCase(simulationRepo, evaluateImpactUseCase)
	convertSimulationUseCase := simulation.NewConvertSimulationUseCase(simulationRepo, expenseRepo, txManager)

	// Create controllers
	var cacheHealthChecker controller.HealthChecker
	if opts.Redis != nil {
		cacheHealthChecker = cache.HealthCheck(opts.Redis)
	}
	healthController := controller.NewHealthController(db.HealthCheck(database), cacheHealthChecker)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshSessionUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updatePreferencesUseCase,
	)

	categoryController := controller.NewCategoryController()

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		getBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		suggestCategoryUseCase,
	)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	simulationController := controller.NewSimulationController(
		listSimulationsUseCase,
		createSimulationUseCase,
		getSimulationUseCase,
		deleteSimulationUseCase,
		previewImpactUseCase,
		convertSimulationUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markReadUseCase,
		markAllReadUseCase,
		countUnreadUseCase,
	)

	// Create middleware
	limiterOpts := []middleware.RateLimiterOption{
		middleware.WithLimits(cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow),
		middleware.WithDisabled(cfg.IsTest()),
	}
	if opts.Redis != nil {
		limiterOpts = append(limiterOpts, middleware.WithRedis(opts.Redis, "login"))
	}
	loginRateLimiter := middleware.NewRateLimiter(limiterOpts...)
	authMiddleware := middleware.NewAuthMiddleware(sessions)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		budgetController,
		expenseController,
		incomeController,
		simulationController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	)

	return &Injector{
		Config:   cfg,
		DB:       database,
		Redis:    opts.Redis,
		Registry: registry,
		Router:   r,
	}, nil
}

func newEmailSender(cfg *config.EmailConfig) (adapter.EmailSender, error) {
	if cfg.ResendBaseURL == "" {
		return email.NewResendClient(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail), nil
	}
	return email.NewResendClientWithBaseURL(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail, cfg.ResendBaseURL)
}

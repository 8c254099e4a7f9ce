// Package main is the entry point for the StudySync API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/studysync/backend/config"
	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/application/usecase/attendance"
	"github.com/studysync/backend/internal/application/usecase/auth"
	"github.com/studysync/backend/internal/application/usecase/budget"
	"github.com/studysync/backend/internal/application/usecase/group"
	"github.com/studysync/backend/internal/application/usecase/planner"
	"github.com/studysync/backend/internal/application/usecase/schedule"
	"github.com/studysync/backend/internal/infra/db"
	"github.com/studysync/backend/internal/infra/server/router"
	"github.com/studysync/backend/internal/integration/adapters"
	"github.com/studysync/backend/internal/integration/email"
	"github.com/studysync/backend/internal/integration/entrypoint/controller"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
	"github.com/studysync/backend/internal/integration/persistence"
	"github.com/studysync/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting StudySync API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
			&model.ClassSessionModel{},
			&model.TransactionModel{},
			&model.BudgetLimitModel{},
			&model.StudyGroupModel{},
			&model.GroupMemberModel{},
			&model.StudyPlanModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis connection for the budget overview cache
	var overviewCache adapter.OverviewCache
	if opts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		slog.Warn("Invalid Redis URL, running without overview cache", "error", err)
	} else {
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		redisClient := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		pingErr := redisClient.Ping(pingCtx).Err()
		cancel()

		if pingErr != nil {
			slog.Warn("Redis connection failed, running without overview cache",
				"error", pingErr,
			)
		} else {
			overviewCache = adapters.NewRedisOverviewCache(redisClient, cfg.Redis.OverviewTTL)
			slog.Info("Redis connection established")
			defer func() {
				if err := redisClient.Close(); err != nil {
					slog.Error("Failed to close Redis connection", "error", err)
				}
			}()
		}
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var scheduleController *controller.ScheduleController
	var attendanceController *controller.AttendanceController
	var budgetController *controller.BudgetController
	var plannerController *controller.PlannerController
	var groupController *controller.GroupController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		sessionRepo := persistence.NewSessionRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		limitRepo := persistence.NewBudgetLimitRepository(database.DB())
		groupRepo := persistence.NewGroupRepository(database.DB())
		planRepo := persistence.NewPlanRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
		resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
		plannerService := adapters.NewGeminiService(cfg.Gemini.APIKey)

		var emailSender adapter.EmailSender
		if cfg.Email.ResendAPIKey != "" {
			emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			slog.Info("Email sending enabled via Resend")
		} else {
			slog.Warn("RESEND_API_KEY not set, password reset emails will be logged only")
		}

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
		forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
		resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

		// Create schedule use cases
		createSessionUseCase := schedule.NewCreateSessionUseCase(sessionRepo)
		listScheduleUseCase := schedule.NewListScheduleUseCase(sessionRepo)
		updateSessionUseCase := schedule.NewUpdateSessionUseCase(sessionRepo)
		deleteSessionUseCase := schedule.NewDeleteSessionUseCase(sessionRepo)
		markAttendanceUseCase := schedule.NewMarkAttendanceUseCase(sessionRepo)
		weeklyStatsUseCase := schedule.NewGetWeeklyStatsUseCase(sessionRepo)

		// Create attendance use cases
		getCalendarUseCase := attendance.NewGetCalendarUseCase(sessionRepo)
		getSubjectStatsUseCase := attendance.NewGetSubjectStatsUseCase(sessionRepo)
		listRecordsUseCase := attendance.NewListRecordsUseCase(sessionRepo)

		// Create budget use cases
		createTransactionUseCase := budget.NewCreateTransactionUseCase(transactionRepo, overviewCache)
		listTransactionsUseCase := budget.NewListTransactionsUseCase(transactionRepo)
		deleteTransactionUseCase := budget.NewDeleteTransactionUseCase(transactionRepo, overviewCache)
		setLimitUseCase := budget.NewSetLimitUseCase(limitRepo, overviewCache)
		listLimitsUseCase := budget.NewListLimitsUseCase(limitRepo)
		deleteLimitUseCase := budget.NewDeleteLimitUseCase(limitRepo, overviewCache)
		getOverviewUseCase := budget.NewGetOverviewUseCase(transactionRepo, limitRepo, overviewCache)

		// Create planner use cases
		generatePlanUseCase := planner.NewGeneratePlanUseCase(plannerService, planRepo)
		listPlansUseCase := planner.NewListPlansUseCase(planRepo)
		deletePlanUseCase := planner.NewDeletePlanUseCase(planRepo)

		// Create study group use cases
		createGroupUseCase := group.NewCreateGroupUseCase(groupRepo)
		listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
		joinGroupUseCase := group.NewJoinGroupUseCase(groupRepo)
		leaveGroupUseCase := group.NewLeaveGroupUseCase(groupRepo)

		// Create controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
		)
		scheduleController = controller.NewScheduleController(
			createSessionUseCase,
			listScheduleUseCase,
			updateSessionUseCase,
			deleteSessionUseCase,
			markAttendanceUseCase,
			weeklyStatsUseCase,
		)
		attendanceController = controller.NewAttendanceController(
			getCalendarUseCase,
			getSubjectStatsUseCase,
			listRecordsUseCase,
		)
		budgetController = controller.NewBudgetController(
			createTransactionUseCase,
			listTransactionsUseCase,
			deleteTransactionUseCase,
			setLimitUseCase,
			listLimitsUseCase,
			deleteLimitUseCase,
			getOverviewUseCase,
		)
		plannerController = controller.NewPlannerController(
			generatePlanUseCase,
			listPlansUseCase,
			deletePlanUseCase,
		)
		groupController = controller.NewGroupController(
			createGroupUseCase,
			listGroupsUseCase,
			joinGroupUseCase,
			leaveGroupUseCase,
		)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Application systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		scheduleController,
		attendanceController,
		budgetController,
		plannerController,
		groupController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

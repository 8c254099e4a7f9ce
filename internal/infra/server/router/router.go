// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/studysync/backend/internal/integration/entrypoint/controller"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	scheduleController   *controller.ScheduleController
	attendanceController *controller.AttendanceController
	budgetController     *controller.BudgetController
	plannerController    *controller.PlannerController
	groupController      *controller.GroupController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	scheduleController *controller.ScheduleController,
	attendanceController *controller.AttendanceController,
	budgetController *controller.BudgetController,
	plannerController *controller.PlannerController,
	groupController *controller.GroupController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		scheduleController:   scheduleController,
		attendanceController: attendanceController,
		budgetController:     budgetController,
		plannerController:    plannerController,
		groupController:      groupController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Schedule routes (require authentication)
		if r.scheduleController != nil && r.authMiddleware != nil {
			schedule := v1.Group("/schedule")
			schedule.Use(r.authMiddleware.Authenticate())
			{
				schedule.GET("", r.scheduleController.ListSchedule)
				schedule.GET("/stats", r.scheduleController.GetWeeklyStats)
				schedule.POST("/sessions", r.scheduleController.CreateSession)
				schedule.PUT("/sessions/:id", r.scheduleController.UpdateSession)
				schedule.DELETE("/sessions/:id", r.scheduleController.DeleteSession)
				schedule.POST("/sessions/:id/attendance", r.scheduleController.MarkAttendance)
			}
		}

		// Attendance routes (require authentication)
		if r.attendanceController != nil && r.authMiddleware != nil {
			attendance := v1.Group("/attendance")
			attendance.Use(r.authMiddleware.Authenticate())
			{
				attendance.GET("/calendar", r.attendanceController.GetCalendar)
				attendance.GET("/stats", r.attendanceController.GetSubjectStats)
				attendance.GET("/records", r.attendanceController.ListRecords)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budget := v1.Group("/budget")
			budget.Use(r.authMiddleware.Authenticate())
			{
				budget.GET("/transactions", r.budgetController.ListTransactions)
				budget.POST("/transactions", r.budgetController.CreateTransaction)
				budget.DELETE("/transactions/:id", r.budgetController.DeleteTransaction)
				budget.GET("/limits", r.budgetController.ListLimits)
				budget.PUT("/limits", r.budgetController.SetLimit)
				budget.DELETE("/limits/:category", r.budgetController.DeleteLimit)
				budget.GET("/overview", r.budgetController.GetOverview)
			}
		}

		// Planner routes (require authentication)
		if r.plannerController != nil && r.authMiddleware != nil {
			planner := v1.Group("/planner")
			planner.Use(r.authMiddleware.Authenticate())
			{
				planner.GET("/plans", r.plannerController.ListPlans)
				planner.POST("/plans", r.plannerController.GeneratePlan)
				planner.DELETE("/plans/:id", r.plannerController.DeletePlan)
			}
		}

		// Study group routes (require authentication)
		if r.groupController != nil && r.authMiddleware != nil {
			groups := v1.Group("/groups")
			groups.Use(r.authMiddleware.Authenticate())
			{
				groups.GET("", r.groupController.ListGroups)
				groups.POST("", r.groupController.CreateGroup)
				groups.POST("/:id/join", r.groupController.JoinGroup)
				groups.POST("/:id/leave", r.groupController.LeaveGroup)
			}
		}
	}
}

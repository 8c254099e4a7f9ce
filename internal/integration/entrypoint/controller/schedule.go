// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/usecase/schedule"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/entrypoint/dto"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
)

// ScheduleController handles class schedule endpoints.
type ScheduleController struct {
	createSessionUseCase  *schedule.CreateSessionUseCase
	listScheduleUseCase   *schedule.ListScheduleUseCase
	updateSessionUseCase  *schedule.UpdateSessionUseCase
	deleteSessionUseCase  *schedule.DeleteSessionUseCase
	markAttendanceUseCase *schedule.MarkAttendanceUseCase
	weeklyStatsUseCase    *schedule.GetWeeklyStatsUseCase
}

// NewScheduleController creates a new schedule controller instance.
func NewScheduleController(
	createSessionUseCase *schedule.CreateSessionUseCase,
	listScheduleUseCase *schedule.ListScheduleUseCase,
	updateSessionUseCase *schedule.UpdateSessionUseCase,
	deleteSessionUseCase *schedule.DeleteSessionUseCase,
	markAttendanceUseCase *schedule.MarkAttendanceUseCase,
	weeklyStatsUseCase *schedule.GetWeeklyStatsUseCase,
) *ScheduleController {
	return &ScheduleController{
		createSessionUseCase:  createSessionUseCase,
		listScheduleUseCase:   listScheduleUseCase,
		updateSessionUseCase:  updateSessionUseCase,
		deleteSessionUseCase:  deleteSessionUseCase,
		markAttendanceUseCase: markAttendanceUseCase,
		weeklyStatsUseCase:    weeklyStatsUseCase,
	}
}

// CreateSession handles POST /schedule/sessions requests.
func (c *ScheduleController) CreateSession(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := schedule.CreateSessionInput{
		UserID:       userID,
		Subject:      req.Subject,
		Room:         req.Room,
		DayOfWeek:    req.DayOfWeek,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Color:        req.Color,
		NotifyBefore: req.NotifyBefore,
	}

	output, err := c.createSessionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(output.Session))
}

// ListSchedule handles GET /schedule requests.
func (c *ScheduleController) ListSchedule(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listScheduleUseCase.Execute(ctx.Request.Context(), schedule.ListScheduleInput{
		UserID: userID,
	})
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyScheduleResponse(output.Schedule))
}

// GetWeeklyStats handles GET /schedule/stats requests.
func (c *ScheduleController) GetWeeklyStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.weeklyStatsUseCase.Execute(ctx.Request.Context(), schedule.GetWeeklyStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeeklyStatsResponse(output.Stats, output.Upcoming))
}

// UpdateSession handles PUT /schedule/sessions/:id requests.
func (c *ScheduleController) UpdateSession(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := schedule.UpdateSessionInput{
		SessionID:    sessionID,
		UserID:       userID,
		Subject:      req.Subject,
		Room:         req.Room,
		DayOfWeek:    req.DayOfWeek,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Color:        req.Color,
		NotifyBefore: req.NotifyBefore,
	}

	output, err := c.updateSessionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// DeleteSession handles DELETE /schedule/sessions/:id requests.
func (c *ScheduleController) DeleteSession(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.deleteSessionUseCase.Execute(ctx.Request.Context(), schedule.DeleteSessionInput{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// MarkAttendance handles POST /schedule/sessions/:id/attendance requests.
func (c *ScheduleController) MarkAttendance(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.markAttendanceUseCase.Execute(ctx.Request.Context(), schedule.MarkAttendanceInput{
		SessionID: sessionID,
		UserID:    userID,
		Status:    req.Status,
	})
	if err != nil {
		c.handleScheduleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// handleScheduleError handles schedule errors and returns appropriate HTTP responses.
func (c *ScheduleController) handleScheduleError(ctx *gin.Context, err error) {
	var scheduleErr *domainerror.ScheduleError
	if errors.As(err, &scheduleErr) {
		ctx.JSON(c.getStatusCodeForScheduleError(scheduleErr.Code), dto.ErrorResponse{
			Error: scheduleErr.Message,
			Code:  string(scheduleErr.Code),
		})
		return
	}

	var attendanceErr *domainerror.AttendanceError
	if errors.As(err, &attendanceErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: attendanceErr.Message,
			Code:  string(attendanceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForScheduleError maps schedule error codes to HTTP status codes.
func (c *ScheduleController) getStatusCodeForScheduleError(code domainerror.ScheduleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedSession:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// respondUnauthorized writes the standard missing-authentication response.
func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondInvalidBody writes the standard invalid-request-body response.
func respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeMissingFields),
	})
}

// respondInvalidID writes the standard invalid-path-parameter response.
func respondInvalidID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid ID format",
		Code:  string(domainerror.ErrCodeMissingFields),
	})
}

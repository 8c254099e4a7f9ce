// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studysync/backend/internal/application/usecase/attendance"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/entrypoint/dto"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
)

// AttendanceController handles attendance calendar and stats endpoints.
type AttendanceController struct {
	getCalendarUseCase     *attendance.GetCalendarUseCase
	getSubjectStatsUseCase *attendance.GetSubjectStatsUseCase
	listRecordsUseCase     *attendance.ListRecordsUseCase
}

// NewAttendanceController creates a new attendance controller instance.
func NewAttendanceController(
	getCalendarUseCase *attendance.GetCalendarUseCase,
	getSubjectStatsUseCase *attendance.GetSubjectStatsUseCase,
	listRecordsUseCase *attendance.ListRecordsUseCase,
) *AttendanceController {
	return &AttendanceController{
		getCalendarUseCase:     getCalendarUseCase,
		getSubjectStatsUseCase: getSubjectStatsUseCase,
		listRecordsUseCase:     listRecordsUseCase,
	}
}

// GetCalendar handles GET /attendance/calendar requests.
// Query params: year, month. When absent the use case fills in the
// current month.
func (c *AttendanceController) GetCalendar(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var year, month int

	if yearParam := ctx.Query("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			respondInvalidQuery(ctx, "Invalid year parameter")
			return
		}
		year = parsed
	}
	if monthParam := ctx.Query("month"); monthParam != "" {
		parsed, err := strconv.Atoi(monthParam)
		if err != nil {
			respondInvalidQuery(ctx, "Invalid month parameter")
			return
		}
		month = parsed
	}

	output, err := c.getCalendarUseCase.Execute(ctx.Request.Context(), attendance.GetCalendarInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleAttendanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output.Year, output.Month, output.Cells))
}

// GetSubjectStats handles GET /attendance/stats requests.
func (c *AttendanceController) GetSubjectStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getSubjectStatsUseCase.Execute(ctx.Request.Context(), attendance.GetSubjectStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAttendanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAttendanceStatsResponse(output.BySubject, output.OverallRate))
}

// ListRecords handles GET /attendance/records requests.
// Query params: start_date, end_date, subject, search (all optional).
func (c *AttendanceController) ListRecords(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := attendance.ListRecordsInput{
		UserID:  userID,
		Subject: ctx.Query("subject"),
		Search:  ctx.Query("search"),
	}
	if startDate := ctx.Query("start_date"); startDate != "" {
		input.StartDate = &startDate
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		input.EndDate = &endDate
	}

	output, err := c.listRecordsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAttendanceError(ctx, err)
		return
	}

	sessions := make([]dto.SessionResponse, len(output.Sessions))
	for i, session := range output.Sessions {
		sessions[i] = dto.ToSessionResponse(session)
	}

	ctx.JSON(http.StatusOK, gin.H{"records": sessions})
}

// handleAttendanceError handles attendance errors and returns appropriate HTTP responses.
func (c *AttendanceController) handleAttendanceError(ctx *gin.Context, err error) {
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

// respondInvalidQuery writes the standard invalid-query-parameter response.
func respondInvalidQuery(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeMissingFields),
	})
}

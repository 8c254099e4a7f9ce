// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/usecase/planner"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/entrypoint/dto"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
)

// PlannerController handles AI study planner endpoints.
type PlannerController struct {
	generatePlanUseCase *planner.GeneratePlanUseCase
	listPlansUseCase    *planner.ListPlansUseCase
	deletePlanUseCase   *planner.DeletePlanUseCase
}

// NewPlannerController creates a new planner controller instance.
func NewPlannerController(
	generatePlanUseCase *planner.GeneratePlanUseCase,
	listPlansUseCase *planner.ListPlansUseCase,
	deletePlanUseCase *planner.DeletePlanUseCase,
) *PlannerController {
	return &PlannerController{
		generatePlanUseCase: generatePlanUseCase,
		listPlansUseCase:    listPlansUseCase,
		deletePlanUseCase:   deletePlanUseCase,
	}
}

// GeneratePlan handles POST /planner/plans requests.
func (c *PlannerController) GeneratePlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.GeneratePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.generatePlanUseCase.Execute(ctx.Request.Context(), planner.GeneratePlanInput{
		UserID:        userID,
		Subjects:      req.Subjects,
		HoursPerDay:   req.HoursPerDay,
		FocusAreas:    req.FocusAreas,
		UpcomingExams: req.UpcomingExams,
	})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	if output.Error != nil {
		// AI failure: report the classified error so clients can retry
		ctx.JSON(http.StatusBadGateway, dto.GeneratePlanResponse{
			Error: dto.ToPlanErrorResponse(output.Error),
		})
		return
	}

	plan := dto.ToPlanResponse(output.Plan)
	ctx.JSON(http.StatusCreated, dto.GeneratePlanResponse{Plan: &plan})
}

// ListPlans handles GET /planner/plans requests.
func (c *PlannerController) ListPlans(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listPlansUseCase.Execute(ctx.Request.Context(), planner.ListPlansInput{
		UserID: userID,
	})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	plans := make([]dto.PlanResponse, len(output.Plans))
	for i, plan := range output.Plans {
		plans[i] = dto.ToPlanResponse(plan)
	}

	ctx.JSON(http.StatusOK, dto.PlanListResponse{Plans: plans})
}

// DeletePlan handles DELETE /planner/plans/:id requests.
func (c *PlannerController) DeletePlan(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.deletePlanUseCase.Execute(ctx.Request.Context(), planner.DeletePlanInput{
		PlanID: planID,
		UserID: userID,
	})
	if err != nil {
		c.handlePlannerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handlePlannerError handles planner errors and returns appropriate HTTP responses.
func (c *PlannerController) handlePlannerError(ctx *gin.Context, err error) {
	var plannerErr *domainerror.PlannerError
	if errors.As(err, &plannerErr) {
		ctx.JSON(c.getStatusCodeForPlannerError(plannerErr.Code), dto.ErrorResponse{
			Error: plannerErr.Message,
			Code:  string(plannerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPlannerError maps planner error codes to HTTP status codes.
func (c *PlannerController) getStatusCodeForPlannerError(code domainerror.PlannerErrorCode) int {
	switch code {
	case domainerror.ErrCodePlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePlannerUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

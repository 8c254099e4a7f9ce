// Package planner contains AI study-planner use cases.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
)

// GeneratePlanInput represents the input for study plan generation.
type GeneratePlanInput struct {
	UserID        uuid.UUID
	Subjects      []string
	HoursPerDay   int
	FocusAreas    string
	UpcomingExams string
}

// GeneratePlanOutput represents the output of study plan generation.
type GeneratePlanOutput struct {
	Plan  *entity.StudyPlan
	Error *GenerationError // Set instead of Plan when the AI call fails
}

// GeneratePlanUseCase handles study plan generation logic.
type GeneratePlanUseCase struct {
	plannerService adapter.StudyPlannerService
	planRepo       adapter.PlanRepository
}

// NewGeneratePlanUseCase creates a new GeneratePlanUseCase instance.
func NewGeneratePlanUseCase(
	plannerService adapter.StudyPlannerService,
	planRepo adapter.PlanRepository,
) *GeneratePlanUseCase {
	return &GeneratePlanUseCase{
		plannerService: plannerService,
		planRepo:       planRepo,
	}
}

// Execute generates a study plan via the AI service and saves it. AI failures
// are classified and returned in the output rather than as a Go error, so
// callers can surface the retryable flag.
func (uc *GeneratePlanUseCase) Execute(ctx context.Context, input GeneratePlanInput) (*GeneratePlanOutput, error) {
	subjects := make([]string, 0, len(input.Subjects))
	for _, s := range input.Subjects {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			subjects = append(subjects, trimmed)
		}
	}
	if len(subjects) == 0 {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeNoSubjects,
			"at least one subject is required",
			domainerror.ErrNoSubjects,
		)
	}

	if !uc.plannerService.IsAvailable() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodePlannerUnavailable,
			"AI study planner is not available",
			domainerror.ErrPlannerUnavailable,
		)
	}

	result, err := uc.plannerService.GeneratePlan(ctx, &adapter.StudyPlanRequest{
		Subjects:      subjects,
		HoursPerDay:   input.HoursPerDay,
		FocusAreas:    input.FocusAreas,
		UpcomingExams: input.UpcomingExams,
	})
	if err != nil {
		generationErr := classifyError(err)
		slog.Warn("Study plan generation failed",
			"code", generationErr.Code,
			"retryable", generationErr.Retryable,
			"userID", input.UserID,
		)
		return &GeneratePlanOutput{Error: generationErr}, nil
	}

	plan := entity.NewStudyPlan(input.UserID, result.Title, strings.Join(subjects, ", "), result.Content)

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save study plan: %w", err)
	}

	return &GeneratePlanOutput{Plan: plan}, nil
}

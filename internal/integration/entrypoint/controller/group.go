// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/usecase/group"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/entrypoint/dto"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
)

// GroupController handles study group endpoints.
type GroupController struct {
	createGroupUseCase *group.CreateGroupUseCase
	listGroupsUseCase  *group.ListGroupsUseCase
	joinGroupUseCase   *group.JoinGroupUseCase
	leaveGroupUseCase  *group.LeaveGroupUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createGroupUseCase *group.CreateGroupUseCase,
	listGroupsUseCase *group.ListGroupsUseCase,
	joinGroupUseCase *group.JoinGroupUseCase,
	leaveGroupUseCase *group.LeaveGroupUseCase,
) *GroupController {
	return &GroupController{
		createGroupUseCase: createGroupUseCase,
		listGroupsUseCase:  listGroupsUseCase,
		joinGroupUseCase:   joinGroupUseCase,
		leaveGroupUseCase:  leaveGroupUseCase,
	}
}

// CreateGroup handles POST /groups requests.
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.createGroupUseCase.Execute(ctx.Request.Context(), group.CreateGroupInput{
		OwnerID:     userID,
		Name:        req.Name,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(output.Group, 1, true))
}

// ListGroups handles GET /groups requests.
func (c *GroupController) ListGroups(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listGroupsUseCase.Execute(ctx.Request.Context(), group.ListGroupsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	groups := make([]dto.GroupResponse, len(output.Groups))
	for i, g := range output.Groups {
		groups[i] = dto.ToGroupResponse(g.Group, g.MemberCount, g.IsMember)
	}

	ctx.JSON(http.StatusOK, dto.GroupListResponse{Groups: groups})
}

// JoinGroup handles POST /groups/:id/join requests.
func (c *GroupController) JoinGroup(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.joinGroupUseCase.Execute(ctx.Request.Context(), group.JoinGroupInput{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGroupResponse(output.Group, output.MemberCount, true))
}

// LeaveGroup handles POST /groups/:id/leave requests.
func (c *GroupController) LeaveGroup(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.leaveGroupUseCase.Execute(ctx.Request.Context(), group.LeaveGroupInput{
		GroupID: groupID,
		UserID:  userID,
	})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleGroupError handles group errors and returns appropriate HTTP responses.
func (c *GroupController) handleGroupError(ctx *gin.Context, err error) {
	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		ctx.JSON(c.getStatusCodeForGroupError(groupErr.Code), dto.ErrorResponse{
			Error: groupErr.Message,
			Code:  string(groupErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGroupError maps group error codes to HTTP status codes.
func (c *GroupController) getStatusCodeForGroupError(code domainerror.GroupErrorCode) int {
	switch code {
	case domainerror.ErrCodeGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAlreadyGroupMember:
		return http.StatusConflict
	case domainerror.ErrCodeNotGroupMember, domainerror.ErrCodeOwnerCannotLeave:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

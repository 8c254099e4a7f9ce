// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/domain/entity"
)

// GroupRepository defines the interface for study group persistence operations.
type GroupRepository interface {
	// CreateGroup creates a new study group in the database.
	CreateGroup(ctx context.Context, group *entity.StudyGroup) error

	// FindGroupByID retrieves a study group by its ID.
	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.StudyGroup, error)

	// ListGroups retrieves all study groups with member counts, flagging the
	// ones the given user belongs to.
	ListGroups(ctx context.Context, userID uuid.UUID) ([]*entity.StudyGroupWithMembers, error)

	// CreateMember adds a user to a study group.
	CreateMember(ctx context.Context, member *entity.GroupMember) error

	// DeleteMember removes a user from a study group.
	DeleteMember(ctx context.Context, groupID, userID uuid.UUID) error

	// IsMember checks if a user belongs to a study group.
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)

	// CountMembers counts the members of a study group.
	CountMembers(ctx context.Context, groupID uuid.UUID) (int, error)
}

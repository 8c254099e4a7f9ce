// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studysync/backend/internal/application/adapter"
	"github.com/studysync/backend/internal/domain/entity"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/persistence/model"
)

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new study group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// CreateGroup creates a new study group in the database.
func (r *groupRepository) CreateGroup(ctx context.Context, group *entity.StudyGroup) error {
	groupModel := model.StudyGroupFromEntity(group)
	result := r.db.WithContext(ctx).Create(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindGroupByID retrieves a study group by its ID.
func (r *groupRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.StudyGroup, error) {
	var groupModel model.StudyGroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// ListGroups retrieves all study groups with member counts, flagging the
// ones the given user belongs to.
func (r *groupRepository) ListGroups(ctx context.Context, userID uuid.UUID) ([]*entity.StudyGroupWithMembers, error) {
	var groupModels []model.StudyGroupModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	type memberCount struct {
		GroupID uuid.UUID
		Count   int
	}
	var counts []memberCount
	if err := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Select("group_id, COUNT(*) as count").
		Group("group_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	countByGroup := make(map[uuid.UUID]int, len(counts))
	for _, c := range counts {
		countByGroup[c.GroupID] = c.Count
	}

	var memberships []model.GroupMemberModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	memberOf := make(map[uuid.UUID]bool, len(memberships))
	for _, m := range memberships {
		memberOf[m.GroupID] = true
	}

	groups := make([]*entity.StudyGroupWithMembers, len(groupModels))
	for i, gm := range groupModels {
		groups[i] = &entity.StudyGroupWithMembers{
			Group:       gm.ToEntity(),
			MemberCount: countByGroup[gm.ID],
			IsMember:    memberOf[gm.ID],
		}
	}
	return groups, nil
}

// CreateMember adds a user to a study group.
func (r *groupRepository) CreateMember(ctx context.Context, member *entity.GroupMember) error {
	memberModel := model.GroupMemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteMember removes a user from a study group.
func (r *groupRepository) DeleteMember(ctx context.Context, groupID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMemberModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// IsMember checks if a user belongs to a study group.
func (r *groupRepository) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CountMembers counts the members of a study group.
func (r *groupRepository) CountMembers(ctx context.Context, groupID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ?", groupID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

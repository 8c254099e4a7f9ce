// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/studysync/backend/internal/domain/entity"
)

// StudyGroupModel represents the study_groups table in the database.
type StudyGroupModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Subject     string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName returns the table name for the StudyGroupModel.
func (StudyGroupModel) TableName() string {
	return "study_groups"
}

// ToEntity converts a StudyGroupModel to a domain StudyGroup entity.
func (m *StudyGroupModel) ToEntity() *entity.StudyGroup {
	return &entity.StudyGroup{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Subject:     m.Subject,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// StudyGroupFromEntity creates a StudyGroupModel from a domain StudyGroup entity.
func StudyGroupFromEntity(group *entity.StudyGroup) *StudyGroupModel {
	return &StudyGroupModel{
		ID:          group.ID,
		OwnerID:     group.OwnerID,
		Name:        group.Name,
		Subject:     group.Subject,
		Description: group.Description,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// GroupMemberModel represents the group_members table in the database.
type GroupMemberModel struct {
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoinedAt time.Time `gorm:"not null"`

	Group *StudyGroupModel `gorm:"foreignKey:GroupID;references:ID"`
	User  *UserModel       `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the GroupMemberModel.
func (GroupMemberModel) TableName() string {
	return "group_members"
}

// ToEntity converts a GroupMemberModel to a domain GroupMember entity.
func (m *GroupMemberModel) ToEntity() *entity.GroupMember {
	return &entity.GroupMember{
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		JoinedAt: m.JoinedAt,
	}
}

// GroupMemberFromEntity creates a GroupMemberModel from a domain GroupMember entity.
func GroupMemberFromEntity(member *entity.GroupMember) *GroupMemberModel {
	return &GroupMemberModel{
		GroupID:  member.GroupID,
		UserID:   member.UserID,
		JoinedAt: member.JoinedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studysync/backend/internal/domain/entity"
)

// ClassSessionModel represents the class_sessions table in the database.
type ClassSessionModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Subject      string         `gorm:"type:varchar(255);not null"`
	Room         string         `gorm:"type:varchar(100)"`
	DayOfWeek    int            `gorm:"not null;index"`
	Date         *time.Time     `gorm:"type:date;index"`
	StartTime    string         `gorm:"type:varchar(5);not null"`
	EndTime      string         `gorm:"type:varchar(5);not null"`
	Attendance   string         `gorm:"type:varchar(10);not null;default:'pending'"`
	Color        string         `gorm:"type:varchar(20)"`
	NotifyBefore int            `gorm:"default:0"`
	CreatedAt    time.Time      `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"` // Soft-delete support

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ClassSessionModel.
func (ClassSessionModel) TableName() string {
	return "class_sessions"
}

// ToEntity converts a ClassSessionModel to a domain ClassSession entity.
func (m *ClassSessionModel) ToEntity() *entity.ClassSession {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var date *entity.CalendarDate
	if m.Date != nil {
		d := entity.CalendarDateOf(*m.Date)
		date = &d
	}

	startTime, _ := entity.ParseTimeOfDay(m.StartTime)
	endTime, _ := entity.ParseTimeOfDay(m.EndTime)

	return &entity.ClassSession{
		ID:           m.ID,
		UserID:       m.UserID,
		Subject:      m.Subject,
		Room:         m.Room,
		DayOfWeek:    entity.Weekday(m.DayOfWeek),
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Attendance:   entity.AttendanceStatus(m.Attendance),
		Color:        m.Color,
		NotifyBefore: m.NotifyBefore,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// ClassSessionFromEntity creates a ClassSessionModel from a domain ClassSession entity.
func ClassSessionFromEntity(session *entity.ClassSession) *ClassSessionModel {
	var date *time.Time
	if session.Date != nil {
		d := session.Date.Time()
		date = &d
	}

	return &ClassSessionModel{
		ID:           session.ID,
		UserID:       session.UserID,
		Subject:      session.Subject,
		Room:         session.Room,
		DayOfWeek:    int(session.DayOfWeek),
		Date:         date,
		StartTime:    session.StartTime.String(),
		EndTime:      session.EndTime.String(),
		Attendance:   string(session.Attendance),
		Color:        session.Color,
		NotifyBefore: session.NotifyBefore,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a student account in the StudySync system.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	Institution        string
	Program            string
	EmailNotifications bool
	ClassReminders     bool
	BudgetAlerts       bool
	TermsAcceptedAt    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		EmailNotifications: true,
		ClassReminders:     true,
		BudgetAlerts:       true,
		TermsAcceptedAt:    termsAcceptedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User is an account holder. EmailNotifications is the global e-mail switch and
// BudgetAlerts narrows it to budget alert e-mails.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	EmailNotifications bool
	BudgetAlerts       bool
	TermsAcceptedAt    time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates an account that accepted the terms at now. Alert e-mails start enabled.
func NewUser(email, name, passwordHash string, now time.Time) *User {
	now = now.UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              NormalizeEmail(email),
		Name:               strings.TrimSpace(name),
		PasswordHash:       passwordHash,
		EmailNotifications: true,
		BudgetAlerts:       true,
		TermsAcceptedAt:    now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// WantsBudgetAlertEmails reports whether the user opted in to budget alert e-mails.
func (u *User) WantsBudgetAlertEmails() bool {
	return u.EmailNotifications && u.BudgetAlerts
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks the address shape only; deliverability is never probed.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword requires MinPasswordLength characters with at least one letter and one digit.
func IsStrongPassword(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

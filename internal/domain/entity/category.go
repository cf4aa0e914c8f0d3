// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// ExpenseCategories is the catalog offered to users when recording expenses and budgets.
// Categories remain free text; the catalog is a convention, not a constraint.
var ExpenseCategories = []string{
	"Food",
	"Transportation",
	"Housing",
	"Utilities",
	"Entertainment",
	"Healthcare",
	"Shopping",
	"Education",
	"Personal",
	"Travel",
	"Other",
}

// IncomeCategories is the catalog offered to users when recording incomes.
var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investments",
	"Gifts",
	"Other",
}

// DefaultExpenseCategory is used when no better category can be determined.
const DefaultExpenseCategory = "Other"

// MatchExpenseCategory returns the catalog entry equal to name, ignoring case and surrounding spaces.
func MatchExpenseCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range ExpenseCategories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

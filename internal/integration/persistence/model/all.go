// Package model defines database models for persistence layer.
package model

// All returns every model managed by AutoMigrate, parents before children.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&BudgetModel{},
		&ExpenseModel{},
		&IncomeModel{},
		&SimulationModel{},
		&SimulatedExpenseModel{},
		&NotificationModel{},
	}
}

// Package notification contains notification-related use cases.
package notification

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	"github.com/budgetwise/backend/internal/domain/valueobject"
)

// FormatAlertMessage renders the user-facing text of a budget alert.
func FormatAlertMessage(alertType entity.NotificationType, usage valueobject.BudgetUsage) string {
	period := string(usage.Budget.Period)
	category := usage.Budget.Category

	if alertType == entity.NotificationTypeBudgetExceeded {
		return fmt.Sprintf(
			"Your %s budget for %s has been exceeded by %s. You've spent %s of your %s limit.",
			period, category,
			money(usage.Spent.Sub(usage.Limit)),
			money(usage.Spent),
			money(usage.Limit),
		)
	}

	return fmt.Sprintf(
		"You've used %s%% of your %s budget for %s. You've spent %s of your %s limit (%s remaining).",
		usage.RawPercentage.Round(0).String(), period, category,
		money(usage.Spent),
		money(usage.Limit),
		money(usage.Remaining),
	)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

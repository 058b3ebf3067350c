package dto

import (
	"time"

	"bankrules/internal/models"
)

// TransactionFilters contains filtering options for transaction queries
// Dates are inclusive ISO-8601 booking date bounds
type TransactionFilters struct {
	AccountID string `query:"accountId"`
	StartDate string `query:"startDate" validate:"omitempty,booking_date"`
	EndDate   string `query:"endDate" validate:"omitempty,booking_date"`
	Category  string `query:"category"`
	Refresh   bool   `query:"refresh"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	FetchedAt    time.Time            `json:"fetchedAt"`
	FromCache    bool                 `json:"fromCache"`
}

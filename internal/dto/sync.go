package dto

import "time"

// SyncRequest represents the request to pull transactions from the bank data provider
type SyncRequest struct {
	AccountID string `json:"accountId" validate:"omitempty,max=64"`
	DateFrom  string `json:"dateFrom" validate:"omitempty,booking_date"`
	DateTo    string `json:"dateTo" validate:"omitempty,booking_date"`
}

// SyncResult summarizes a completed provider sync
type SyncResult struct {
	Fetched        int       `json:"fetched"`
	Created        int       `json:"created"`
	Skipped        int       `json:"skipped"`
	Classified     int       `json:"classified"`
	BalancesSynced int       `json:"balancesSynced"`
	CompletedAt    time.Time `json:"completedAt"`
}

// StoreCredentialsRequest represents the request to store provider credentials
type StoreCredentialsRequest struct {
	SecretID  string `json:"secretId" validate:"required,min=1,max=255"`
	SecretKey string `json:"secretKey" validate:"required,min=1,max=255"`
}

// StoreCredentialsResponse represents the response after storing credentials
type StoreCredentialsResponse struct {
	Message string `json:"message"`
}

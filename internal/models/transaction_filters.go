package models

import "github.com/google/uuid"

// TransactionFilter restricts a cached-snapshot read without refetching.
// Zero-valued fields are ignored; booking dates compare lexically.
type TransactionFilter struct {
	IDs       []uuid.UUID
	AccountID string
	StartDate string
	EndDate   string
	Category  string
}

// Predicate compiles the filter into a match function over one transaction.
func (f TransactionFilter) Predicate() func(Transaction) bool {
	var idSet map[uuid.UUID]struct{}
	if len(f.IDs) > 0 {
		idSet = make(map[uuid.UUID]struct{}, len(f.IDs))
		for _, id := range f.IDs {
			idSet[id] = struct{}{}
		}
	}

	return func(t Transaction) bool {
		if idSet != nil {
			if _, ok := idSet[t.ID]; !ok {
				return false
			}
		}
		if f.AccountID != "" && t.AccountID != f.AccountID {
			return false
		}
		if f.StartDate != "" && t.BookingDate < f.StartDate {
			return false
		}
		if f.EndDate != "" && t.BookingDate > f.EndDate {
			return false
		}
		if f.Category != "" && t.Category != f.Category {
			return false
		}
		return true
	}
}

// IsZero reports whether the filter matches everything.
func (f TransactionFilter) IsZero() bool {
	return len(f.IDs) == 0 && f.AccountID == "" && f.StartDate == "" && f.EndDate == "" && f.Category == ""
}

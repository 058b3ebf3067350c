package handlers

import (
	"net/http"

	"bankrules/internal/dto"
	"bankrules/internal/errors"
	"bankrules/internal/models"
	"bankrules/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction read requests served from the
// per-user cache
type TransactionHandler struct {
	cache services.TransactionCacheServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(cache services.TransactionCacheServiceInterface) *TransactionHandler {
	return &TransactionHandler{cache: cache}
}

// ListTransactions returns the user's transactions from the cache
// @Summary List transactions
// @Description Retrieve the user's transactions, served from a TTL cache; refresh=true bypasses the cache
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param accountId query string false "Filter by account ID"
// @Param startDate query string false "Inclusive booking date lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive booking date upper bound (YYYY-MM-DD)"
// @Param category query string false "Filter by category"
// @Param refresh query bool false "Bypass the cache and refetch"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with cache metadata"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid filter parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "TRANSACTION_002 - Transaction fetch failed"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var filters dto.TransactionFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid filter parameters"))
	}
	if err := c.Validate(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if filters.Refresh {
		if _, _, err := h.cache.Refresh(userID); err != nil {
			return SendError(c, errors.TransactionFetchFailed, errors.WithDetails(err.Error()))
		}
	}

	filter := models.TransactionFilter{
		AccountID: filters.AccountID,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Category:  filters.Category,
	}

	transactions, fetchedAt, fromCache, err := h.cache.GetFiltered(userID, filter)
	if err != nil {
		return SendError(c, errors.TransactionFetchFailed, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Total:        len(transactions),
		FetchedAt:    fetchedAt,
		FromCache:    fromCache,
	})
}

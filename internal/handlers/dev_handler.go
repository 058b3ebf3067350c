package handlers

import (
	"net/http"
	"time"

	"bankrules/internal/errors"
	"bankrules/internal/models"
	"bankrules/internal/repositories"
	"bankrules/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultGenerateCount = 100
	maxGenerateCount     = 1000
	defaultGenerateDays  = 30
	maxGenerateDays      = 365
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	cache           services.TransactionCacheServiceInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	cache services.TransactionCacheServiceInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		cache:           cache,
		generator:       services.NewTransactionGenerator(),
	}
}

// GenerateTestData seeds realistic transaction data for the authenticated user
//
// Method: POST /api/dev/generate-test-data
// Environment: Development only
//
// Query parameters:
//   - count: number of transactions to generate (default: 100, max: 1000)
//   - days: days of history to spread them over (default: 30, max: 365)
//   - accountId: account identifier to stamp on the transactions
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntParam(c, "count", defaultGenerateCount)
	if count < 1 || count > maxGenerateCount {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("count must be between 1 and 1000"))
	}

	days := getIntParam(c, "days", defaultGenerateDays)
	if days < 1 || days > maxGenerateDays {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("days must be between 1 and 365"))
	}

	accountID := c.QueryParam("accountId")
	if accountID == "" {
		accountID = "demo-account"
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	generated := h.generator.GenerateTransactions(userID, accountID, startDate, endDate, count)

	batch := make([]models.Transaction, 0, len(generated))
	for _, txn := range generated {
		batch = append(batch, *txn)
	}

	if err := h.transactionRepo.CreateBatch(batch); err != nil {
		return SendSystemError(c, err)
	}

	h.cache.Invalidate(userID)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Test data generated",
		Meta: map[string]int{
			"transactions_created": len(batch),
		},
	})
}

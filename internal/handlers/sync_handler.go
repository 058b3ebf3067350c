package handlers

import (
	stderrors "errors"
	"net/http"

	"bankrules/internal/dto"
	"bankrules/internal/errors"
	"bankrules/internal/repositories"
	"bankrules/internal/services"

	"github.com/labstack/echo/v4"
)

// SyncHandler handles provider sync and credential management requests
type SyncHandler struct {
	syncService services.SyncServiceInterface
	credentials services.CredentialServiceInterface
	balanceRepo repositories.BalanceRepositoryInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(
	syncService services.SyncServiceInterface,
	credentials services.CredentialServiceInterface,
	balanceRepo repositories.BalanceRepositoryInterface,
) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		credentials: credentials,
		balanceRepo: balanceRepo,
	}
}

// TriggerSync pulls booked transactions from the bank data provider
// @Summary Trigger sync
// @Description Fetch, deduplicate, classify and store the user's provider transactions
// @Tags Sync
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SyncRequest true "Sync window"
// @Success 200 {object} dto.SyncResult "Sync summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 422 {object} errors.ErrorResponse "SYNC_001 - No credentials stored"
// @Failure 502 {object} errors.ErrorResponse "SYNC_002 - Provider request failed"
// @Failure 503 {object} errors.ErrorResponse "SYNC_003 - Provider rate limit hit"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /sync [post]
func (h *SyncHandler) TriggerSync(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SyncRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.syncService.SyncTransactions(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrCredentialsNotFound):
			return SendError(c, errors.SyncNoCredentials)
		case stderrors.Is(err, services.ErrProviderThrottled):
			return SendError(c, errors.SyncProviderThrottled)
		case stderrors.Is(err, services.ErrProviderUnauthorized),
			stderrors.Is(err, services.ErrCircuitBreakerOpen):
			return SendError(c, errors.SyncProviderFailed, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, result)
}

// ListBalances returns the latest stored balances for the user's accounts
// @Summary List balances
// @Description List the per-account balance records captured by the last sync
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.AccountBalance "Stored balances"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /balances [get]
func (h *SyncHandler) ListBalances(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	balances, err := h.balanceRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, balances)
}

// StoreCredentials stores encrypted provider credentials for the user
// @Summary Store credentials
// @Description Store the user's bank data provider secret id and key, encrypted at rest
// @Tags Sync
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.StoreCredentialsRequest true "Provider credentials"
// @Success 200 {object} dto.StoreCredentialsResponse "Credentials stored"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Missing secret id or key"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /credentials [put]
func (h *SyncHandler) StoreCredentials(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.StoreCredentialsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if err := h.credentials.StoreCredentials(userID, req.SecretID, req.SecretKey); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.StoreCredentialsResponse{
		Message: "Credentials stored",
	})
}

// DeleteCredentials removes the user's stored provider credentials
// @Summary Delete credentials
// @Description Remove the user's stored bank data provider credentials
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 204 "Credentials deleted"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /credentials [delete]
func (h *SyncHandler) DeleteCredentials(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.credentials.DeleteCredentials(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

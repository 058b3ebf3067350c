package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bankrules/internal/dto"
	"bankrules/internal/models"
	"bankrules/internal/repositories/repository_mocks"
	"bankrules/internal/services"
	"bankrules/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SyncHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	echo            *echo.Echo
	mockSync        *service_mocks.MockSyncServiceInterface
	mockCredentials *service_mocks.MockCredentialServiceInterface
	mockBalances    *repository_mocks.MockBalanceRepositoryInterface
	handler         *SyncHandler
	userID          uuid.UUID
}

func TestSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(SyncHandlerTestSuite))
}

func (s *SyncHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockSync = service_mocks.NewMockSyncServiceInterface(s.ctrl)
	s.mockCredentials = service_mocks.NewMockCredentialServiceInterface(s.ctrl)
	s.mockBalances = repository_mocks.NewMockBalanceRepositoryInterface(s.ctrl)
	s.handler = NewSyncHandler(s.mockSync, s.mockCredentials, s.mockBalances)
	s.userID = uuid.New()
}

func (s *SyncHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SyncHandlerTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

// ========================================
// POST /api/sync Tests
// ========================================

func (s *SyncHandlerTestSuite) TestTriggerSync_Success() {
	result := &dto.SyncResult{
		Fetched:     12,
		Created:     9,
		Skipped:     3,
		Classified:  7,
		CompletedAt: time.Now(),
	}
	s.mockSync.EXPECT().
		SyncTransactions(gomock.Any(), s.userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *dto.SyncRequest) (*dto.SyncResult, error) {
			s.Equal("acc-001", req.AccountID)
			s.Equal("2025-03-01", req.DateFrom)
			return result, nil
		})

	body := `{"accountId": "acc-001", "dateFrom": "2025-03-01", "dateTo": "2025-03-31"}`
	c, rec := s.newContext(http.MethodPost, "/api/sync", body)
	s.NoError(s.handler.TriggerSync(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SyncResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(9, response.Created)
	s.Equal(3, response.Skipped)
}

func (s *SyncHandlerTestSuite) TestTriggerSync_NoCredentials() {
	s.mockSync.EXPECT().
		SyncTransactions(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, services.ErrCredentialsNotFound)

	c, rec := s.newContext(http.MethodPost, "/api/sync", `{}`)
	s.NoError(s.handler.TriggerSync(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYNC_001", response.Error.Code)
}

func (s *SyncHandlerTestSuite) TestTriggerSync_ProviderThrottled() {
	s.mockSync.EXPECT().
		SyncTransactions(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, services.ErrProviderThrottled)

	c, rec := s.newContext(http.MethodPost, "/api/sync", `{}`)
	s.NoError(s.handler.TriggerSync(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYNC_003", response.Error.Code)
}

func (s *SyncHandlerTestSuite) TestTriggerSync_CircuitBreakerOpen() {
	s.mockSync.EXPECT().
		SyncTransactions(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, services.ErrCircuitBreakerOpen)

	c, rec := s.newContext(http.MethodPost, "/api/sync", `{}`)
	s.NoError(s.handler.TriggerSync(c))
	s.Equal(http.StatusBadGateway, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYNC_002", response.Error.Code)
}

func (s *SyncHandlerTestSuite) TestTriggerSync_InvalidDateRejected() {
	c, rec := s.newContext(http.MethodPost, "/api/sync", `{"dateFrom": "March 1st"}`)
	s.NoError(s.handler.TriggerSync(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *SyncHandlerTestSuite) TestTriggerSync_Unauthorized() {
	req := httptest.NewRequest(http.MethodPost, "/api/sync", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.TriggerSync(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

// ========================================
// GET /api/balances Tests
// ========================================

func (s *SyncHandlerTestSuite) TestListBalances_Success() {
	s.mockBalances.EXPECT().
		GetByUserID(s.userID).
		Return([]models.AccountBalance{
			{ID: uuid.New(), UserID: s.userID, AccountID: "acc-001", BalanceType: "closingBooked", Currency: "EUR", ReferenceDate: "2025-03-14"},
			{ID: uuid.New(), UserID: s.userID, AccountID: "acc-001", BalanceType: "interimAvailable", Currency: "EUR", ReferenceDate: "2025-03-15"},
		}, nil)

	c, rec := s.newContext(http.MethodGet, "/api/balances", "")
	s.NoError(s.handler.ListBalances(c))
	s.Equal(http.StatusOK, rec.Code)

	var response []models.AccountBalance
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response, 2)
	s.Equal("closingBooked", response[0].BalanceType)
	s.Equal("interimAvailable", response[1].BalanceType)
}

func (s *SyncHandlerTestSuite) TestListBalances_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/balances", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.ListBalances(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

// ========================================
// PUT /api/credentials Tests
// ========================================

func (s *SyncHandlerTestSuite) TestStoreCredentials_Success() {
	s.mockCredentials.EXPECT().
		StoreCredentials(s.userID, "secret-id-123", "secret-key-456").
		Return(nil)

	body := `{"secretId": "secret-id-123", "secretKey": "secret-key-456"}`
	c, rec := s.newContext(http.MethodPut, "/api/credentials", body)
	s.NoError(s.handler.StoreCredentials(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.StoreCredentialsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Credentials stored", response.Message)
}

func (s *SyncHandlerTestSuite) TestStoreCredentials_MissingKeyRejected() {
	c, rec := s.newContext(http.MethodPut, "/api/credentials", `{"secretId": "secret-id-123"}`)
	s.NoError(s.handler.StoreCredentials(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

// ========================================
// DELETE /api/credentials Tests
// ========================================

func (s *SyncHandlerTestSuite) TestDeleteCredentials_Success() {
	s.mockCredentials.EXPECT().DeleteCredentials(s.userID).Return(nil)

	c, rec := s.newContext(http.MethodDelete, "/api/credentials", "")
	s.NoError(s.handler.DeleteCredentials(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

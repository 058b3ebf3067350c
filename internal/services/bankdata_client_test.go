package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bankrules/internal/config"
	"bankrules/internal/services"
	"bankrules/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type BankDataClientTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	logger     *service_mocks.MockEngineLoggerInterface
	server     *httptest.Server
	tokenCalls int64
	ctx        context.Context
}

func TestBankDataClientSuite(t *testing.T) {
	suite.Run(t, new(BankDataClientTestSuite))
}

func (s *BankDataClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	atomic.StoreInt64(&s.tokenCalls, 0)

	s.logger = service_mocks.NewMockEngineLoggerInterface(s.ctrl)
	s.logger.EXPECT().LogProviderRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.logger.EXPECT().LogCircuitBreakerStateChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	mux := http.NewServeMux()
	mux.HandleFunc("/token/new/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.tokenCalls, 1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access":         "test-access-token",
			"access_expires": 86400,
		})
	})
	mux.HandleFunc("/accounts/acct-1/transactions/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"transactions": map[string]interface{}{
				"booked": []map[string]interface{}{
					{
						"transactionId": "prov-txn-001",
						"bookingDate":   "2025-03-01",
						"transactionAmount": map[string]string{
							"amount":   "-42.50",
							"currency": "EUR",
						},
						"creditorName":                      "Albert Heijn",
						"remittanceInformationUnstructured": "Groceries",
					},
				},
			},
		})
	})
	mux.HandleFunc("/accounts/acct-1/balances/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-access-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"balances": []map[string]interface{}{
				{
					"balanceAmount": map[string]string{
						"amount":   "1024.50",
						"currency": "EUR",
					},
					"balanceType":   "interimAvailable",
					"referenceDate": "2025-03-15",
				},
				{
					"balanceAmount": map[string]string{
						"amount":   "998.13",
						"currency": "EUR",
					},
				},
			},
		})
	})
	s.server = httptest.NewServer(mux)
}

func (s *BankDataClientTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *BankDataClientTestSuite) newClient() services.BankDataClientInterface {
	cfg := &config.ProviderConfig{
		BaseURL:        s.server.URL,
		RequestTimeout: 5 * time.Second,
		MaxRetries:     0,
	}
	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	return services.NewBankDataClient(cfg, s.logger, breaker)
}

func (s *BankDataClientTestSuite) creds() services.ProviderCredentials {
	return services.ProviderCredentials{SecretID: "secret-id", SecretKey: "secret-key"}
}

func (s *BankDataClientTestSuite) TestFetchTransactions() {
	client := s.newClient()

	transactions, err := client.FetchTransactions(s.ctx, s.creds(), "acct-1", "2025-03-01", "2025-03-31")
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal("prov-txn-001", transactions[0].TransactionID)
	s.Equal("Albert Heijn", transactions[0].Counterparty)
	s.Equal("-42.50", transactions[0].Amount)
}

func (s *BankDataClientTestSuite) TestFetchBalances() {
	client := s.newClient()

	balances, err := client.FetchBalances(s.ctx, s.creds(), "acct-1")
	s.NoError(err)
	s.Require().Len(balances, 2)
	s.Equal("interimAvailable", balances[0].BalanceType)
	s.Equal("1024.50", balances[0].Amount)
	s.Equal("2025-03-15", balances[0].ReferenceDate)
	// Records without a type fall back to the provider default
	s.Equal("expected", balances[1].BalanceType)
	s.Equal("998.13", balances[1].Amount)
}

func (s *BankDataClientTestSuite) TestFetchTransactions_ReusesCachedToken() {
	client := s.newClient()

	_, err := client.FetchTransactions(s.ctx, s.creds(), "acct-1", "", "")
	s.NoError(err)
	_, err = client.FetchTransactions(s.ctx, s.creds(), "acct-1", "", "")
	s.NoError(err)

	s.Equal(int64(1), atomic.LoadInt64(&s.tokenCalls))
}

func (s *BankDataClientTestSuite) TestFetchTransactions_ConcurrentSyncsShareClient() {
	client := s.newClient()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.FetchTransactions(s.ctx, s.creds(), "acct-1", "", "")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.NoError(err)
	}
}

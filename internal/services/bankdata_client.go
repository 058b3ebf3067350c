package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"bankrules/internal/config"
)

var (
	ErrProviderThrottled    = errors.New("provider rate limit exceeded")
	ErrProviderUnauthorized = errors.New("provider rejected credentials")
)

// ProviderCredentials carries the decrypted secret pair used to obtain access
// tokens from the bank data provider
type ProviderCredentials struct {
	SecretID  string
	SecretKey string
}

// ProviderTransaction is one booked transaction as the provider reports it
type ProviderTransaction struct {
	TransactionID string
	BookingDate   string
	Amount        string
	Currency      string
	Counterparty  string
	Description   string
}

// ProviderBalance is one balance record as the provider reports it
type ProviderBalance struct {
	BalanceType   string
	Amount        string
	Currency      string
	ReferenceDate string
}

type providerTokenResponse struct {
	Access        string `json:"access"`
	AccessExpires int    `json:"access_expires"`
}

type providerAmount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type providerBookedTransaction struct {
	TransactionID  string         `json:"transactionId"`
	BookingDate    string         `json:"bookingDate"`
	Amount         providerAmount `json:"transactionAmount"`
	CreditorName   string         `json:"creditorName"`
	DebtorName     string         `json:"debtorName"`
	RemittanceInfo string         `json:"remittanceInformationUnstructured"`
}

type providerTransactionsResponse struct {
	Transactions struct {
		Booked []providerBookedTransaction `json:"booked"`
	} `json:"transactions"`
}

type providerBalanceRecord struct {
	BalanceAmount providerAmount `json:"balanceAmount"`
	BalanceType   string         `json:"balanceType"`
	ReferenceDate string         `json:"referenceDate"`
}

type providerBalancesResponse struct {
	Balances []providerBalanceRecord `json:"balances"`
}

type cachedToken struct {
	access    string
	expiresAt time.Time
}

// BankDataClient talks to the bank account data API. Access tokens are cached
// per secret ID and refreshed shortly before they expire. Transient failures
// are retried with exponential backoff and the circuit breaker fails requests
// fast when the provider is down.
type BankDataClient struct {
	config         *config.ProviderConfig
	client         *http.Client
	logger         EngineLoggerInterface
	circuitBreaker CircuitBreakerInterface

	mu     sync.RWMutex
	tokens map[string]cachedToken
}

// NewBankDataClient creates a provider client from the given configuration
func NewBankDataClient(
	cfg *config.ProviderConfig,
	logger EngineLoggerInterface,
	circuitBreaker CircuitBreakerInterface,
) BankDataClientInterface {
	return &BankDataClient{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger:         logger,
		circuitBreaker: circuitBreaker,
		tokens:         make(map[string]cachedToken),
	}
}

// tokenExpiryBuffer keeps us from using a token that expires mid-request
const tokenExpiryBuffer = 30 * time.Second

func (c *BankDataClient) cachedAccessToken(secretID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.tokens[secretID]
	if !ok || !time.Now().Before(cached.expiresAt) {
		return "", false
	}
	return cached.access, true
}

func (c *BankDataClient) storeAccessToken(secretID, access string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[secretID] = cachedToken{access: access, expiresAt: expiresAt}
}

func (c *BankDataClient) dropAccessToken(secretID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tokens, secretID)
}

func (c *BankDataClient) accessToken(ctx context.Context, creds ProviderCredentials) (string, error) {
	if access, ok := c.cachedAccessToken(creds.SecretID); ok {
		return access, nil
	}

	payload, err := json.Marshal(map[string]string{
		"secret_id":  creds.SecretID,
		"secret_key": creds.SecretKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.BaseURL+"/token/new/",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, body, err := c.do(req)
	if err != nil {
		return "", err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var token providerTokenResponse
		if err := json.Unmarshal(body, &token); err != nil {
			return "", fmt.Errorf("decode token response: %w", err)
		}

		expiresAt := time.Now().
			Add(time.Duration(token.AccessExpires) * time.Second).
			Add(-tokenExpiryBuffer)
		c.storeAccessToken(creds.SecretID, token.Access, expiresAt)

		return token.Access, nil

	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrProviderUnauthorized

	case http.StatusTooManyRequests:
		return "", ErrProviderThrottled

	default:
		return "", fmt.Errorf("unexpected token response (%d): %s", resp.StatusCode, string(body))
	}
}

// FetchTransactions retrieves booked transactions for an account within the
// given date range. Dates are inclusive ISO-8601 day strings; empty strings
// leave the corresponding bound open.
func (c *BankDataClient) FetchTransactions(
	ctx context.Context,
	creds ProviderCredentials,
	accountID, dateFrom, dateTo string,
) ([]ProviderTransaction, error) {
	var transactions []ProviderTransaction
	err := c.guarded(ctx, func() error {
		var err error
		transactions, err = c.fetchTransactionsOnce(ctx, creds, accountID, dateFrom, dateTo)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// FetchBalances retrieves the current balance records for an account.
func (c *BankDataClient) FetchBalances(
	ctx context.Context,
	creds ProviderCredentials,
	accountID string,
) ([]ProviderBalance, error) {
	var balances []ProviderBalance
	err := c.guarded(ctx, func() error {
		var err error
		balances, err = c.fetchBalancesOnce(ctx, creds, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return balances, nil
}

// guarded runs one provider call behind the circuit breaker, retrying
// transient failures with exponential backoff.
func (c *BankDataClient) guarded(ctx context.Context, fn func() error) error {
	if c.circuitBreaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}

	stateBefore := c.circuitBreaker.GetState()

	err := c.withRetry(ctx, fn)
	if err != nil {
		c.circuitBreaker.RecordFailure()
	} else {
		c.circuitBreaker.RecordSuccess()
	}
	c.logStateChange(ctx, stateBefore)

	return err
}

func (c *BankDataClient) logStateChange(ctx context.Context, before CircuitBreakerState) {
	after := c.circuitBreaker.GetState()
	if after != before {
		c.logger.LogCircuitBreakerStateChange(ctx, "bank_data_provider", before.String(), after.String())
	}
}

func (c *BankDataClient) withRetry(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := retryBackoff(attempt)
			c.logger.LogProviderRetry(ctx, attempt, c.config.MaxRetries, backoff.Milliseconds(), lastErr.Error())

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("provider request failed after %d retries: %w", c.config.MaxRetries, lastErr)
}

func (c *BankDataClient) fetchTransactionsOnce(
	ctx context.Context,
	creds ProviderCredentials,
	accountID, dateFrom, dateTo string,
) ([]ProviderTransaction, error) {
	token, err := c.accessToken(ctx, creds)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/accounts/%s/transactions/", c.config.BaseURL, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create transactions request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	query := req.URL.Query()
	if dateFrom != "" {
		query.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		query.Set("date_to", dateTo)
	}
	req.URL.RawQuery = query.Encode()

	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var parsed providerTransactionsResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("decode transactions response: %w", err)
		}
		return mapProviderTransactions(parsed.Transactions.Booked), nil

	case http.StatusUnauthorized, http.StatusForbidden:
		// Token may have been revoked upstream, drop it so the next attempt
		// requests a fresh one
		c.dropAccessToken(creds.SecretID)
		return nil, ErrProviderUnauthorized

	case http.StatusTooManyRequests:
		return nil, ErrProviderThrottled

	default:
		return nil, fmt.Errorf("unexpected transactions response (%d): %s", resp.StatusCode, string(body))
	}
}

func (c *BankDataClient) fetchBalancesOnce(
	ctx context.Context,
	creds ProviderCredentials,
	accountID string,
) ([]ProviderBalance, error) {
	token, err := c.accessToken(ctx, creds)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/accounts/%s/balances/", c.config.BaseURL, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create balances request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var parsed providerBalancesResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("decode balances response: %w", err)
		}
		return mapProviderBalances(parsed.Balances), nil

	case http.StatusUnauthorized, http.StatusForbidden:
		c.dropAccessToken(creds.SecretID)
		return nil, ErrProviderUnauthorized

	case http.StatusTooManyRequests:
		return nil, ErrProviderThrottled

	default:
		return nil, fmt.Errorf("unexpected balances response (%d): %s", resp.StatusCode, string(body))
	}
}

func (c *BankDataClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func mapProviderTransactions(booked []providerBookedTransaction) []ProviderTransaction {
	transactions := make([]ProviderTransaction, 0, len(booked))
	for _, b := range booked {
		counterparty := b.CreditorName
		if counterparty == "" {
			counterparty = b.DebtorName
		}

		transactions = append(transactions, ProviderTransaction{
			TransactionID: b.TransactionID,
			BookingDate:   b.BookingDate,
			Amount:        b.Amount.Amount,
			Currency:      b.Amount.Currency,
			Counterparty:  counterparty,
			Description:   b.RemittanceInfo,
		})
	}
	return transactions
}

func mapProviderBalances(records []providerBalanceRecord) []ProviderBalance {
	balances := make([]ProviderBalance, 0, len(records))
	for _, r := range records {
		balanceType := r.BalanceType
		if balanceType == "" {
			balanceType = "expected"
		}

		balances = append(balances, ProviderBalance{
			BalanceType:   balanceType,
			Amount:        r.BalanceAmount.Amount,
			Currency:      r.BalanceAmount.Currency,
			ReferenceDate: r.ReferenceDate,
		})
	}
	return balances
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrProviderUnauthorized) || errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

func retryBackoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt-1)) * time.Second
	if base > 30*time.Second {
		base = 30 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(500 * time.Millisecond)))
	return base + jitter
}

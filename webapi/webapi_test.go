package webapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	infraeventbus "github.com/bankcore/ledger/infra/eventbus"
	accountrepo "github.com/bankcore/ledger/infra/repository/account"
	customerrepo "github.com/bankcore/ledger/infra/repository/customer"
	transactionrepo "github.com/bankcore/ledger/infra/repository/transaction"
	"github.com/bankcore/ledger/pkg/app"
	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/bankcore/ledger/pkg/lock"
	"github.com/bankcore/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	cfg := &config.App{
		Env: "test",
		RateLimit: config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return webapi.NewApp(app.NewDeps(cfg, logger))
}

func makeRequest(t *testing.T, a *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := a.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if len(envelope.Data) == 0 {
		// Empty payloads are omitted from the envelope.
		return
	}
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func createCustomer(t *testing.T, a *fiber.App) webapi.CustomerResponse {
	t.Helper()
	resp := makeRequest(t, a, fiber.MethodPost, "/customers",
		`{"name":"Andrei Mercado","email":"AndreiMercado@email.com","phone":"639213423123"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var cust webapi.CustomerResponse
	decodeData(t, resp, &cust)
	return cust
}

func createAccount(t *testing.T, a *fiber.App, customerID string) webapi.AccountResponse {
	t.Helper()
	resp := makeRequest(t, a, fiber.MethodPost, "/accounts",
		`{"customer_id":"`+customerID+`"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var acct webapi.AccountResponse
	decodeData(t, resp, &acct)
	return acct
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()
	a := newTestApp()

	cust := createCustomer(t, a)
	assert.Equal(t, "Andrei Mercado", cust.Name)
	assert.NotEmpty(t, cust.ID)
}

func TestCreateCustomerValidation(t *testing.T) {
	t.Parallel()
	a := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "missing fields", body: `{"name":"A"}`},
		{name: "bad email", body: `{"name":"A","email":"nope","phone":"639213423123"}`},
		{name: "bad phone", body: `{"name":"A","email":"a@x.com","phone":"12345"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeRequest(t, a, fiber.MethodPost, "/customers", tt.body)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateAccount(t *testing.T) {
	t.Parallel()
	a := newTestApp()
	cust := createCustomer(t, a)

	acct := createAccount(t, a, cust.ID.String())
	assert.Equal(t, "0000000001", acct.Number)
	assert.Equal(t, "0.00", acct.Balance)
	assert.Equal(t, cust.ID, acct.CustomerID)
}

func TestCreateAccountUnknownCustomer(t *testing.T) {
	t.Parallel()
	a := newTestApp()

	resp := makeRequest(t, a, fiber.MethodPost, "/accounts",
		`{"customer_id":"c1a38b5e-14f1-4c11-a153-47dbefeb1c4f"}`)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTransactionsFlow(t *testing.T) {
	t.Parallel()
	a := newTestApp()
	cust := createCustomer(t, a)
	acct := createAccount(t, a, cust.ID.String())
	base := "/accounts/" + acct.ID.String()

	resp := makeRequest(t, a, fiber.MethodPost, base+"/transactions",
		`{"amount":"5000.00","kind":"DEPOSIT"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var tx webapi.TransactionResponse
	decodeData(t, resp, &tx)
	assert.Equal(t, "DEPOSIT", tx.Kind)
	assert.Equal(t, "5000.00", tx.Amount)

	resp = makeRequest(t, a, fiber.MethodPost, base+"/transactions",
		`{"amount":"500.00","kind":"WITHDRAW"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = makeRequest(t, a, fiber.MethodGet, base, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got webapi.AccountResponse
	decodeData(t, resp, &got)
	assert.Equal(t, "4500.00", got.Balance)
}

func TestTransactionErrors(t *testing.T) {
	t.Parallel()
	a := newTestApp()
	cust := createCustomer(t, a)
	acct := createAccount(t, a, cust.ID.String())
	base := "/accounts/" + acct.ID.String()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "overdraft",
			body:       `{"amount":"10000.00","kind":"WITHDRAW"}`,
			wantStatus: fiber.StatusUnprocessableEntity,
		},
		{
			name:       "malformed amount",
			body:       `{"amount":"ten","kind":"DEPOSIT"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "negative amount",
			body:       `{"amount":"-5.00","kind":"DEPOSIT"}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "unknown kind",
			body:       `{"amount":"5.00","kind":"TRANSFER"}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := makeRequest(t, a, fiber.MethodPost, base+"/transactions", tt.body)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}

	// None of the rejected requests may have touched the balance.
	resp := makeRequest(t, a, fiber.MethodGet, base, "")
	var got webapi.AccountResponse
	decodeData(t, resp, &got)
	assert.Equal(t, "0.00", got.Balance)
}

func TestStatement(t *testing.T) {
	t.Parallel()
	a := newTestApp()
	cust := createCustomer(t, a)
	acct := createAccount(t, a, cust.ID.String())
	base := "/accounts/" + acct.ID.String()

	t.Run("empty history is not found", func(t *testing.T) {
		resp := makeRequest(t, a, fiber.MethodGet, base+"/statement", "")
		defer resp.Body.Close() //nolint:errcheck
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	resp := makeRequest(t, a, fiber.MethodPost, base+"/transactions",
		`{"amount":"5000.00","kind":"DEPOSIT"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
	resp = makeRequest(t, a, fiber.MethodPost, base+"/transactions",
		`{"amount":"500.00","kind":"WITHDRAW"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	t.Run("renders history oldest first", func(t *testing.T) {
		resp := makeRequest(t, a, fiber.MethodGet, base+"/statement", "")
		defer resp.Body.Close() //nolint:errcheck
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		lines := strings.Split(string(body), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "TYPE: DEPOSIT")
		assert.Contains(t, lines[0], "AMOUNT: P5000.00")
		assert.Contains(t, lines[1], "TYPE: WITHDRAW")
		assert.Contains(t, lines[1], "AMOUNT: P500.00")
	})
}

func TestListCustomerAccounts(t *testing.T) {
	t.Parallel()
	a := newTestApp()
	cust := createCustomer(t, a)

	resp := makeRequest(t, a, fiber.MethodGet, "/customers/"+cust.ID.String()+"/accounts", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var accounts []webapi.AccountResponse
	decodeData(t, resp, &accounts)
	assert.Empty(t, accounts)

	createAccount(t, a, cust.ID.String())
	createAccount(t, a, cust.ID.String())

	resp = makeRequest(t, a, fiber.MethodGet, "/customers/"+cust.ID.String()+"/accounts", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeData(t, resp, &accounts)
	require.Len(t, accounts, 2)
	assert.Equal(t, "0000000001", accounts[0].Number)
	assert.Equal(t, "0000000002", accounts[1].Number)
}

// stalledTransactions delays Append until released, pinning a request inside
// the mutate-then-record critical section.
type stalledTransactions struct {
	*transactionrepo.Repository
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *stalledTransactions) Append(tx *account.Transaction) error {
	s.once.Do(func() { close(s.entered) })
	<-s.release
	return s.Repository.Append(tx)
}

func TestGetAccountWaitsForInFlightTransaction(t *testing.T) {
	t.Parallel()
	txRepo := &stalledTransactions{
		Repository: transactionrepo.New(),
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := webapi.NewApp(config.Deps{
		Customers:    customerrepo.New(),
		Accounts:     accountrepo.New(),
		Transactions: txRepo,
		Locks:        lock.NewRegistry(),
		Bus:          infraeventbus.NewWithMemory(logger),
		Logger:       logger,
		Config: &config.App{
			RateLimit: config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		},
	})
	cust := createCustomer(t, a)
	acct := createAccount(t, a, cust.ID.String())
	base := "/accounts/" + acct.ID.String()

	depositDone := make(chan struct{})
	go func() {
		defer close(depositDone)
		req := httptest.NewRequest(fiber.MethodPost, base+"/transactions",
			strings.NewReader(`{"amount":"5000.00","kind":"DEPOSIT"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := a.Test(req, 5000)
		if err == nil {
			resp.Body.Close() //nolint:errcheck
		}
	}()
	<-txRepo.entered

	balanceCh := make(chan string, 1)
	go func() {
		resp, err := a.Test(httptest.NewRequest(fiber.MethodGet, base, nil), 5000)
		if err != nil {
			return
		}
		var got webapi.AccountResponse
		decodeData(t, resp, &got)
		balanceCh <- got.Balance
	}()

	// The deposit is stalled after mutating the balance but before its
	// record exists. A balance read must not surface that intermediate
	// state; it blocks until the transaction completes.
	select {
	case balance := <-balanceCh:
		t.Fatalf("balance read completed during in-flight transaction: %s", balance)
	case <-time.After(50 * time.Millisecond):
	}

	close(txRepo.release)
	select {
	case balance := <-balanceCh:
		assert.Equal(t, "5000.00", balance)
	case <-time.After(2 * time.Second):
		t.Fatal("balance read did not complete after the transaction finished")
	}
	<-depositDone
}

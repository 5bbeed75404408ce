package webapi

import (
	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/bankcore/ledger/pkg/domain/money"
	accountsvc "github.com/bankcore/ledger/pkg/service/account"
	customersvc "github.com/bankcore/ledger/pkg/service/customer"
	statementsvc "github.com/bankcore/ledger/pkg/service/statement"
	transactionsvc "github.com/bankcore/ledger/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateAccountRequest is the payload for opening an account.
type CreateAccountRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid4"`
}

// MakeTransactionRequest is the payload for a deposit or withdrawal.
// The amount travels as a decimal string so no precision is lost in JSON.
type MakeTransactionRequest struct {
	Amount string `json:"amount" validate:"required"`
	Kind   string `json:"kind" validate:"required,oneof=DEPOSIT WITHDRAW"`
}

// AccountResponse is the account representation returned by the API.
type AccountResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Number     string    `json:"account_number"`
	Balance    string    `json:"balance"`
}

// TransactionResponse is the transaction representation returned by the API.
type TransactionResponse struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Amount    string    `json:"amount"`
	Kind      string    `json:"kind"`
	CreatedAt string    `json:"created_at"`
}

// newAccountResponse renders an account with an explicitly supplied balance.
// Callers must obtain the balance through Service.GetBalance so the read
// goes through the account's read lock; reading the live aggregate here
// could observe a mutation whose record does not exist yet.
func newAccountResponse(a *account.Account, balance money.Money) AccountResponse {
	return AccountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Number:     a.Number,
		Balance:    balance.String(),
	}
}

func newTransactionResponse(tx *account.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        tx.ID,
		AccountID: tx.AccountID,
		Amount:    tx.Amount.String(),
		Kind:      string(tx.Kind),
		CreatedAt: tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// AccountRoutes registers account endpoints.
//
//   - POST /accounts                    : Open an account for a customer.
//   - GET  /accounts/:id                : Fetch an account with its balance.
//   - POST /accounts/:id/transactions   : Apply a deposit or withdrawal.
//   - GET  /accounts/:id/statement      : Render the transaction history.
func AccountRoutes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	customerSvc *customersvc.Service,
	transactionSvc *transactionsvc.Service,
	statementSvc *statementsvc.Service,
) {
	app.Post("/accounts", CreateAccount(accountSvc, customerSvc))
	app.Get("/accounts/:id", GetAccount(accountSvc))
	app.Post("/accounts/:id/transactions", MakeTransaction(transactionSvc))
	app.Get("/accounts/:id/statement", GetStatement(statementSvc))
}

// CreateAccount returns the handler opening a zero-balance account for an
// existing customer.
func CreateAccount(accountSvc *accountsvc.Service, customerSvc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		customerID, err := uuid.Parse(input.CustomerID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer id", input.CustomerID)
		}
		cust, err := customerSvc.Get(customerID)
		if err != nil {
			return DomainErrorJSON(c, "Customer not found", err)
		}
		a, err := accountSvc.CreateAccount(c.UserContext(), cust)
		if err != nil {
			return DomainErrorJSON(c, "Failed to create account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", newAccountResponse(a, a.Balance()))
	}
}

// GetAccount returns the handler fetching one account and its balance. The
// balance goes through Service.GetBalance so an in-flight transaction on the
// account is either fully visible or not visible at all.
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", c.Params("id"))
		}
		a, err := accountSvc.Get(accountID)
		if err != nil {
			return DomainErrorJSON(c, "Account not found", err)
		}
		balance, err := accountSvc.GetBalance(accountID)
		if err != nil {
			return DomainErrorJSON(c, "Account not found", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account found", newAccountResponse(a, balance))
	}
}

// MakeTransaction returns the handler applying a deposit or withdrawal to an
// account.
func MakeTransaction(transactionSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", c.Params("id"))
		}
		input, err := BindAndValidate[MakeTransactionRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return DomainErrorJSON(c, "Invalid amount", err)
		}
		tx, err := transactionSvc.MakeTransaction(
			c.UserContext(), accountID, amount, account.TransactionKind(input.Kind))
		if err != nil {
			return DomainErrorJSON(c, "Transaction failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Transaction applied", newTransactionResponse(tx))
	}
}

// GetStatement returns the handler rendering an account statement as plain
// text.
func GetStatement(statementSvc *statementsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", c.Params("id"))
		}
		out, err := statementSvc.Generate(accountID)
		if err != nil {
			return DomainErrorJSON(c, "Failed to generate statement", err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(out)
	}
}

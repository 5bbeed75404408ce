package webapi

import (
	accountsvc "github.com/bankcore/ledger/pkg/service/account"
	customersvc "github.com/bankcore/ledger/pkg/service/customer"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// CustomerResponse is the customer representation returned by the API.
type CustomerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// CustomerRoutes registers customer endpoints.
//
//   - POST /customers               : Register a new customer.
//   - GET  /customers/:id/accounts  : List the customer's accounts.
func CustomerRoutes(app *fiber.App, customerSvc *customersvc.Service, accountSvc *accountsvc.Service) {
	app.Post("/customers", CreateCustomer(customerSvc))
	app.Get("/customers/:id/accounts", ListCustomerAccounts(customerSvc, accountSvc))
}

// CreateCustomer returns the handler registering a new customer. Email and
// phone validation happens in the domain; validation failures map to 400.
func CreateCustomer(customerSvc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CreateCustomerRequest](c)
		if input == nil {
			return err
		}
		cust, err := customerSvc.CreateCustomer(input.Name, input.Email, input.Phone)
		if err != nil {
			return DomainErrorJSON(c, "Failed to create customer", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Customer created", CustomerResponse{
			ID:    cust.ID,
			Name:  cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		})
	}
}

// ListCustomerAccounts returns the handler listing a customer's accounts in
// creation order. A customer with no accounts gets an empty list, not an
// error.
func ListCustomerAccounts(customerSvc *customersvc.Service, accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer id", c.Params("id"))
		}
		if _, err := customerSvc.Get(customerID); err != nil {
			return DomainErrorJSON(c, "Customer not found", err)
		}
		accounts := accountSvc.ListByCustomer(customerID)
		out := make([]AccountResponse, len(accounts))
		for i, a := range accounts {
			// Each balance read takes the account's read lock.
			balance, err := accountSvc.GetBalance(a.ID)
			if err != nil {
				return DomainErrorJSON(c, "Failed to read balance", err)
			}
			out[i] = newAccountResponse(a, balance)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts listed", out)
	}
}

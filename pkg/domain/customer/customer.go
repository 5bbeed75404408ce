// Package customer defines the Customer identity record. Customers are
// validated once at construction and immutable afterwards; they reference
// their accounts by id through the account repository, never by pointer.
package customer

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrInvalidEmail is returned when an email address lacks an '@'
	// separating non-empty local and domain parts.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidPhoneNumber is returned when a phone number is not exactly
	// twelve digits starting with the PH country code 63.
	ErrInvalidPhoneNumber = errors.New("invalid phone number, expected 12 digits starting with PH code 63")
	// ErrCustomerNotFound is returned when a customer cannot be found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer is returned when a customer with the same id
	// already exists in the repository.
	ErrDuplicateCustomer = errors.New("customer already exists")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 12 digits with a fixed 63 country-code prefix.
	if err := v.RegisterValidation("ph_phone", func(fl validator.FieldLevel) bool {
		phone := fl.Field().String()
		if len(phone) != 12 || phone[0] != '6' || phone[1] != '3' {
			return false
		}
		for _, r := range phone {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}); err != nil {
		panic(err)
	}
	return v
}

// Customer is an immutable identity record owning zero or more accounts.
type Customer struct {
	ID        uuid.UUID `validate:"required"`
	Name      string    `validate:"required"`
	Email     string    `validate:"required,email"`
	Phone     string    `validate:"required,ph_phone"`
	CreatedAt time.Time
}

// New validates and creates a Customer. Returns ErrInvalidEmail or
// ErrInvalidPhoneNumber when the respective field fails validation.
func New(name, email, phone string) (*Customer, error) {
	c := &Customer{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "Email":
				return nil, ErrInvalidEmail
			case "Phone":
				return nil, ErrInvalidPhoneNumber
			}
		}
		return nil, err
	}
	return c, nil
}

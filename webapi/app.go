// Package webapi is the HTTP delivery layer over the ledger services. It
// carries no ledger rules of its own: every invariant is enforced below it.
package webapi

import (
	"github.com/bankcore/ledger/pkg/config"
	accountsvc "github.com/bankcore/ledger/pkg/service/account"
	customersvc "github.com/bankcore/ledger/pkg/service/customer"
	statementsvc "github.com/bankcore/ledger/pkg/service/statement"
	transactionsvc "github.com/bankcore/ledger/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with all routes registered.
func NewApp(deps config.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger is up")
	})

	customerSvc := customersvc.NewService(deps)
	accountSvc := accountsvc.NewService(deps)
	transactionSvc := transactionsvc.NewService(deps)
	statementSvc := statementsvc.NewService(deps)

	CustomerRoutes(app, customerSvc, accountSvc)
	AccountRoutes(app, accountSvc, customerSvc, transactionSvc, statementSvc)

	return app
}

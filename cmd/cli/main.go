// Command cli replays a demonstration scenario against an in-process ledger:
// two customers, one account, a handful of deposits and withdrawals, and the
// printed statement. It exists to show the wiring; the ledger rules all live
// in the domain and service packages.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bankcore/ledger/pkg/app"
	"github.com/bankcore/ledger/pkg/config"
	"github.com/bankcore/ledger/pkg/domain/account"
	"github.com/bankcore/ledger/pkg/domain/money"
	accountsvc "github.com/bankcore/ledger/pkg/service/account"
	customersvc "github.com/bankcore/ledger/pkg/service/customer"
	statementsvc "github.com/bankcore/ledger/pkg/service/statement"
	transactionsvc "github.com/bankcore/ledger/pkg/service/transaction"
	"github.com/fatih/color"
)

func main() {
	// The demo narrates through color output; keep slog quiet.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := app.NewDeps(&config.App{}, logger)

	customerSvc := customersvc.NewService(deps)
	accountSvc := accountsvc.NewService(deps)
	transactionSvc := transactionsvc.NewService(deps)
	statementSvc := statementsvc.NewService(deps)

	ctx := context.Background()
	headline := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	headline.Println("== Registering customers ==")
	andrei, err := customerSvc.CreateCustomer("Andrei Mercado", "AndreiMercado@email.com", "639213423123")
	exitOn(err)
	john, err := customerSvc.CreateCustomer("John Mercado", "JohnMercado@gmail.com", "639123456123")
	exitOn(err)
	ok.Printf("customer %s registered (%s)\n", andrei.Name, andrei.ID)
	ok.Printf("customer %s registered (%s)\n", john.Name, john.ID)

	headline.Println("== Opening an account ==")
	acct, err := accountSvc.CreateAccount(ctx, andrei)
	exitOn(err)
	ok.Printf("account %s opened for %s, balance %s\n", acct.Number, andrei.Name, acct.Balance())

	// John has no accounts yet; the lookup is an empty list, not an error.
	if accounts := accountSvc.ListByCustomer(john.ID); len(accounts) == 0 {
		fail.Printf("%s has no accounts\n", john.Name)
	}

	headline.Println("== Statement before any transactions ==")
	if _, err := statementSvc.Generate(acct.ID); err != nil {
		fail.Printf("statement refused: %v\n", err)
	}

	headline.Println("== Moving money ==")
	steps := []struct {
		amount string
		kind   account.TransactionKind
	}{
		{"5000.00", account.KindDeposit},
		{"500.00", account.KindWithdraw},
		{"250.00", account.KindWithdraw},
		{"200.00", account.KindWithdraw},
	}
	for _, step := range steps {
		amount := money.MustParse(step.amount)
		if _, err := transactionSvc.MakeTransaction(ctx, acct.ID, amount, step.kind); err != nil {
			fail.Printf("%s of %s failed: %v\n", step.kind, amount, err)
			continue
		}
		ok.Printf("%s of %s applied, balance %s\n", step.kind, amount, acct.Balance())
	}

	// Overdraft attempt leaves the balance untouched.
	if _, err := transactionSvc.MakeTransaction(
		ctx, acct.ID, money.MustParse("10000.00"), account.KindWithdraw); err != nil {
		fail.Printf("overdraft rejected: %v (balance still %s)\n", err, acct.Balance())
	}

	headline.Printf("== Statement for account %s ==\n", acct.Number)
	out, err := statementSvc.Generate(acct.ID)
	exitOn(err)
	fmt.Println(out)
}

func exitOn(err error) {
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}

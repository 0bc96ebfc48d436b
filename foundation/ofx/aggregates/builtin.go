// File: builtin.go
// Title: Built-in Aggregate Definitions
// Description: Registers the built-in OFX aggregate definitions and
//              provides the shared default registry used by the parsing
//              facade.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial built-in definition set

package aggregates

import (
	"sync"

	"github.com/msto63/mOFX/foundation/ofx/registry"
)

var (
	defaultRegistry *registry.Registry
	defaultOnce     sync.Once
)

// Default returns the shared registry holding the built-in aggregate
// definitions. The registry is created on first use; callers may register
// additional definitions on it.
func Default() *registry.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = registry.New(registry.Options{})
		RegisterBuiltins(defaultRegistry)
	})
	return defaultRegistry
}

// RegisterBuiltins adds the built-in aggregate definitions to a registry.
// Registration of the built-in set never fails on a fresh registry.
func RegisterBuiltins(reg *registry.Registry) {
	reg.MustRegister(&registry.Definition{
		Name:        "STATUS",
		Description: "Request/response status",
		New:         newStatus,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "CURRENCY",
		Description: "Currency with current exchange rate",
		New:         newCurrency,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "ORIGCURRENCY",
		Description: "Currency with rate at transaction time",
		New:         newOrigCurrency,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "BANKACCTFROM",
		Description: "Bank account identification",
		New:         newBankAcctFrom,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "CCACCTFROM",
		Description: "Credit card account identification",
		New:         newCCAcctFrom,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "PAYEE",
		Description: "Payee name and address",
		New:         newPayee,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "INCTRAN",
		Description: "Transaction inclusion scope of a statement request",
		New:         newIncTran,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "LEDGERBAL",
		Description: "Ledger balance",
		New:         newLedgerBal,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "AVAILBAL",
		Description: "Available balance",
		New:         newAvailBal,
	})
	reg.MustRegister(&registry.Definition{
		Name:            "STMTTRN",
		Description:     "Statement transaction",
		CurrencyBearing: true,
		New:             newStmtTrn,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "MFINFO",
		Description: "Mutual fund information",
		Lists: []registry.ListSpec{
			{Tag: "MFASSETCLASS", ItemTag: "PORTION"},
			{Tag: "FIMFASSETCLASS", ItemTag: "FIPORTION"},
		},
		New: newMFInfo,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "PORTION",
		Description: "Asset class portion",
		New:         newPortion,
	})
	reg.MustRegister(&registry.Definition{
		Name:        "FIPORTION",
		Description: "Institution-specific asset class portion",
		New:         newFIPortion,
	})
}

package store

import (
	"github.com/msto63/mOFX/foundation/ofx/aggregates"
)

// FromStmtTrn maps a converted statement transaction to its stored form.
// The amount keeps its exact decimal representation as text.
func FromStmtTrn(t *aggregates.StmtTrn) *Transaction {
	txn := &Transaction{
		FitID:    t.FitID,
		TrnType:  t.TrnType,
		DtPosted: t.DtPosted,
		Name:     t.Name,
		Memo:     t.Memo,
		CurSym:   t.CurSym,
		CurType:  string(t.CurType),
	}
	if t.TrnAmt != nil {
		txn.Amount = t.TrnAmt.String()
	}
	return txn
}

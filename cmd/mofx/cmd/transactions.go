package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mOFX/foundation/ofx"
	"github.com/msto63/mOFX/foundation/ofx/aggregates"
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions [datei]",
	Short: "Umsätze eines Dokuments anzeigen",
	Long: `Zeigt alle Umsätze eines OFX-Dokuments als Tabelle an.

Beispiele:
  mofx transactions kontoauszug.ofx
  mofx transactions --lax kontoauszug.ofx
  cat kontoauszug.ofx | mofx transactions`,
	RunE: runTransactions,
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(cmd *cobra.Command, args []string) error {
	text, source, err := readDocument(args)
	if err != nil {
		return err
	}

	engine, err := newEngine(loadConfig())
	if err != nil {
		return err
	}

	doc, err := engine.Parse(text)
	if err != nil {
		return fmt.Errorf("Parsen fehlgeschlagen: %w", err)
	}

	results, err := engine.ConvertAll(doc, "STMTTRN")
	if err != nil {
		return fmt.Errorf("Umsätze konnten nicht gelesen werden: %w", err)
	}

	fmt.Printf("Umsätze: %s\n", source)
	fmt.Println(separator(78))
	fmt.Printf("%-10s  %-8s  %12s  %-30s  %s\n", "Datum", "Typ", "Betrag", "Empfänger", "FITID")

	for _, result := range results {
		trn, ok := result.Aggregate.(*aggregates.StmtTrn)
		if !ok {
			continue
		}

		amount := ""
		if trn.TrnAmt != nil {
			amount = trn.TrnAmt.String()
		}
		if trn.CurType != aggregates.CurrencySourceNone && trn.CurSym != "" {
			amount += " " + trn.CurSym
		}

		name := trn.Name
		if name == "" {
			name = trn.Memo
		}
		if len(name) > 30 {
			name = name[:27] + "..."
		}

		fmt.Printf("%-10s  %-8s  %12s  %-30s  %s\n",
			trn.DtPosted.Format("2006-01-02"), trn.TrnType, amount, name, trn.FitID)
	}

	fmt.Printf("\n%d Umsätze\n", len(results))
	printBalance(engine, doc)

	return nil
}

// printBalance shows the ledger balance when the statement carries one
func printBalance(engine *ofx.Engine, doc *ofx.Document) {
	nodes := doc.Find("LEDGERBAL")
	if len(nodes) == 0 {
		return
	}

	result, err := engine.Convert(nodes[0])
	if err != nil {
		return
	}

	bal, ok := result.Aggregate.(*aggregates.LedgerBal)
	if !ok || bal.BalAmt == nil {
		return
	}

	fmt.Printf("Saldo: %s (Stand %s)\n", bal.BalAmt.String(), bal.DtAsOf.Format("2006-01-02"))
}

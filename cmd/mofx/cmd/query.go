package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mOFX/foundation/utils/timex"
	"github.com/msto63/mOFX/internal/store"
)

var (
	queryAcctID  string
	queryTrnType string
	queryFrom    string
	queryTo      string
	queryLimit   int
)

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "Import-Historie anzeigen",
	RunE:  runImports,
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Gespeicherte Umsätze abfragen",
	Long: `Fragt importierte Umsätze aus der Datenbank ab.

Beispiele:
  mofx query
  mofx query --acct 999988 --type DEBIT
  mofx query --from 2024-03-01 --to 2024-03-31 --limit 20`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(importsCmd)
	rootCmd.AddCommand(queryCmd)

	importsCmd.Flags().StringVar(&importDBPath, "db", "", "Pfad zur Datenbank")

	queryCmd.Flags().StringVar(&importDBPath, "db", "", "Pfad zur Datenbank")
	queryCmd.Flags().StringVar(&queryAcctID, "acct", "", "Nach Kontonummer filtern")
	queryCmd.Flags().StringVar(&queryTrnType, "type", "", "Nach Umsatztyp filtern (DEBIT, CREDIT, ...)")
	queryCmd.Flags().StringVar(&queryFrom, "from", "", "Buchungen ab Datum (YYYY-MM-DD)")
	queryCmd.Flags().StringVar(&queryTo, "to", "", "Buchungen bis Datum (YYYY-MM-DD)")
	queryCmd.Flags().IntVar(&queryLimit, "limit", 50, "Max. Anzahl Ergebnisse")
}

func runImports(cmd *cobra.Command, args []string) error {
	db, err := openStore(loadConfig())
	if err != nil {
		return fmt.Errorf("Datenbank konnte nicht geöffnet werden: %w", err)
	}
	defer db.Close()

	imports, err := db.ListImports(context.Background())
	if err != nil {
		return fmt.Errorf("Abfrage fehlgeschlagen: %w", err)
	}

	if len(imports) == 0 {
		fmt.Println("Keine Importe vorhanden")
		return nil
	}

	fmt.Printf("%-36s  %-16s  %-12s  %7s  %s\n", "Import", "Zeitpunkt", "Konto", "Umsätze", "Quelle")
	fmt.Println(separator(90))
	for _, imp := range imports {
		fmt.Printf("%-36s  %-16s  %-12s  %7d  %s\n",
			imp.ID, imp.ImportedAt.Format("2006-01-02 15:04"), imp.AcctID,
			imp.Transactions, imp.SourceFile)
	}

	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	filter := store.TransactionFilter{
		AcctID:  queryAcctID,
		TrnType: queryTrnType,
		Limit:   queryLimit,
	}

	if queryFrom != "" {
		from, err := timex.ParseDate(queryFrom)
		if err != nil {
			return fmt.Errorf("ungültiges Datum %q (erwartet: YYYY-MM-DD)", queryFrom)
		}
		filter.StartDate = timex.StartOfDay(from)
	}
	if queryTo != "" {
		to, err := timex.ParseDate(queryTo)
		if err != nil {
			return fmt.Errorf("ungültiges Datum %q (erwartet: YYYY-MM-DD)", queryTo)
		}
		filter.EndDate = timex.EndOfDay(to)
	}

	db, err := openStore(loadConfig())
	if err != nil {
		return fmt.Errorf("Datenbank konnte nicht geöffnet werden: %w", err)
	}
	defer db.Close()

	txns, err := db.QueryTransactions(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("Abfrage fehlgeschlagen: %w", err)
	}

	fmt.Printf("%-10s  %-8s  %12s  %-12s  %-30s\n", "Datum", "Typ", "Betrag", "Konto", "Empfänger")
	fmt.Println(separator(80))
	for _, txn := range txns {
		name := txn.Name
		if name == "" {
			name = txn.Memo
		}
		fmt.Printf("%-10s  %-8s  %12s  %-12s  %-30s\n",
			txn.DtPosted.Format("2006-01-02"), txn.TrnType, txn.Amount, txn.AcctID, name)
	}
	fmt.Printf("\n%d Umsätze\n", len(txns))

	return nil
}

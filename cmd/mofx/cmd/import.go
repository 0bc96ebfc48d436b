package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mOFX/foundation/core/config"
	"github.com/msto63/mOFX/foundation/ofx"
	"github.com/msto63/mOFX/foundation/ofx/aggregates"
	"github.com/msto63/mOFX/internal/store"
)

var importDBPath string

var importCmd = &cobra.Command{
	Use:   "import [datei]",
	Short: "Umsätze in die Datenbank importieren",
	Long: `Importiert die Umsätze eines OFX-Dokuments in die lokale Datenbank.
Bereits importierte Umsätze (gleiche FITID und Kontonummer) werden übersprungen.

Beispiele:
  mofx import kontoauszug.ofx
  mofx import --db ./data/statements.db kontoauszug.ofx`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDBPath, "db", "", "Pfad zur Datenbank (default: ./data/statements.db)")
}

// openStore opens the statement database from flag or configuration
func openStore(cfg *config.Config) (store.StatementStore, error) {
	path := importDBPath
	if path == "" {
		path = cfg.GetString("store.path", store.DefaultConfig().Path)
	}
	return store.NewSQLiteStatementStore(store.SQLiteConfig{Path: path})
}

func runImport(cmd *cobra.Command, args []string) error {
	text, source, err := readDocument(args)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	engine, err := newEngine(cfg)
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
	if len(results) == 0 {
		return fmt.Errorf("das Dokument enthält keine Umsätze")
	}

	imp := &store.Import{SourceFile: source}
	fillAccount(engine, doc, imp)

	txns := make([]*store.Transaction, 0, len(results))
	for _, result := range results {
		trn, ok := result.Aggregate.(*aggregates.StmtTrn)
		if !ok {
			continue
		}
		txns = append(txns, store.FromStmtTrn(trn))
	}

	db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("Datenbank konnte nicht geöffnet werden: %w", err)
	}
	defer db.Close()

	stored, skipped, err := db.SaveImport(context.Background(), imp, txns)
	if err != nil {
		return fmt.Errorf("Import fehlgeschlagen: %w", err)
	}

	fmt.Printf("Import abgeschlossen: %s\n", imp.ID)
	fmt.Printf("  Konto:         %s\n", imp.AcctID)
	fmt.Printf("  Importiert:    %d\n", stored)
	fmt.Printf("  Übersprungen:  %d\n", skipped)

	return nil
}

// fillAccount extracts account and currency details from the statement
func fillAccount(engine *ofx.Engine, doc *ofx.Document, imp *store.Import) {
	if nodes := doc.Find("BANKACCTFROM"); len(nodes) > 0 {
		if result, err := engine.Convert(nodes[0]); err == nil {
			if acct, ok := result.Aggregate.(*aggregates.BankAcctFrom); ok {
				imp.BankID = acct.BankID
				imp.AcctID = acct.AcctID
			}
		}
	}
	if imp.AcctID == "" {
		if nodes := doc.Find("CCACCTFROM"); len(nodes) > 0 {
			if result, err := engine.Convert(nodes[0]); err == nil {
				if acct, ok := result.Aggregate.(*aggregates.CCAcctFrom); ok {
					imp.AcctID = acct.AcctID
				}
			}
		}
	}
	if nodes := doc.Find("CURDEF"); len(nodes) > 0 {
		imp.Currency = nodes[0].Text
	}
}

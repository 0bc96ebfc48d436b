package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mOFX/foundation/core/config"
	"github.com/msto63/mOFX/foundation/core/log"
	"github.com/msto63/mOFX/foundation/ofx"
	"github.com/msto63/mOFX/foundation/utils/filex"
)

var (
	cfgFile string
	verbose bool
	laxMode bool
)

var rootCmd = &cobra.Command{
	Use:   "mofx",
	Short: "meinOFX - OFX-Parser und Statement-Import",
	Long: `meinOFX liest OFX-Kontoauszüge (v1 und v2), zeigt deren Inhalt an
und importiert Umsätze in eine lokale SQLite-Datenbank.

Befehle:
  parse         - Dokument parsen und Struktur anzeigen
  inspect       - Flache Attribute eines Aggregats anzeigen
  transactions  - Umsätze eines Dokuments anzeigen
  import        - Umsätze in die Datenbank importieren
  imports       - Import-Historie anzeigen
  query         - Gespeicherte Umsätze abfragen`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/mofx.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&laxMode, "lax", false, "Ungültige Elemente verwerfen statt abzubrechen")
}

// initLogging keeps engine logs off the terminal unless verbose is set
func initLogging() {
	level := log.LevelError
	if verbose {
		level = log.LevelDebug
	}
	log.SetDefault(log.NewWithConfig(log.Config{
		Level:  level,
		Format: log.FormatText,
		Output: os.Stderr,
		Name:   "mofx",
	}))
}

// loadConfig reads the configuration file if one exists
func loadConfig() *config.Config {
	path := cfgFile
	if path == "" {
		path = "./configs/mofx.toml"
	}
	if !filex.IsFile(path) {
		return config.NewFromMap(map[string]interface{}{})
	}
	cfg, err := config.Load(path)
	if err != nil {
		printError("Config konnte nicht geladen werden", err)
		return config.NewFromMap(map[string]interface{}{})
	}
	return cfg
}

// newEngine builds an OFX engine from flags and configuration
func newEngine(cfg *config.Config) (*ofx.Engine, error) {
	return ofx.NewEngine(ofx.Options{
		MaxDocumentSize: cfg.GetInt("parser.max_document_size", 0),
		MaxDepth:        cfg.GetInt("parser.max_depth", 0),
		Lax:             laxMode || cfg.GetBool("parser.lax", false),
	})
}

// readDocument reads an OFX document from the given file or from stdin.
// Oversized inputs are rejected before any parsing starts.
func readDocument(args []string) (string, string, error) {
	if len(args) > 0 {
		text, err := filex.ReadStringLimit(args[0], ofx.DefaultMaxDocumentSize)
		if err != nil {
			return "", "", fmt.Errorf("Datei konnte nicht gelesen werden: %w", err)
		}
		return text, args[0], nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		text, err := filex.ReadAllLimit(os.Stdin, ofx.DefaultMaxDocumentSize)
		if err != nil {
			return "", "", err
		}
		return text, "(stdin)", nil
	}

	return "", "", fmt.Errorf("keine Eingabe: Datei angeben oder Dokument über stdin übergeben")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

func separator(width int) string {
	return strings.Repeat("=", width)
}

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/mOFX/foundation/ofx/convert"
)

var (
	inspectTag   string
	inspectIndex int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [datei]",
	Short: "Flache Attribute eines Aggregats anzeigen",
	Long: `Zeigt ein Aggregat als flache Attributliste an, so wie es
der Konverter sieht. Bekannte Aggregate werden vollständig konvertiert
(inklusive Listen und Vendor-Erweiterungen), unbekannte nur abgeflacht.

Beispiele:
  mofx inspect kontoauszug.ofx
  mofx inspect --tag STMTTRN kontoauszug.ofx
  mofx inspect --tag STMTTRN --index 1 kontoauszug.ofx`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectTag, "tag", "", "Tag des Aggregats (default: Wurzel)")
	inspectCmd.Flags().IntVar(&inspectIndex, "index", 0, "Welches Vorkommen bei mehreren Treffern")
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	node := doc.Root
	if inspectTag != "" {
		nodes := doc.Find(inspectTag)
		if len(nodes) == 0 {
			return fmt.Errorf("Tag %q nicht gefunden", inspectTag)
		}
		if inspectIndex < 0 || inspectIndex >= len(nodes) {
			return fmt.Errorf("Index %d außerhalb des Bereichs (%d Treffer)", inspectIndex, len(nodes))
		}
		node = nodes[inspectIndex]
	}

	fmt.Printf("Aggregat <%s> aus %s\n", node.Tag, source)
	fmt.Println(separator(50))

	// Known aggregates get the full conversion including lists and
	// vendor extensions; unknown ones are shown flattened.
	if engine.Registry().Has(node.Tag) {
		result, err := engine.Convert(node)
		if err != nil {
			return fmt.Errorf("Konvertierung fehlgeschlagen: %w", err)
		}
		printAttributes(map[string]string(result.Attributes))

		if len(result.Extensions) > 0 {
			fmt.Println("\nVendor-Erweiterungen:")
			printAttributes(result.Extensions)
		}
		for _, container := range sortedListKeys(result.Lists) {
			fmt.Printf("\nListe %s (%d Einträge):\n", container, len(result.Lists[container]))
			for i, item := range result.Lists[container] {
				fmt.Printf("  [%d] <%s>\n", i, item.Aggregate.AggregateName())
				for _, key := range sortedKeys(item.Attributes) {
					fmt.Printf("      %-16s %s\n", key, item.Attributes[key])
				}
			}
		}
		return nil
	}

	attrs, err := convert.Flatten(node)
	if err != nil {
		return fmt.Errorf("Abflachen fehlgeschlagen: %w", err)
	}
	printAttributes(map[string]string(attrs))

	return nil
}

func printAttributes(attrs map[string]string) {
	for _, key := range sortedKeys(attrs) {
		fmt.Printf("%-16s %s\n", key, attrs[key])
	}
}

func sortedListKeys(m map[string][]*convert.Result) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

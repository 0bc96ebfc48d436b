package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/mOFX/foundation/ofx/tree"
)

var parseShowTree bool

var parseCmd = &cobra.Command{
	Use:   "parse [datei]",
	Short: "Dokument parsen und Struktur anzeigen",
	Long: `Parst ein OFX-Dokument und zeigt Header, Umfang und Struktur an.

Beispiele:
  mofx parse kontoauszug.ofx
  mofx parse --tree kontoauszug.ofx
  cat kontoauszug.ofx | mofx parse`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseShowTree, "tree", "t", false, "Vollständigen Baum ausgeben")
}

func runParse(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("OFX-Dokument: %s\n", source)
	fmt.Println(separator(50))
	fmt.Printf("Header-Version: OFXv%d\n", doc.Header.Version)
	for _, key := range sortedKeys(doc.Header.Fields) {
		fmt.Printf("  %-12s %s\n", key+":", doc.Header.Fields[key])
	}

	fmt.Printf("\nElemente gesamt: %d\n", doc.Root.Count())
	fmt.Printf("Parse-Dauer:     %s\n", doc.ParseTime)

	fmt.Println("\nHäufigste Tags:")
	for _, tc := range tagCounts(doc.Root) {
		fmt.Printf("  %-20s %d\n", tc.tag, tc.count)
	}

	if parseShowTree {
		fmt.Println("\nBaum:")
		fmt.Println(doc.Root.String())
	}

	return nil
}

type tagCount struct {
	tag   string
	count int
}

// tagCounts returns the ten most frequent tags in the document
func tagCounts(root *tree.Node) []tagCount {
	counts := make(map[string]int)
	root.Walk(func(n *tree.Node) bool {
		counts[n.Tag]++
		return true
	})

	result := make([]tagCount, 0, len(counts))
	for tag, count := range counts {
		result = append(result, tagCount{tag, count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].count != result[j].count {
			return result[i].count > result[j].count
		}
		return result[i].tag < result[j].tag
	})

	if len(result) > 10 {
		result = result[:10]
	}
	return result
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vidhisaar/vidhisaar/internal/catalog"
)

var sectionsSearch string

// sectionsCmd represents the sections command
var sectionsCmd = &cobra.Command{
	Use:   "sections [code]",
	Short: "Look up or search the statute catalog",
	Long: `Sections queries the embedded statute reference tables.

Example:
  vidhisaar sections "IPC 420"
  vidhisaar sections --search theft`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)

	sectionsCmd.Flags().StringVar(&sectionsSearch, "search", "", "search titles and descriptions by keyword")
}

func runSections(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	if sectionsSearch != "" {
		results := cat.Search(sectionsSearch)
		if len(results) == 0 {
			return fmt.Errorf("no sections match %q", sectionsSearch)
		}
		for _, r := range results {
			fmt.Printf("%-14s %s\n", r.Code, r.Title)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("provide a section code or --search keyword")
	}

	record, ok := cat.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown section code: %s", args[0])
	}

	fmt.Printf("%s - %s\n\n", record.Code, record.Title)
	fmt.Printf("%s\n\n", record.Description)
	fmt.Printf("Punishment: %s\n", record.Punishment)
	fmt.Printf("Bailable:   %v\n", record.Bailable)
	fmt.Printf("Cognizable: %v\n", record.Cognizable)
	return nil
}

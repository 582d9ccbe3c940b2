package cmd

import (
	"fmt"

	"github.com/neoncitylights/arxiv"
	"github.com/spf13/cobra"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the known groups and archives",
	Long: `Lists every group and archive in the classification table, which is
the set of values the category parser accepts.`,
	RunE: runTaxonomy,
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	archives := arxiv.Archives()

	for _, g := range arxiv.Groups() {
		fmt.Printf("%s (%s)\n", g.Name(), g)
		for _, a := range archives {
			if a.Group() != g {
				continue
			}
			note := ""
			if !a.HasSubjects() {
				note = " [no subject classes]"
			}
			fmt.Printf("  %-10s %s%s\n", a, a.Name(), note)
		}
	}
	return nil
}

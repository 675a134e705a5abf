// Command snograph builds the stated and inferred concept graphs from a
// SNOMED CT relationship release and verifies their structure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snograph",
	Short: "Structural validation of SNOMED CT relationship releases",
	Long: `snograph ingests the stated and inferred relationship files of a
SNOMED CT release into two in-memory concept graphs and answers structural
questions over them: hierarchy verification, ancestor tests and
content-based relationship-group equivalence between the two views.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

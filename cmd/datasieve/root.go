package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datasieve",
	Short: "Validate CSV/XLSX files against industry schemas",
	Long: `datasieve validates tabular data files against industry schemas,
falling back to dynamic schema detection and fully generic validation
when the selected schema does not fit. It reports structured errors,
warnings, statistical outliers, and a data quality score.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

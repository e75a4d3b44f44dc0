package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"datasieve/internal/domain"
	"datasieve/internal/engine"
	"datasieve/internal/ingest"
	"datasieve/internal/report"
	"datasieve/internal/schema"
)

var (
	validateIndustry   string
	validateSchemaFile string
	validateReportPath string
	validateJSON       bool
	validateMaxRows    int
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		ds, err := ingest.ReadFile(f, path, validateMaxRows)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		registry := schema.Builtin()
		if validateSchemaFile != "" {
			extras, err := schema.LoadFile(validateSchemaFile)
			if err != nil {
				return err
			}
			registry = registry.Merge(extras...)
		}

		orch := engine.NewOrchestrator(registry, engine.NewOverlapDetector(registry))
		result := orch.Validate(ds, validateIndustry)

		if validateReportPath != "" {
			out, err := os.Create(validateReportPath)
			if err != nil {
				return err
			}
			defer func() { _ = out.Close() }()
			if err := report.Export(out, result); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Printf("Report written to %s\n", validateReportPath)
		}

		if validateJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		printResult(result)
		if !result.IsValid {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateIndustry, "industry", "i", schema.GenericName, "industry schema to validate against")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schemas", "", "YAML file with additional industry schemas")
	validateCmd.Flags().StringVarP(&validateReportPath, "report", "r", "", "write a CSV report to this path")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "print the full result as JSON")
	validateCmd.Flags().IntVar(&validateMaxRows, "max-rows", 100000, "maximum number of data rows")
	rootCmd.AddCommand(validateCmd)
}

func printResult(result *domain.ValidationResult) {
	s := result.Summary
	status := "VALID"
	if !result.IsValid {
		status = "INVALID"
	}
	fmt.Printf("%s: schema %q, %d rows, quality score %.2f/100\n", status, s.SchemaUsed, s.TotalRows, s.DataQualityScore)
	if result.FallbackLevel != "" {
		fmt.Printf("Fallback (%s): %s\n", result.FallbackLevel, result.FallbackMessage)
	}
	for _, e := range result.Errors {
		fmt.Printf("  error   [%s] %s\n", e.Type, e.Message)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  warning [%s] %s\n", w.Type, w.Message)
	}
	for _, ins := range result.Insights {
		fmt.Printf("  note: %s\n", ins)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxline/delog/internal/catalogue"
	"github.com/voxline/delog/internal/config"
	"github.com/voxline/delog/internal/output"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active rule catalogue",
	Long: `List the removal rules delog would apply, in application order.

Shows the built-in catalogue by default, or a custom one via --catalogue.
Each rule carries its category, severity, expression, and trailing-content
match mode (single-line or multi-line).

Examples:
  delog rules
  delog rules --format table
  delog rules --category "Deepgram streaming"
  delog rules --severity warn --format json`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().String("category", "", "only show rules in this category")
	rulesCmd.Flags().StringP("severity", "s", "", "only show rules targeting this severity (debug, info, warn)")
	rulesCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	severityStr, _ := cmd.Flags().GetString("severity")
	noColor, _ := cmd.Flags().GetBool("no-color")

	rules, err := activeCatalogue()
	if err != nil {
		return err
	}

	severity := config.SeverityUnknown
	if severityStr != "" {
		severity = config.ParseSeverity(severityStr)
		if severity == config.SeverityUnknown {
			return fmt.Errorf("invalid severity: %s", severityStr)
		}
	}

	filtered := catalogue.Filter(rules, category, severity, severityStr != "")

	format := output.ParseFormat(viper.GetString("format"))
	writer := output.New(cmd.OutOrStdout(), format)

	if format == output.FormatText {
		mode := output.ColorAuto
		if noColor {
			mode = output.ColorNever
		}
		for _, r := range filtered {
			if err := writer.WriteColoredRule(r, mode); err != nil {
				return err
			}
		}
		return nil
	}

	return writer.WriteRules(filtered)
}

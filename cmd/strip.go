package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxline/delog/internal/output"
	"github.com/voxline/delog/internal/stripper"
)

var stripCmd = &cobra.Command{
	Use:   "strip <file>",
	Short: "Remove catalogued log statements from a source file",
	Long: `Strip reads the file as UTF-8, removes every logger call matched by the
active rule catalogue, collapses runs of blank lines down to one, and writes
the result back in place. The file is overwritten destructively: no backup
is made.

Rules are applied in catalogue order over the evolving buffer; a rule that
matches nothing is silently a no-op. Error logs and ⏱️-prefixed performance
logs are never targeted.

Examples:
  delog strip src/websocket/handlers/exotelVoice.handler.ts
  delog strip --catalogue rules.yaml src/handler.ts
  delog strip --format json src/handler.ts`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
}

// keptSummary is the fixed completion message. It carries no counts on
// purpose: it states what classes of logs survive, nothing else.
const keptSummary = `Cleaned up logs successfully!
Removed verbose logs, kept only:
  - Error logs (logger.error)
  - Performance logs (⏱️ prefix)
  - Critical operational logs`

func runStrip(cmd *cobra.Command, args []string) error {
	rules, err := activeCatalogue()
	if err != nil {
		return err
	}

	s, err := stripper.New(rules)
	if err != nil {
		return err
	}

	report, err := s.StripFile(args[0])
	if err != nil {
		return err
	}

	format := output.ParseFormat(viper.GetString("format"))
	if format == output.FormatJSON {
		return output.New(cmd.OutOrStdout(), output.FormatJSON).WriteJSON(report)
	}

	fmt.Fprintln(cmd.OutOrStdout(), keptSummary)

	if viper.GetBool("verbose") {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "Rules in catalogue: %d\n", len(rules))
		fmt.Fprintf(cmd.OutOrStdout(), "Call sites removed: %d\n", report.Removed)
		fmt.Fprintf(cmd.OutOrStdout(), "Bytes: %d -> %d\n", report.BytesBefore, report.BytesAfter)
	}

	return nil
}

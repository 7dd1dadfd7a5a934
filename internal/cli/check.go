package cli

import (
	"github.com/spf13/cobra"

	"github.com/aidanlsb/ubiq/internal/consistency"
	"github.com/aidanlsb/ubiq/internal/report"
)

var checkFix bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check glossary term usage across the documentation",
	Long: `Scans the configured documentation directories for every glossary term
and reports where each term is used, terms used nowhere, terms used in more
than one bounded context, usages that are not linked to the glossary, and a
compliance checklist per term.

With --fix, unlinked usages are rewritten in place as links to the glossary
before the report is produced.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := consistency.Run(getConfig(), consistency.Options{
			Fix:    checkFix,
			Logger: getLogger(),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		return report.NewWriter(themeFor(out)).Render(out, res.Report)
	},
}

func init() {
	addFixFlag(checkCmd.Flags(), &checkFix, "Insert glossary links for unlinked usages in place")
	rootCmd.AddCommand(checkCmd)
}

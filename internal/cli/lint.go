package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/ubiq/internal/glossary"
	"github.com/aidanlsb/ubiq/internal/report"
)

var lintFix bool

var lintCmd = &cobra.Command{
	Use:   "lint-glossary",
	Short: "Check the glossary for entry format and duplicate terms",
	Long: `Every list line of the glossary must read "- **Term**: definition".
Malformed entries and terms defined twice (case-insensitively) are reported.

With --fix, malformed entries are repaired in place. Duplicates are never
changed automatically.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _, err := getConfig().GlossaryPath()
		if err != nil {
			return err
		}

		res, err := glossary.LintFile(path)
		if err != nil {
			return err
		}

		fixed := false
		if lintFix && len(res.Violations) > 0 {
			if fixed, err = glossary.FixFile(path, res); err != nil {
				return err
			}
			getLogger().Debug("rewrote glossary", "path", path)
		}

		out := cmd.OutOrStdout()
		return report.NewWriter(themeFor(out)).RenderLint(out, filepath.Base(path), res, fixed)
	},
}

func init() {
	addFixFlag(lintCmd.Flags(), &lintFix, "Repair malformed entries in place")
	rootCmd.AddCommand(lintCmd)
}

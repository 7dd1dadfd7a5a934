package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/ubiq/internal/nav"
	"github.com/aidanlsb/ubiq/internal/report"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Check mkdocs navigation against the docs directory",
	Long: `Reports navigation entries of mkdocs.yml that point at documents that do
not exist, and markdown documents that no navigation entry references.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		mkdocs := c.Resolve(c.Nav.MkDocs)

		entries, err := nav.ParseFile(mkdocs)
		if err != nil {
			return err
		}
		checker, err := nav.NewChecker(c.Resolve(c.Nav.DocsDir), c.Root, c.Exclude)
		if err != nil {
			return err
		}
		res, err := checker.Check(entries)
		if err != nil {
			return err
		}
		getLogger().Debug("checked navigation", "entries", len(entries), "missing", len(res.Missing), "orphans", len(res.Orphans))

		out := cmd.OutOrStdout()
		return report.NewWriter(themeFor(out)).RenderNav(out, filepath.Base(mkdocs), res)
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}

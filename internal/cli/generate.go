package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/ubiq/internal/glossary"
	"github.com/aidanlsb/ubiq/internal/ui"
)

var generateDryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate-glossary",
	Short: "Build the glossary from business pages and context READMEs",
	Long: `Collects one entry per business-model page (named by the file) and one per
core-context directory with a README.md (named by the directory), using the
first paragraph of each document as the definition, and writes the sorted
glossary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		entries, err := glossary.Collect(glossary.Sources{
			BusinessDir: c.Resolve(c.Generate.BusinessDir),
			ContextsDir: c.Resolve(c.Generate.ContextsDir),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if generateDryRun {
			_, err := out.Write(glossary.Render(entries))
			return err
		}

		path := c.Resolve(c.Generate.Output)
		if err := glossary.Write(path, entries); err != nil {
			return err
		}
		rel, err := filepath.Rel(c.Root, path)
		if err != nil {
			rel = path
		}
		_, err = fmt.Fprintln(out, ui.Successf("Generated %s with %d unique terms.", filepath.ToSlash(rel), len(entries)))
		return err
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Print the glossary instead of writing it")
	rootCmd.AddCommand(generateCmd)
}

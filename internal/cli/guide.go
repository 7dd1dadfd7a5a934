package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/ubiq/docs"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Show the bundled guide",
	Long:  `Without a topic, lists the guide topics. With a topic, prints it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		topics, err := docs.Topics()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Fprintln(out, "Guide topics:")
			for _, t := range topics {
				fmt.Fprintf(out, "  %s\n", t)
			}
			return nil
		}

		data, err := docs.Topic(args[0])
		if err != nil {
			return fmt.Errorf("unknown guide topic %q (available: %s)", args[0], strings.Join(topics, ", "))
		}
		rendered, err := themeFor(out).Markdown(string(data))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

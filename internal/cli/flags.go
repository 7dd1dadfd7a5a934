package cli

import "github.com/spf13/pflag"

// addFixFlag registers the --fix flag shared by the rewriting commands.
func addFixFlag(fs *pflag.FlagSet, target *bool, usage string) {
	fs.BoolVar(target, "fix", false, usage)
}

package cli

import "github.com/spf13/cobra"

// nameFlags take a value; one given as the last token has none and is dropped.
var nameFlags = map[string]bool{
	"--project-name": true,
	"--bundle-name":  true,
}

// trimDanglingNameFlags removes a trailing naming flag that has no value, so
// it reads as absent instead of failing the parse. A naming flag always
// consumes the next token, even one that looks like a flag.
func trimDanglingNameFlags(args []string) []string {
	for i := 0; i < len(args); i++ {
		if !nameFlags[args[i]] {
			continue
		}
		if i == len(args)-1 {
			return args[:i]
		}
		i++
	}
	return args
}

// executeArgs runs cmd with args after dropping dangling naming flags.
func executeArgs(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(trimDanglingNameFlags(args))
	return cmd.Execute()
}

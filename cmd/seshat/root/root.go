package root

import (
	"github.com/flarebyte/seshat-lexis/cmd/seshat/diagnose"
	"github.com/flarebyte/seshat-lexis/cmd/seshat/rank"
	"github.com/flarebyte/seshat-lexis/cmd/seshat/version"
	"github.com/flarebyte/seshat-lexis/cmd/seshat/word"
	"github.com/flarebyte/seshat-lexis/cmd/seshat/words"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seshat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seshat",
		Short: "CLI: The mistress of the house of books serves rank queries over the top English words",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(words.Cmd)
	cmd.AddCommand(word.Cmd)
	cmd.AddCommand(rank.Cmd)
	cmd.AddCommand(diagnose.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

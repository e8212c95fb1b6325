package gen_cmd

import (
	"github.com/spf13/cobra"
)

func Init() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen",
		Args:  cobra.NoArgs,
		Short: "key and node identity generation",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	genCmd.AddCommand(
		genKeyCmd(),
		genHostIDCmd(),
	)
	genCmd.InitDefaultHelpCmd()
	return genCmd
}

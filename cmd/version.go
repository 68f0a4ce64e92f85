package cmd

import (
	constants "github.com/AshkanSharifii/blog/internal"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print daemon version",
	Long:  `This command prints the version of the daemon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Version:", constants.Version)
		return nil
	},
}

package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/sigfig/pkg/core/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		return output(cmd, info, func(w io.Writer) {
			fmt.Fprintf(w, "sigfig v%s\n", info.Version)
			fmt.Fprintf(w, "  API:        %s\n", info.API)
			fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

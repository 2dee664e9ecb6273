package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Configure and compile the native extension",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(current.result.Artifacts) == 0 {
			fmt.Fprintln(out, "no compiled modules found in", current.config.BuildDir)
			return nil
		}
		for _, artifact := range current.result.Artifacts {
			fmt.Fprintln(out, filepath.Join(current.config.BuildDir, filepath.FromSlash(artifact)))
		}
		return nil
	},
}

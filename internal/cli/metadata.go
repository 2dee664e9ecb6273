package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pyext "github.com/contriboss/python-extension-go"
)

func init() {
	rootCmd.AddCommand(metadataCmd)
}

var metadataCmd = &cobra.Command{
	Use:     "metadata",
	Aliases: []string{"egg_info"},
	Short:   "Print package metadata without building",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.config

		wheel, err := pyext.PlatformWheel(pyext.DefaultWheelFinalizer(cfg))(pyext.WheelOptions{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name: %s\n", cfg.Name)
		fmt.Fprintf(out, "Version: %s\n", cfg.Version)
		fmt.Fprintf(out, "Tag: %s\n", wheel.Tag())
		fmt.Fprintf(out, "Root-Is-Purelib: %t\n", wheel.Pure())
		return nil
	},
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	pyext "github.com/contriboss/python-extension-go"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the major.minor version only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the package version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		v := current.config.Version

		if versionShort {
			fmt.Fprintln(out, v.Short())
			return nil
		}

		if versionJSON {
			short, release := pyext.DocVersions(v)
			info := map[string]string{
				"version": short,
				"release": release,
				"tool":    buildVersion,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, v.String())
		return nil
	},
}

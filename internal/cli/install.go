package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	pyext "github.com/contriboss/python-extension-go"
)

var (
	installRoot   string
	installPrefix string
)

func init() {
	installCmd.Flags().StringVar(&installRoot, "root", "", "install everything relative to this alternate root directory")
	installCmd.Flags().StringVar(&installPrefix, "prefix", "", "installation prefix (overrides config)")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Build the native extension and install it into the platform library directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.config

		finalize := pyext.InstallToPlatlib(pyext.DefaultInstallFinalizer(cfg))
		opts, err := finalize(pyext.InstallOptions{Prefix: installPrefix})
		if err != nil {
			return err
		}

		dest := filepath.Join(opts.InstallLib, cfg.Name)
		if installRoot != "" {
			dest = filepath.Join(installRoot, dest)
		}

		installed, err := pyext.InstallArtifacts(cfg.BuildDir, current.result.Artifacts, dest)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, path := range installed {
			fmt.Fprintln(out, path)
		}
		return nil
	},
}

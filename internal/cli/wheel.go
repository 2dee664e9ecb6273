package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	pyext "github.com/contriboss/python-extension-go"
)

var wheelStageDir string

func init() {
	wheelCmd.Flags().StringVar(&wheelStageDir, "bdist-dir", "", "staging directory for wheel contents (default build/bdist.<platform>/wheel)")
	rootCmd.AddCommand(wheelCmd)
}

var wheelCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Build the native extension and stage a platform-specific wheel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.config

		finalize := pyext.PlatformWheel(pyext.DefaultWheelFinalizer(cfg))
		opts, err := finalize(pyext.WheelOptions{})
		if err != nil {
			return err
		}

		stage := wheelStageDir
		if stage == "" {
			stage = filepath.Join("build", "bdist."+opts.PlatName, "wheel")
		}

		if _, err := pyext.InstallArtifacts(cfg.BuildDir, current.result.Artifacts, filepath.Join(stage, cfg.Name)); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), opts.Filename())
		return nil
	},
}

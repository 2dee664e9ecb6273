package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pyext "github.com/contriboss/python-extension-go"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the native toolchain is installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := current.config
		out := cmd.OutOrStdout()

		checkers := []struct {
			name    pyext.StageName
			checker pyext.ToolChecker
		}{
			{pyext.StageConfigure, &pyext.ToolchainConfigurer{}},
			{pyext.StageBuild, &pyext.ToolchainBuilder{}},
		}

		var errs []error
		for _, c := range checkers {
			if err := c.checker.CheckTools(cfg); err != nil {
				fmt.Fprintf(out, "%-10s FAIL  %v\n", c.name, err)
				errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
				continue
			}
			fmt.Fprintf(out, "%-10s ok\n", c.name)
		}

		return errors.Join(errs...)
	},
}

package pyext

import (
	"context"
	"fmt"
	"runtime"

	"github.com/contriboss/python-extension-go/ctxlog"
)

var numCPU = runtime.NumCPU

// ToolchainBuilder compiles the extension in the workspace prepared by
// ToolchainConfigurer.
type ToolchainBuilder struct{}

// Name returns the stage name
func (b *ToolchainBuilder) Name() StageName {
	return StageBuild
}

// RequiredTools returns the tools needed to compile on the configured platform
func (b *ToolchainBuilder) RequiredTools(config *BuildConfig) []ToolRequirement {
	if config.platform().IsWindows() {
		return []ToolRequirement{
			{Name: config.configureTool(), Purpose: "CMake build driver"},
		}
	}
	return []ToolRequirement{
		{
			Name:         config.buildSystem(),
			Alternatives: []string{"gmake"},
			Purpose:      "Build automation tool",
		},
		{
			Name:         "cc",
			Alternatives: []string{"gcc", "clang"},
			Optional:     true,
			Purpose:      "C/C++ compiler",
		},
	}
}

// CheckTools verifies that the build tools are available
func (b *ToolchainBuilder) CheckTools(config *BuildConfig) error {
	return CheckRequiredTools(b.RequiredTools(config))
}

// Command constructs the build invocation.
//
// Windows uses the configure tool's build driver with the Release
// configuration. Elsewhere the build system runs with one job per CPU
// unless config.Jobs overrides it.
func (b *ToolchainBuilder) Command(config *BuildConfig) Command {
	if config.platform().IsWindows() {
		return Command{
			Name: config.configureTool(),
			Args: []string{"--build", ".", "--config", "Release"},
			Dir:  config.buildDir(),
			Env:  config.Env,
		}
	}

	return Command{
		Name: config.buildSystem(),
		Args: []string{fmt.Sprintf("-j%d", jobCount(config))},
		Dir:  config.buildDir(),
		Env:  config.Env,
	}
}

// Run compiles the extension. It must only be called after the configure
// stage returned successfully.
func (b *ToolchainBuilder) Run(ctx context.Context, config *BuildConfig, runner Runner) error {
	log := ctxlog.FromContext(ctx)

	cmd := b.Command(config)
	log.Info("compiling native extension", "dir", cmd.Dir)

	if config.Verbose {
		log.Info("running", "command", cmd.String(), "dir", cmd.Dir)
	}

	return stageError(StageBuild, cmd, runner.Run(ctx, cmd))
}

func jobCount(config *BuildConfig) int {
	jobs := config.Jobs
	if jobs <= 0 {
		jobs = numCPU()
	}
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}

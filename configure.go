package pyext

import (
	"context"
	"fmt"
	"os"

	"github.com/contriboss/python-extension-go/ctxlog"
)

// ToolchainConfigurer runs the configure step that generates build files in
// the build workspace.
type ToolchainConfigurer struct{}

// Name returns the stage name
func (c *ToolchainConfigurer) Name() StageName {
	return StageConfigure
}

// RequiredTools returns the tools needed to configure the build
func (c *ToolchainConfigurer) RequiredTools(config *BuildConfig) []ToolRequirement {
	return []ToolRequirement{
		{
			Name:    config.configureTool(),
			Purpose: "CMake build system",
		},
	}
}

// CheckTools verifies that the configure tool is available
func (c *ToolchainConfigurer) CheckTools(config *BuildConfig) error {
	return CheckRequiredTools(c.RequiredTools(config))
}

// Command constructs the configure invocation.
//
// The base command points the configure tool at the native sources and
// binds it to the interpreter. On windows the vcpkg triplet and toolchain
// file are appended.
func (c *ToolchainConfigurer) Command(config *BuildConfig) Command {
	args := []string{
		config.sourceDir(),
		"-DPYTHON_EXECUTABLE=" + resolveInterpreter(config),
	}

	if config.platform().IsWindows() {
		args = append(args,
			"-DVCPKG_TARGET_TRIPLET="+config.triplet(),
			"-DCMAKE_TOOLCHAIN_FILE="+config.toolchainFile(),
		)
	}

	// Add any custom configure args
	args = append(args, config.ConfigureArgs...)

	return Command{
		Name: config.configureTool(),
		Args: args,
		Dir:  config.buildDir(),
		Env:  config.Env,
	}
}

// Run creates the build workspace if needed and runs the configure command
// inside it.
func (c *ToolchainConfigurer) Run(ctx context.Context, config *BuildConfig, runner Runner) error {
	log := ctxlog.FromContext(ctx)

	cmd := c.Command(config)

	attrs := []any{"interpreter", resolveInterpreter(config)}
	if config.PythonVersion != "" {
		attrs = append(attrs, "python", config.PythonVersion)
	}
	log.Info("configuring native extension", attrs...)

	if err := os.MkdirAll(cmd.Dir, 0o755); err != nil {
		return fmt.Errorf("creating build directory %s: %w", cmd.Dir, err)
	}

	if config.Verbose {
		log.Info("running", "command", cmd.String(), "dir", cmd.Dir)
	}

	return stageError(StageConfigure, cmd, runner.Run(ctx, cmd))
}

// resolveInterpreter returns the configured interpreter, or the first of
// python3/python found on PATH. The bare name is returned when neither is
// found so the toolchain reports the problem itself.
func resolveInterpreter(config *BuildConfig) string {
	if config.InterpreterPath != "" {
		return config.InterpreterPath
	}
	for _, name := range []string{"python3", "python"} {
		if path, err := execLookPath(name); err == nil {
			return path
		}
	}
	return "python3"
}

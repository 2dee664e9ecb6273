package pyext

import "strings"

// Defaults for BuildConfig fields left empty.
const (
	DefaultBuildDir      = "cmake_build"
	DefaultSourceDir     = "../opensfm/src"
	DefaultConfigureTool = "cmake"
	DefaultBuildSystem   = "make"
	DefaultTriplet       = "x64-windows"
	DefaultToolchainFile = "../vcpkg/scripts/buildsystems/vcpkg.cmake"
)

// Command is a single external toolchain invocation.
type Command struct {
	Name string            // Executable to run
	Args []string          // Arguments, without the executable
	Dir  string            // Working directory
	Env  map[string]string // Extra environment variables
}

// Argv returns the executable followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String returns the command line as it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

// BuildResult contains the outcome of an orchestration run.
//
// After a run completes, this structure provides:
//   - Success status indicating if both stages completed
//   - Commands issued, in order, including the one that failed
//   - Artifacts found in the build workspace (relative to it)
//   - Error information if the run failed
type BuildResult struct {
	Success   bool      // True if configure and build both succeeded
	Commands  []Command // Commands issued, in order
	Artifacts []string  // Compiled modules found in the workspace
	Error     error     // Error if the run failed, nil otherwise
}

// BuildConfig contains configuration for the native build.
//
// Project identity:
//   - Name: distribution name used in wheel file names
//   - Version: release triple
//
// Toolchain:
//   - SourceDir: native project sources, relative to BuildDir or absolute
//   - BuildDir: build workspace shared by configure and build
//   - ConfigureTool: configure executable (cmake)
//   - BuildSystem: non-windows build executable (make)
//   - Triplet, ToolchainFile: windows-only configure arguments
//   - ConfigureArgs: extra arguments appended to the configure command
//   - Jobs: parallel jobs for make -j (0 = CPU count)
//
// Interpreter:
//   - InterpreterPath: Python executable the extension binds against
//   - PythonVersion: interpreter major.minor, used for wheel tags
//
// Installation:
//   - Prefix: install prefix for the default install scheme
//   - PlatLibDir: platform library directory name under Prefix (lib, lib64)
type BuildConfig struct {
	Name    string
	Version Version

	SourceDir     string
	BuildDir      string
	ConfigureTool string
	BuildSystem   string
	Triplet       string
	ToolchainFile string
	ConfigureArgs []string
	Env           map[string]string
	Jobs          int

	InterpreterPath string
	PythonVersion   string

	Prefix     string
	PlatLibDir string

	// Platform is the host profile. Empty means DetectPlatform().
	Platform Platform

	Verbose bool
}

func (c *BuildConfig) platform() Platform {
	if c.Platform != "" {
		return c.Platform
	}
	return DetectPlatform()
}

func (c *BuildConfig) buildDir() string {
	if c.BuildDir != "" {
		return c.BuildDir
	}
	return DefaultBuildDir
}

func (c *BuildConfig) sourceDir() string {
	if c.SourceDir != "" {
		return c.SourceDir
	}
	return DefaultSourceDir
}

func (c *BuildConfig) configureTool() string {
	if c.ConfigureTool != "" {
		return c.ConfigureTool
	}
	return DefaultConfigureTool
}

func (c *BuildConfig) buildSystem() string {
	if c.BuildSystem != "" {
		return c.BuildSystem
	}
	return DefaultBuildSystem
}

func (c *BuildConfig) triplet() string {
	if c.Triplet != "" {
		return c.Triplet
	}
	return DefaultTriplet
}

func (c *BuildConfig) toolchainFile() string {
	if c.ToolchainFile != "" {
		return c.ToolchainFile
	}
	return DefaultToolchainFile
}

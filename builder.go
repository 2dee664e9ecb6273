package pyext

import "context"

// Stage defines one step of the native build that the Orchestrator runs.
//
// Two stages exist: ToolchainConfigurer (generates build files in the
// workspace) and ToolchainBuilder (compiles using those files).
//
// # Stage Lifecycle
//
//  1. Command() - builds a fresh invocation from the config
//  2. Run() - executes it and blocks until the process exits
//
// # Example Implementation
//
//	type InstallStage struct{}
//
//	func (s *InstallStage) Name() StageName {
//	    return "install"
//	}
//
//	func (s *InstallStage) Command(config *BuildConfig) Command {
//	    return Command{Name: "cmake", Args: []string{"--install", "."}, Dir: config.BuildDir}
//	}
//
//	func (s *InstallStage) Run(ctx context.Context, config *BuildConfig, runner Runner) error {
//	    return runner.Run(ctx, s.Command(config))
//	}
//
// # Thread Safety
//
// Stage implementations are stateless. Orchestration itself is sequential,
// so a stage never runs concurrently with another stage of the same run.
type Stage interface {
	// Name returns the stage name used in logs and errors.
	Name() StageName

	// Command constructs the invocation for this stage.
	//
	// The command is derived from config and the host platform on every
	// call; it is never cached between runs.
	Command(config *BuildConfig) Command

	// Run executes the stage through runner.
	//
	// Returns a *StageError when the toolchain exits non-zero. The caller
	// must not start the next stage unless Run returned nil.
	Run(ctx context.Context, config *BuildConfig, runner Runner) error
}

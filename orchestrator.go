package pyext

import (
	"context"
	"fmt"

	"github.com/contriboss/python-extension-go/ctxlog"
)

// State is a step of the orchestration state machine.
//
//	INIT → CONFIGURING → BUILDING → DONE
//	          ↓             ↓
//	        FAILED ←────────┘
//
// FAILED and DONE are terminal.
type State int

// Orchestration states
const (
	StateInit State = iota
	StateConfiguring
	StateBuilding
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateConfiguring:
		return "CONFIGURING"
	case StateBuilding:
		return "BUILDING"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Orchestrator sequences the configure and build stages.
//
// # Usage
//
//	orch := pyext.NewOrchestrator(config, pyext.NewExecRunner())
//	result, err := orch.Run(ctx)
//	if errors.Is(err, pyext.ErrConfigureFailed) {
//	    // the toolchain already printed its diagnostics
//	}
//
// # Process Flow
//
//  1. INIT → CONFIGURING: run ToolchainConfigurer
//  2. CONFIGURING → BUILDING: run ToolchainBuilder, only after configure exited 0
//  3. BUILDING → DONE: collect compiled modules from the workspace
//
// Any stage error moves the orchestrator to FAILED and is returned
// unchanged. There are no retries and no partial results. An orchestrator
// runs once; create a new one to run again.
//
// # Thread Safety
//
// Orchestrator is NOT thread-safe. Run is expected to be called once from
// the packaging command handler.
type Orchestrator struct {
	config *BuildConfig
	runner Runner
	stages []stageStep
	state  State
}

type stageStep struct {
	stage Stage
	state State
}

// NewOrchestrator creates an orchestrator with the standard configure and
// build stages.
func NewOrchestrator(config *BuildConfig, runner Runner) *Orchestrator {
	return &Orchestrator{
		config: config,
		runner: runner,
		stages: []stageStep{
			{stage: &ToolchainConfigurer{}, state: StateConfiguring},
			{stage: &ToolchainBuilder{}, state: StateBuilding},
		},
		state: StateInit,
	}
}

// State returns the current orchestration state.
func (o *Orchestrator) State() State {
	return o.state
}

// Run configures and builds the native extension.
//
// Returns:
//   - BuildResult with Success=true and Artifacts on success
//   - BuildResult with Success=false and the stage error on failure
//   - ErrAlreadyRun if the orchestrator is not in INIT
func (o *Orchestrator) Run(ctx context.Context) (*BuildResult, error) {
	if o.state != StateInit {
		return nil, fmt.Errorf("%w: state %s", ErrAlreadyRun, o.state)
	}

	log := ctxlog.FromContext(ctx)
	result := &BuildResult{
		Success:  false,
		Commands: []Command{},
	}

	for _, step := range o.stages {
		o.state = step.state
		log.Debug("orchestration state", "state", o.state)

		result.Commands = append(result.Commands, step.stage.Command(o.config))
		if err := step.stage.Run(ctx, o.config, o.runner); err != nil {
			o.state = StateFailed
			result.Error = err
			return result, err
		}
	}

	artifacts, err := CollectArtifacts(o.config.buildDir())
	if err != nil {
		o.state = StateFailed
		result.Error = err
		return result, err
	}

	o.state = StateDone
	result.Artifacts = artifacts
	result.Success = true
	log.Info("native build complete", "artifacts", len(artifacts))
	return result, nil
}

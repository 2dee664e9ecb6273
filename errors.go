package pyext

import (
	"errors"
	"fmt"

	"github.com/magefile/mage/mg"
)

// StageName identifies an orchestration stage.
type StageName string

// Stage names
const (
	StageConfigure StageName = "configure"
	StageBuild     StageName = "build"
)

var (
	// ErrConfigureFailed matches any error from a failed configure stage.
	ErrConfigureFailed = errors.New("native configure failed")

	// ErrBuildFailed matches any error from a failed build stage.
	ErrBuildFailed = errors.New("native build failed")

	// ErrAlreadyRun is returned when Run is called on an orchestrator that
	// has already reached DONE or FAILED.
	ErrAlreadyRun = errors.New("orchestrator already ran")
)

// StageError reports a toolchain stage that did not complete.
//
// It unwraps to the runner error, matches ErrConfigureFailed or
// ErrBuildFailed with errors.Is, and exposes the toolchain's exit code
// through ExitStatus so mg.ExitStatus can read it.
type StageError struct {
	Stage   StageName
	Command Command
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the failed stage.
func (e *StageError) Is(target error) bool {
	switch e.Stage {
	case StageConfigure:
		return target == ErrConfigureFailed
	case StageBuild:
		return target == ErrBuildFailed
	}
	return false
}

// ExitStatus returns the toolchain exit code, or 1 if the process never ran.
func (e *StageError) ExitStatus() int {
	return mg.ExitStatus(e.Err)
}

func stageError(stage StageName, cmd Command, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Command: cmd, Err: err}
}

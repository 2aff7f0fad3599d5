package runner

import "github.com/aretw0/testall/pkg/plan"

// StepResult records the outcome of one executed step.
type StepResult struct {
	Index   int // 1-based position in the plan
	Step    plan.Step
	Started bool
	Code    int
	Err     error
}

// Report lists the steps that were executed, in order.
type Report struct {
	Steps []StepResult
}

// LaunchFailures returns the steps whose command could not be started.
func (r *Report) LaunchFailures() []StepResult {
	var failed []StepResult
	for _, s := range r.Steps {
		if !s.Started {
			failed = append(failed, s)
		}
	}
	return failed
}

// ExitCode is 0 when every step was launched and 1 otherwise.
// Child exit codes are not consulted.
func (r *Report) ExitCode() int {
	if len(r.LaunchFailures()) > 0 {
		return 1
	}
	return 0
}

/*
Package runner executes a plan of collaborator commands strictly in order.

Each step blocks until its child process has exited. Announcements are printed
on the output stream immediately before their step, and every child writes
straight to the same streams, so the terminal shows one interleaved, ordered
transcript.

The runner is best-effort: a step that exits non-zero or cannot be launched at
all never prevents the next step from running. Launch failures are reported on
the error stream as they happen and are counted in the Report. Only context
cancellation (a user interrupt) stops a run early.

Working directories are applied per child through the launcher; the runner never
changes the process-wide working directory.

# Usage

	r := runner.New(
		runner.WithLogger(logger),
		runner.WithBaseDir(wd),
	)

	report, err := r.Run(ctx, plan.Default())
	if err != nil {
		// interrupted
	}
	os.Exit(report.ExitCode())
*/
package runner

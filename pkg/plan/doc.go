// Package plan defines the ordered list of steps executed by the runner.
//
// The canonical plan is compiled into the binary from steps.yaml and exposed
// through Default. Each step names a collaborator command, its literal
// arguments, an optional announcement printed before it runs, and an optional
// working directory relative to the run's base directory.
//
//	p := plan.Default()
//	for _, s := range p {
//	    fmt.Println(s) // "test27", ..., "runall pypy"
//	}
package plan

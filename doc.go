/*
Package testall runs a fixed sequence of external test-suite commands.

The sequence covers the per-interpreter unit-test runners (test27, test33,
testpypy, testpypy3) followed by the integration runner (runall 2, runall 3,
runall pypy) inside the integration_tests directory. Steps run one at a time
and always run to the end: a failing or missing suite never stops the ones
after it.

The pieces are split along the usual lines:

  - pkg/plan: the compiled-in, ordered step catalogue.
  - pkg/runner: the sequential, best-effort executor.
  - pkg/adapters/process: resolves and launches collaborator commands.
  - cmd/testall: the command-line entry point.
*/
package testall

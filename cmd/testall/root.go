package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/testall"
	"github.com/aretw0/testall/internal/cli"
	"github.com/aretw0/testall/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "testall",
	Short: "Run every interpreter test suite, then the integration tests",
	Long: `testall runs test27, test33, testpypy and testpypy3 from the current directory,
then "runall 2", "runall 3" and "runall pypy" from integration_tests.

Every step runs even if an earlier one fails. The exit status is non-zero only
when a step could not be launched at all. Set ` + logging.EnvDebug + `=1 to trace launches on stderr.`,
	Version:       strings.TrimSpace(testall.Version),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Stop()

		code := cli.Execute(sc, cli.RunOptions{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
			Logger: logging.FromEnv(),
		})
		if code != cli.ExitOK {
			return exitError(code)
		}
		return nil
	},
}

// exitError carries a process exit code out of RunE.
type exitError int

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

// Execute runs the root command and exits with the run's status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := err.(exitError); ok {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

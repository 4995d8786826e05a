package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/feuerwerk/cmd/feuerwerk/handlers"
)

// Run returns the run command.
//
// The run command executes one load-test session and exits with a code that
// reflects the outcome.
func Run() *cobra.Command {
	var flags workloadFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a load test and wait for it to finish",
		Long: `Run creates a workload with one container per replica, waits until the
first container exits and deletes the workload again.

Configuration is read from the config file, then from the environment
(NUMBER_OF_CONTAINERS, IMAGE_NAME and FEUERWERK_*), then from flags.

Exit codes:
  0  containers exited without errors
  1  a container exited with a non-zero code
  2  the cluster did not report container statuses
  3  no container was observed terminating
  4  the session could not be started or observed

Example:
  feuerwerk run --replicas 10 --image registry.example.com/loadtest:latest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), cmd.OutOrStdout(), flags.configPath, flags.apply(cmd))
		},
	}

	flags.bind(cmd)

	return cmd
}

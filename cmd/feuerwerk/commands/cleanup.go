package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/feuerwerk/cmd/feuerwerk/handlers"
)

// Cleanup returns the cleanup command.
//
// Cleanup deletes a workload left behind by a crashed session.
func Cleanup() *cobra.Command {
	var opts handlers.CleanupOptions

	cmd := &cobra.Command{
		Use:   "cleanup NAME",
		Short: "Delete a leftover load-test workload",
		Long: `Cleanup deletes a load-test workload and its pods.

Deleting a workload that no longer exists succeeds.

Example:
  feuerwerk cleanup fw-3f1c9a0e2b7d4c6a8e5f1b2c3d4e5f6a -n loadtests`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.Cleanup(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Namespace, "namespace", "n", "default", "Namespace of the workload")
	cmd.Flags().StringVar(&opts.Kubeconfig, "kubeconfig", "", "Path to kubeconfig (defaults to $KUBECONFIG or ~/.kube/config)")
	cmd.Flags().StringVar(&opts.KubeContext, "context", "", "Kubeconfig context to use")
	cmd.Flags().Int64Var(&opts.GracePeriodSeconds, "grace-period", 5, "Grace period in seconds for workload deletion")

	return cmd
}

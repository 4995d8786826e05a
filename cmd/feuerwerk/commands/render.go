package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/feuerwerk/cmd/feuerwerk/handlers"
)

// Render returns the render command.
func Render() *cobra.Command {
	var flags workloadFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the workload manifest without creating it",
		Long: `Render prints the Deployment that run would create as YAML.

Example:
  feuerwerk render --replicas 3 --image loadtest:latest | kubectl apply --dry-run=server -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(cmd.OutOrStdout(), flags.configPath, flags.apply(cmd))
		},
	}

	flags.bind(cmd)

	return cmd
}

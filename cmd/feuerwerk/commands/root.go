// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/feuerwerk/cmd/feuerwerk/handlers"
)

// Root returns the root command for the feuerwerk CLI.
func Root() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "feuerwerk",
		Short: "Run containerized load tests on Kubernetes",
		// Outcome errors carry their own exit codes and messages.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			handlers.SetupLogging(debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose development logging")

	cmd.AddCommand(Run())
	cmd.AddCommand(Render())
	cmd.AddCommand(Cleanup())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/feuerwerk/internal/config"
)

// workloadFlags are the flags shared by run and render.
type workloadFlags struct {
	configPath    string
	replicas      int
	image         string
	pullPolicy    string
	name          string
	namespace     string
	allNamespaces bool
	kubeconfig    string
	kubeContext   string
	gracePeriod   int64
}

func (f *workloadFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "Path to configuration file (default feuerwerk.yaml when present)")
	fs.IntVarP(&f.replicas, "replicas", "r", 0, "Number of load-test containers")
	fs.StringVarP(&f.image, "image", "i", "", "Container image reference")
	fs.StringVar(&f.pullPolicy, "pull-policy", "", "Image pull policy (IfNotPresent, Always, Never)")
	fs.StringVar(&f.name, "name", "", "Workload name (generated when empty)")
	fs.StringVarP(&f.namespace, "namespace", "n", "", "Namespace to run the workload in")
	fs.BoolVarP(&f.allNamespaces, "all-namespaces", "A", false, "Watch pods of the run in every namespace")
	fs.StringVar(&f.kubeconfig, "kubeconfig", "", "Path to kubeconfig (defaults to $KUBECONFIG or ~/.kube/config)")
	fs.StringVar(&f.kubeContext, "context", "", "Kubeconfig context to use")
	fs.Int64Var(&f.gracePeriod, "grace-period", 0, "Grace period in seconds for workload deletion")
}

// apply returns a function that overrides config values with flags the user set.
func (f *workloadFlags) apply(cmd *cobra.Command) func(*config.Config) {
	changed := cmd.Flags().Changed
	return func(cfg *config.Config) {
		if changed("replicas") {
			cfg.Replicas = f.replicas
		}
		if changed("image") {
			cfg.Image = f.image
		}
		if changed("pull-policy") {
			cfg.PullPolicy = f.pullPolicy
		}
		if changed("name") {
			cfg.Name = f.name
		}
		if changed("namespace") {
			cfg.Namespace = f.namespace
		}
		if changed("all-namespaces") {
			cfg.AllNamespaces = f.allNamespaces
		}
		if changed("kubeconfig") {
			cfg.Kubeconfig = f.kubeconfig
		}
		if changed("context") {
			cfg.KubeContext = f.kubeContext
		}
		if changed("grace-period") {
			cfg.GracePeriodSeconds = f.gracePeriod
		}
	}
}

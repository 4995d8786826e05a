package handlers

import (
	"io"

	"github.com/imamik/feuerwerk/internal/config"
	"github.com/imamik/feuerwerk/internal/workload"
)

// Render handles the render command. It prints the workload manifest without
// contacting the cluster.
func Render(out io.Writer, configPath string, applyFlags func(*config.Config)) error {
	cfg, err := loadConfig(configPath, applyFlags)
	if err != nil {
		return fatal(err)
	}
	wopts, err := cfg.WorkloadOptions()
	if err != nil {
		return fatal(err)
	}

	spec, err := workload.Build(wopts)
	if err != nil {
		return fatal(err)
	}
	manifest, err := spec.Manifest(cfg.Namespace)
	if err != nil {
		return fatal(err)
	}

	_, err = out.Write(manifest)
	return err
}

package handlers

import (
	"os"

	"github.com/go-logr/logr"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// SetupLogging installs the zap-backed logger used by every package. Debug
// switches to development mode, which also enables V(1) messages.
func SetupLogging(debug bool) logr.Logger {
	log := zap.New(
		zap.UseDevMode(debug),
		zap.WriteTo(os.Stderr),
	)
	logf.SetLogger(log)
	return log
}

func logger() logr.Logger {
	return logf.Log.WithName("feuerwerk")
}

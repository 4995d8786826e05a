package k8s

import (
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	utilnet "k8s.io/apimachinery/pkg/util/net"
)

// IsNotFound reports whether err means the resource does not exist.
func IsNotFound(err error) bool {
	return apierrors.IsNotFound(err)
}

// IsRetryable reports whether err is a transient API failure worth retrying:
// throttling, server timeouts, conflicts, 5xx responses and dropped connections.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return apierrors.IsServerTimeout(err) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsTooManyRequests(err) ||
		apierrors.IsConflict(err) ||
		apierrors.IsInternalError(err) ||
		apierrors.IsServiceUnavailable(err) ||
		utilnet.IsConnectionReset(err) ||
		utilnet.IsProbableEOF(err)
}

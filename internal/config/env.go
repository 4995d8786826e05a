package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by ApplyEnv. NUMBER_OF_CONTAINERS and IMAGE_NAME
// are kept for existing pipelines; the FEUERWERK_ variants take precedence.
const (
	EnvLegacyReplicas = "NUMBER_OF_CONTAINERS"
	EnvLegacyImage    = "IMAGE_NAME"

	EnvReplicas       = "FEUERWERK_REPLICAS"
	EnvImage          = "FEUERWERK_IMAGE"
	EnvPullPolicy     = "FEUERWERK_PULL_POLICY"
	EnvName           = "FEUERWERK_NAME"
	EnvNamespace      = "FEUERWERK_NAMESPACE"
	EnvAllNamespaces  = "FEUERWERK_ALL_NAMESPACES"
	EnvKubeconfig     = "FEUERWERK_KUBECONFIG"
	EnvKubeContext    = "FEUERWERK_KUBE_CONTEXT"
	EnvGracePeriod    = "FEUERWERK_GRACE_PERIOD_SECONDS"
	EnvDeleteTimeout  = "FEUERWERK_DELETE_TIMEOUT"
	EnvWatchBackoff   = "FEUERWERK_WATCH_BACKOFF"
	EnvMaxRetries     = "FEUERWERK_WATCH_MAX_RETRIES"
	EnvMaxNoContainer = "FEUERWERK_WATCH_MAX_NO_CONTAINER"
	EnvPushgateway    = "FEUERWERK_PUSHGATEWAY_URL"
	EnvReportBucket   = "FEUERWERK_REPORT_BUCKET"
	EnvReportEndpoint = "FEUERWERK_REPORT_ENDPOINT"
	EnvReportRegion   = "FEUERWERK_REPORT_REGION"
	EnvReportAccess   = "FEUERWERK_REPORT_ACCESS_KEY"
	EnvReportSecret   = "FEUERWERK_REPORT_SECRET_KEY"
	EnvReportPrefix   = "FEUERWERK_REPORT_PREFIX"
)

// ApplyEnv overrides fields from the environment. Replica counts must parse as
// integers; other malformed values keep the current setting.
func (c *Config) ApplyEnv() error {
	for _, key := range []string{EnvLegacyReplicas, EnvReplicas} {
		if val := os.Getenv(key); val != "" {
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("%s must be an integer, got %q", key, val)
			}
			c.Replicas = n
		}
	}

	c.Image = parseString(EnvLegacyImage, c.Image)
	c.Image = parseString(EnvImage, c.Image)
	c.PullPolicy = parseString(EnvPullPolicy, c.PullPolicy)
	c.Name = parseString(EnvName, c.Name)
	c.Namespace = parseString(EnvNamespace, c.Namespace)
	c.AllNamespaces = parseBool(EnvAllNamespaces, c.AllNamespaces)
	c.Kubeconfig = parseString(EnvKubeconfig, c.Kubeconfig)
	c.KubeContext = parseString(EnvKubeContext, c.KubeContext)

	c.GracePeriodSeconds = int64(parseInt(EnvGracePeriod, int(c.GracePeriodSeconds)))
	c.DeleteTimeout = parseDuration(EnvDeleteTimeout, c.DeleteTimeout)
	c.Watch.Backoff = parseDuration(EnvWatchBackoff, c.Watch.Backoff)
	c.Watch.MaxRetries = parseInt(EnvMaxRetries, c.Watch.MaxRetries)
	c.Watch.MaxNoContainer = parseInt(EnvMaxNoContainer, c.Watch.MaxNoContainer)

	c.Metrics.PushgatewayURL = parseString(EnvPushgateway, c.Metrics.PushgatewayURL)

	c.Report.Bucket = parseString(EnvReportBucket, c.Report.Bucket)
	c.Report.Endpoint = parseString(EnvReportEndpoint, c.Report.Endpoint)
	c.Report.Region = parseString(EnvReportRegion, c.Report.Region)
	c.Report.AccessKey = parseString(EnvReportAccess, c.Report.AccessKey)
	c.Report.SecretKey = parseString(EnvReportSecret, c.Report.SecretKey)
	c.Report.Prefix = parseString(EnvReportPrefix, c.Report.Prefix)

	return nil
}

func parseString(envVar, defaultVal string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultVal
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}

func parseBool(envVar string, defaultVal bool) bool {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}

	return b
}

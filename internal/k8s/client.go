// Package k8s provides a Kubernetes client wrapper for load-test workloads.
package k8s

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/imamik/feuerwerk/internal/util/ptr"
)

// AllNamespaces lists pods across every namespace.
const AllNamespaces = metav1.NamespaceAll

// Client wraps the Kubernetes API operations a load-test session needs.
type Client struct {
	clientset kubernetes.Interface
}

// RESTConfig resolves a REST config. An empty kubeconfigPath uses the default
// loading rules ($KUBECONFIG, ~/.kube/config, then in-cluster); an empty
// kubeContext keeps the current context.
func RESTConfig(kubeconfigPath, kubeContext string) (*rest.Config, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfigPath != "" {
		rules.ExplicitPath = kubeconfigPath
	}

	overrides := &clientcmd.ConfigOverrides{}
	if kubeContext != "" {
		overrides.CurrentContext = kubeContext
	}

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build kubeconfig: %w", err)
	}
	return config, nil
}

// NewClient creates a new Kubernetes client from a kubeconfig file.
func NewClient(kubeconfigPath, kubeContext string) (*Client, error) {
	config, err := RESTConfig(kubeconfigPath, kubeContext)
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return &Client{clientset: clientset}, nil
}

// NewFromClientset creates a Client from a pre-configured clientset.
// This is useful for testing with fake clients.
func NewFromClientset(clientset kubernetes.Interface) *Client {
	return &Client{clientset: clientset}
}

// CreateDeployment submits a deployment once.
func (c *Client) CreateDeployment(ctx context.Context, deployment *appsv1.Deployment) (*appsv1.Deployment, error) {
	created, err := c.clientset.AppsV1().Deployments(deployment.Namespace).
		Create(ctx, deployment, metav1.CreateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment %s/%s: %w",
			deployment.Namespace, deployment.Name, err)
	}
	return created, nil
}

// DeleteDeployment deletes a deployment with foreground propagation, so its
// pods are removed before the deployment itself is reported deleted.
func (c *Client) DeleteDeployment(ctx context.Context, namespace, name string, gracePeriodSeconds int64) error {
	err := c.clientset.AppsV1().Deployments(namespace).Delete(ctx, name, metav1.DeleteOptions{
		GracePeriodSeconds: ptr.Int64(gracePeriodSeconds),
		PropagationPolicy:  ptr.To(metav1.DeletePropagationForeground),
	})
	if err != nil {
		return fmt.Errorf("failed to delete deployment %s/%s: %w", namespace, name, err)
	}
	return nil
}

// ListPods returns pods matching a label selector. Pass AllNamespaces to
// search the whole cluster.
func (c *Client) ListPods(ctx context.Context, namespace, labelSelector string) ([]corev1.Pod, error) {
	podList, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: labelSelector,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}

	return podList.Items, nil
}

//go:build e2e

package e2e

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/imamik/feuerwerk/internal/orchestration"
	"github.com/imamik/feuerwerk/internal/runner"
	"github.com/imamik/feuerwerk/internal/watcher"
	"github.com/imamik/feuerwerk/internal/workload"
)

func newRunner() *runner.Runner {
	log := logf.Log.WithName("e2e")
	orch := orchestration.New(client, log, orchestration.Options{GracePeriodSeconds: 0})
	return runner.New(orch, runner.Options{
		Namespace: namespace,
		Budget: watcher.Budget{
			MaxRetries:     30,
			MaxNoContainer: 60,
			Backoff:        2 * time.Second,
		},
		DeleteTimeout: time.Minute,
		Log:           log,
	})
}

func expectWorkloadGone(name string) {
	Eventually(func() bool {
		_, err := clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
		return apierrors.IsNotFound(err)
	}).WithTimeout(2 * time.Minute).WithPolling(2 * time.Second).Should(BeTrue())
}

var _ = Describe("Load-test session", func() {
	It("reports success when a container exits with code 0", func() {
		report, err := newRunner().Run(ctx, workload.Options{
			Replicas:   2,
			Image:      image,
			PullPolicy: workload.PullIfNotPresent,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(report.ExitCode).To(Equal(runner.ExitSucceeded))
		Expect(report.Message).To(Equal(runner.MessageSucceeded))
		Expect(report.TeardownErr).To(BeEmpty())

		expectWorkloadGone(report.Name)
	})

	It("rejects an invalid replica count without touching the cluster", func() {
		report, err := newRunner().Run(ctx, workload.Options{Replicas: 0, Image: image})
		Expect(err).To(MatchError(workload.ErrInvalidReplicaCount))
		Expect(report.ExitCode).To(Equal(runner.ExitFatal))

		deployments, err := clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(deployments.Items).To(BeEmpty())
	})

	It("deletes leftover workloads idempotently", func() {
		spec, err := workload.Build(workload.Options{Replicas: 1, Image: image})
		Expect(err).NotTo(HaveOccurred())

		orch := orchestration.New(client, logf.Log.WithName("e2e"), orchestration.Options{})
		handle, err := orch.Create(ctx, spec, namespace)
		Expect(err).NotTo(HaveOccurred())

		Expect(orch.Delete(ctx, handle)).To(Succeed())
		Expect(orch.Delete(ctx, handle)).To(Succeed())
		expectWorkloadGone(handle.Name)
	})
})

package collect

import (
	"context"

	"k8s.io/client-go/kubernetes"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// Fetcher is the listing surface the pipeline consumes. It exists so the
// graph construction can be driven from fixture listings in tests; the only
// production implementation is ClusterFetcher.
type Fetcher interface {
	Namespaces(ctx context.Context) ([]string, error)
	Pods(ctx context.Context, namespaces []string) ([]model.Pod, error)
	PVCs(ctx context.Context, namespaces []string) ([]model.PersistentVolumeClaim, error)
	PVs(ctx context.Context) ([]model.PersistentVolume, error)
	Volumes(ctx context.Context) ([]model.Volume, error)
}

// ClusterFetcher lists resources from a live cluster. Its lifetime is one
// invocation; nothing here is cached or shared.
type ClusterFetcher struct {
	Client kubernetes.Interface
}

func (f ClusterFetcher) Namespaces(ctx context.Context) ([]string, error) {
	return Namespaces(ctx, f.Client)
}

func (f ClusterFetcher) Pods(ctx context.Context, namespaces []string) ([]model.Pod, error) {
	return Pods(ctx, f.Client, namespaces)
}

func (f ClusterFetcher) PVCs(ctx context.Context, namespaces []string) ([]model.PersistentVolumeClaim, error) {
	return PVCs(ctx, f.Client, namespaces)
}

func (f ClusterFetcher) PVs(ctx context.Context) ([]model.PersistentVolume, error) {
	return PVs(ctx, f.Client)
}

func (f ClusterFetcher) Volumes(ctx context.Context) ([]model.Volume, error) {
	return Volumes(ctx, f.Client)
}

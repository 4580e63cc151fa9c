package collect

import (
	"context"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// Volumes reads the cluster volume descriptors: a fresh PersistentVolume
// listing flattened to name/phase/capacity. The graph builder matches these
// back against PV nodes by name for the aggregation annotation, so they are
// fetched independently of PVs.
func Volumes(ctx context.Context, cs kubernetes.Interface) ([]model.Volume, error) {
	list, err := cs.CoreV1().PersistentVolumes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, listError("volumes", "", err)
	}

	var out []model.Volume
	for _, pv := range list.Items {
		capacity := ""
		if qty, ok := pv.Spec.Capacity[v1.ResourceStorage]; ok {
			capacity = qty.String()
		}

		out = append(out, model.Volume{
			Name:     pv.Name,
			Phase:    string(pv.Status.Phase),
			Capacity: capacity,
		})
	}

	return out, nil
}

package collect

import (
	"context"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// PVs lists persistent volumes cluster-wide. Namespace filters never apply
// here; PVs are cluster-scoped and are looked up by name only.
func PVs(ctx context.Context, cs kubernetes.Interface) ([]model.PersistentVolume, error) {
	list, err := cs.CoreV1().PersistentVolumes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, listError("persistentvolumes", "", err)
	}

	var out []model.PersistentVolume
	for _, pv := range list.Items {
		capacity := ""
		if qty, ok := pv.Spec.Capacity[v1.ResourceStorage]; ok {
			capacity = qty.String()
		}

		claimNS, claimName := "", ""
		if pv.Spec.ClaimRef != nil {
			claimNS = pv.Spec.ClaimRef.Namespace
			claimName = pv.Spec.ClaimRef.Name
		}

		out = append(out, model.PersistentVolume{
			Name:           pv.Name,
			Phase:          string(pv.Status.Phase),
			Capacity:       capacity,
			ClaimNamespace: claimNS,
			ClaimName:      claimName,
		})
	}

	return out, nil
}

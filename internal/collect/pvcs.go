package collect

import (
	"context"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// PVCs lists claims in the given namespaces (all namespaces when the slice
// is empty) with their phase, requested storage size, and bound PV name.
func PVCs(ctx context.Context, cs kubernetes.Interface, namespaces []string) ([]model.PersistentVolumeClaim, error) {
	var out []model.PersistentVolumeClaim

	for _, ns := range listScopes(namespaces) {
		list, err := cs.CoreV1().PersistentVolumeClaims(ns).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, listError("persistentvolumeclaims", ns, err)
		}

		for _, pvc := range list.Items {
			size := ""
			if qty, ok := pvc.Spec.Resources.Requests[v1.ResourceStorage]; ok {
				size = qty.String()
			}

			out = append(out, model.PersistentVolumeClaim{
				Namespace:     pvc.Namespace,
				Name:          pvc.Name,
				Phase:         string(pvc.Status.Phase),
				RequestedSize: size,
				VolumeName:    pvc.Spec.VolumeName,
			})
		}
	}

	return out, nil
}

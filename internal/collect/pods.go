package collect

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// Pods lists pods in the given namespaces (all namespaces when the slice is
// empty) and flattens each into a model.Pod with its PVC claim references.
func Pods(ctx context.Context, cs kubernetes.Interface, namespaces []string) ([]model.Pod, error) {
	var out []model.Pod

	for _, ns := range listScopes(namespaces) {
		list, err := cs.CoreV1().Pods(ns).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, listError("pods", ns, err)
		}

		for _, pod := range list.Items {
			claims := []string{}
			seen := map[string]bool{}
			for _, vol := range pod.Spec.Volumes {
				if vol.PersistentVolumeClaim == nil {
					continue
				}
				name := vol.PersistentVolumeClaim.ClaimName
				if seen[name] {
					continue
				}
				seen[name] = true
				claims = append(claims, name)
			}

			out = append(out, model.Pod{
				Namespace:  pod.Namespace,
				Name:       pod.Name,
				Phase:      string(pod.Status.Phase),
				ClaimNames: claims,
			})
		}
	}

	return out, nil
}

// listScopes maps an empty namespace set to the single all-namespaces list
// call ("" scope) and a non-empty set to one call per namespace.
func listScopes(namespaces []string) []string {
	if len(namespaces) == 0 {
		return []string{""}
	}
	return namespaces
}

// Package graph turns filtered resource listings into the node/edge model
// handed to the renderers. Construction is single-pass per relation: pods
// pull in the claims they mount, resolved claims pull in their volumes, and
// volumes pick up their cluster descriptor. Unresolvable references become
// visible status annotations, never silent drops and never dangling edges.
package graph

import (
	"fmt"

	"github.com/glovecchi0/pods-graph/internal/model"
)

// Build constructs the storage topology graph. pods are the filtered entry
// points; pvcs, pvs and volumes are the full listings for the selected
// namespaces so a pod's chain resolves even through resources the filters
// never matched. The result is sorted and deterministic for a given input.
func Build(pods []model.Pod, pvcs []model.PersistentVolumeClaim, pvs []model.PersistentVolume, volumes []model.Volume) *model.Graph {
	g := model.NewGraph()

	pvcByKey := make(map[string]model.PersistentVolumeClaim, len(pvcs))
	for _, pvc := range pvcs {
		pvcByKey[pvc.Namespace+"/"+pvc.Name] = pvc
	}
	pvByName := make(map[string]model.PersistentVolume, len(pvs))
	for _, pv := range pvs {
		pvByName[pv.Name] = pv
	}
	volByName := make(map[string]model.Volume, len(volumes))
	for _, vol := range volumes {
		volByName[vol.Name] = vol
	}

	// Pods and their claim references. A claim missing from the listing
	// still gets a node, in a synthetic not-found state, so the dangling
	// reference shows up in the output instead of vanishing.
	var resolved []model.PersistentVolumeClaim
	seenPVC := map[string]bool{}

	for _, pod := range pods {
		podID := g.AddNode(model.Node{
			Kind:      model.KindPod,
			Namespace: pod.Namespace,
			Name:      pod.Name,
			Status:    phase(pod.Phase),
			Label:     podLabel(pod.Name, phase(pod.Phase)),
		})

		for _, claim := range pod.ClaimNames {
			pvc, ok := pvcByKey[pod.Namespace+"/"+claim]
			var pvcID string
			if ok {
				pvcID = g.AddNode(pvcNode(pvc))
				if !seenPVC[pvcID] {
					seenPVC[pvcID] = true
					resolved = append(resolved, pvc)
				}
			} else {
				pvcID = g.AddNode(model.Node{
					Kind:      model.KindPVC,
					Namespace: pod.Namespace,
					Name:      claim,
					Status:    statusNotFound,
					Label:     pvcLabel(claim, "", statusNotFound),
				})
			}
			g.AddEdge(podID, pvcID, model.RelationUses)
		}
	}

	// Claim -> volume resolution. A claim that says Bound while its volume
	// is absent from the listing is an inconsistency worth showing, distinct
	// from an ordinary Pending claim.
	var placed []model.PersistentVolume
	seenPV := map[string]bool{}

	for _, pvc := range resolved {
		pvcID := model.NodeID(model.KindPVC, pvc.Namespace, pvc.Name)
		if pvc.VolumeName == "" {
			continue
		}

		pv, ok := pvByName[pvc.VolumeName]
		if !ok {
			if pvc.Phase == "Bound" {
				g.SetStatus(pvcID, statusLost, pvcLabel(pvc.Name, pvc.RequestedSize, statusLost))
			}
			continue
		}

		pvID := g.AddNode(model.Node{
			Kind:     model.KindPV,
			Name:     pv.Name,
			Status:   phase(pv.Phase),
			Capacity: pv.Capacity,
			Label:    pvLabel(pv.Name, pv.Capacity, phase(pv.Phase)),
		})
		if !seenPV[pvID] {
			seenPV[pvID] = true
			placed = append(placed, pv)
		}
		g.AddEdge(pvcID, pvID, model.RelationBoundTo)
	}

	// Volume descriptors enrich placed PVs only; a descriptor with no PV
	// anchor carries nothing pod-relevant and is not added.
	for _, pv := range placed {
		vol, ok := volByName[pv.Name]
		if !ok {
			continue
		}
		volID := g.AddNode(model.Node{
			Kind:     model.KindVolume,
			Name:     vol.Name,
			Status:   phase(vol.Phase),
			Capacity: vol.Capacity,
			Label:    volumeLabel(vol.Name, vol.Capacity, phase(vol.Phase)),
		})
		g.AddEdge(model.NodeID(model.KindPV, "", pv.Name), volID, model.RelationAggregates)
	}

	g.Sort()
	return g
}

const (
	// statusNotFound marks a claim a pod mounts that no listing contains.
	statusNotFound = "Unknown (not found)"
	// statusLost marks a claim that reports Bound while its volume is
	// missing from the volume listing.
	statusLost = "Lost (bound volume missing)"
)

func phase(p string) string {
	if p == "" {
		return "Unknown"
	}
	return p
}

func pvcNode(pvc model.PersistentVolumeClaim) model.Node {
	return model.Node{
		Kind:      model.KindPVC,
		Namespace: pvc.Namespace,
		Name:      pvc.Name,
		Status:    phase(pvc.Phase),
		Capacity:  pvc.RequestedSize,
		Label:     pvcLabel(pvc.Name, pvc.RequestedSize, phase(pvc.Phase)),
	}
}

func podLabel(name, status string) string {
	return fmt.Sprintf("%s\nStatus: %s", name, status)
}

func pvcLabel(name, capacity, status string) string {
	return fmt.Sprintf("%s\nCapacity: %s\nStatus: %s\nType: PVC", name, orUnknown(capacity), status)
}

func pvLabel(name, capacity, status string) string {
	return fmt.Sprintf("%s\nCapacity: %s\nStatus: %s\nType: PV", name, orUnknown(capacity), status)
}

func volumeLabel(name, capacity, status string) string {
	return fmt.Sprintf("%s\nCapacity: %s\nStatus: %s\nType: Volume", name, orUnknown(capacity), status)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

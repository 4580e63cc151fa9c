package model

type PersistentVolumeClaim struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	// Phase is the claim's bound phase: Bound, Pending, Lost or Unknown.
	Phase         string `json:"phase"`
	RequestedSize string `json:"requestedSize,omitempty"`
	// VolumeName is the PV this claim is bound to. Empty while unbound.
	VolumeName string `json:"volumeName,omitempty"`
}

package model

type Pod struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	// Phase is the pod lifecycle phase: Pending, Running, Succeeded, Failed or Unknown.
	Phase string `json:"phase"`
	// ClaimNames lists the PVCs this pod mounts, by name within the pod's namespace.
	ClaimNames []string `json:"claimNames,omitempty"`
}

package model

type PersistentVolume struct {
	// Name alone identifies a PV; PVs are cluster-scoped.
	Name string `json:"name"`
	// Phase is the volume phase: Available, Bound, Released, Failed or Unknown.
	Phase    string `json:"phase"`
	Capacity string `json:"capacity,omitempty"`
	// ClaimNamespace/ClaimName identify the bound claim. Both empty when unbound.
	ClaimNamespace string `json:"claimNamespace,omitempty"`
	ClaimName      string `json:"claimName,omitempty"`
}

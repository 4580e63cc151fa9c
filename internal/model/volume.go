package model

// Volume is the cluster-level descriptor of a PV's capacity and status,
// read independently of the PV listing and matched back by name.
type Volume struct {
	Name     string `json:"name"`
	Phase    string `json:"phase"`
	Capacity string `json:"capacity,omitempty"`
}

package collect

import (
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ListError wraps a failed listing call with the resource kind and namespace
// that triggered it. Any ListError aborts the run; a partial graph missing a
// whole resource kind is worse than no graph.
type ListError struct {
	Kind      string
	Namespace string
	// RBAC is true when the API rejected the call as forbidden or
	// unauthorized, so the caller can suggest a permissions fix.
	RBAC bool
	Err  error
}

func (e *ListError) Error() string {
	scope := "cluster scope"
	if e.Namespace != "" {
		scope = "namespace " + e.Namespace
	}
	if e.RBAC {
		return fmt.Sprintf("list %s (%s): permission denied: %v", e.Kind, scope, e.Err)
	}
	return fmt.Sprintf("list %s (%s): %v", e.Kind, scope, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

func listError(kind, namespace string, err error) *ListError {
	return &ListError{
		Kind:      kind,
		Namespace: namespace,
		RBAC:      apierrors.IsForbidden(err) || apierrors.IsUnauthorized(err),
		Err:       err,
	}
}

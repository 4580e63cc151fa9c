package collect

import (
	"errors"
	"strings"
	"testing"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestListErrorRBAC(t *testing.T) {
	cause := apierrors.NewForbidden(schema.GroupResource{Resource: "pods"}, "", errors.New("RBAC denied"))
	le := listError("pods", "default", cause)

	if !le.RBAC {
		t.Error("forbidden error not classified as RBAC")
	}
	msg := le.Error()
	if !strings.Contains(msg, "permission denied") {
		t.Errorf("message %q missing permission hint", msg)
	}
	if !strings.Contains(msg, "pods") || !strings.Contains(msg, "namespace default") {
		t.Errorf("message %q does not name kind and namespace", msg)
	}
	if !errors.Is(le, cause) {
		t.Error("wrapped cause lost")
	}
}

func TestListErrorPlain(t *testing.T) {
	le := listError("persistentvolumes", "", errors.New("connection refused"))

	if le.RBAC {
		t.Error("transport error classified as RBAC")
	}
	msg := le.Error()
	if !strings.Contains(msg, "cluster scope") {
		t.Errorf("cluster-scoped message %q should say cluster scope", msg)
	}
	if strings.Contains(msg, "permission denied") {
		t.Errorf("message %q wrongly hints at permissions", msg)
	}
}

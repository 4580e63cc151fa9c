package kube

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPickKubeconfigPath(t *testing.T) {
	// explicit path always wins, even over the env
	t.Setenv("KUBECONFIG", "/somewhere/else")
	if got := pickKubeconfigPath("/my/config"); got != "/my/config" {
		t.Errorf("pickKubeconfigPath(explicit) = %q, want /my/config", got)
	}

	// no flag, no env: empty so the caller falls through
	t.Setenv("KUBECONFIG", "")
	if got := pickKubeconfigPath(""); got != "" {
		t.Errorf("pickKubeconfigPath(empty) = %q, want empty", got)
	}

	// env with multiple entries: first existing one wins
	dir := t.TempDir()
	existing := filepath.Join(dir, "config")
	if err := os.WriteFile(existing, []byte("apiVersion: v1"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KUBECONFIG", "/does/not/exist:"+existing)
	if got := pickKubeconfigPath(""); got != existing {
		t.Errorf("pickKubeconfigPath(env list) = %q, want %q", got, existing)
	}

	// env where nothing exists: raw env comes back so errors stay descriptive
	t.Setenv("KUBECONFIG", "/does/not/exist")
	if got := pickKubeconfigPath(""); got != "/does/not/exist" {
		t.Errorf("pickKubeconfigPath(missing env) = %q, want raw env", got)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "config")
	if err := os.WriteFile(bad, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(bad); err == nil {
		t.Error("LoadConfig(malformed kubeconfig) = nil error, want parse failure")
	}
}

package kube

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// pickKubeconfigPath chooses the kubeconfig file to load.
// Priority:
//  1. explicitPath (flag)
//  2. KUBECONFIG env (first existing entry if multiple)
//  3. empty string (caller falls through to in-cluster / default rules)
func pickKubeconfigPath(explicitPath string) string {
	if strings.TrimSpace(explicitPath) != "" {
		return explicitPath
	}

	env := strings.TrimSpace(os.Getenv("KUBECONFIG"))
	if env == "" {
		return ""
	}

	// KUBECONFIG can hold multiple paths, ';' on Windows and ':' elsewhere.
	sep := ";"
	if strings.Contains(env, ":") && !strings.Contains(env, ";") {
		sep = ":"
	}

	for _, p := range strings.Split(env, sep) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	// No existing entry found; return the raw env so errors stay descriptive.
	return env
}

// LoadConfig returns a rest.Config. A kubeconfig path (explicit or from
// KUBECONFIG) is loaded from file so failures produce real parse errors
// instead of "no configuration provided". With no path it tries in-cluster,
// then the default loading rules (~/.kube/config).
func LoadConfig(kubeconfigPath string) (*rest.Config, error) {
	chosen := pickKubeconfigPath(kubeconfigPath)

	if strings.TrimSpace(chosen) != "" {
		abs := chosen
		if a, err := filepath.Abs(chosen); err == nil {
			abs = a
		}

		rawCfg, err := clientcmd.LoadFromFile(abs)
		if err != nil {
			return nil, fmt.Errorf("load kube config: read kubeconfig file (path=%q): %w", abs, err)
		}

		overrides := &clientcmd.ConfigOverrides{}
		if ctx := strings.TrimSpace(os.Getenv("KUBE_CONTEXT")); ctx != "" {
			overrides.CurrentContext = ctx
		}

		cfg, err := clientcmd.NewDefaultClientConfig(*rawCfg, overrides).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("load kube config: kubeconfig (path=%q currentContext=%q): %w",
				abs, rawCfg.CurrentContext, err)
		}
		return cfg, nil
	}

	if cfg, err := rest.InClusterConfig(); err == nil {
		return cfg, nil
	}

	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load kube config: default rules: %w", err)
	}
	return cfg, nil
}

// NewClient builds the clientset used by internal/collect.
func NewClient(kubeconfigPath string) (*kubernetes.Clientset, *rest.Config, error) {
	cfg, err := LoadConfig(kubeconfigPath)
	if err != nil {
		return nil, nil, err
	}

	cs, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("create kube client: %w", err)
	}

	return cs, cfg, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/glovecchi0/pods-graph/internal/collect"
	"github.com/glovecchi0/pods-graph/internal/filter"
	"github.com/glovecchi0/pods-graph/internal/graph"
	"github.com/glovecchi0/pods-graph/internal/kube"
	"github.com/glovecchi0/pods-graph/internal/model"
	"github.com/glovecchi0/pods-graph/internal/output"
)

func main() {
	var (
		kubeconfig = flag.StringP("kubeconfig", "k", "", "Path to the kubeconfig file (default: ~/.kube/config)")
		namespaces = flag.StringSliceP("namespaces", "n", nil, "Namespace(s) to inspect, repeat or comma-separate (empty = all namespaces)")
		patterns   = flag.StringSliceP("pods", "p", nil, "Wildcard pattern(s) for pod names, e.g. 'web-*', repeat or comma-separate (empty = all pods)")
		outPath    = flag.StringP("out", "o", "", "Output file (default: stdout)")
		format     = flag.String("format", "dot", "Output format: dot, json or html")
		timeoutSec = flag.Int("timeout", 60, "Timeout in seconds for Kubernetes API calls")
	)
	flag.Parse()

	if *format != "dot" && *format != "json" && *format != "html" {
		log.Fatalf("--format must be 'dot', 'json' or 'html', got %q", *format)
	}

	clientset, _, err := kube.NewClient(*kubeconfig)
	if err != nil {
		log.Fatalf("kube error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSec)*time.Second)
	defer cancel()

	fetcher := collect.ClusterFetcher{Client: clientset}

	// Requested namespaces are intersected with what the cluster actually
	// has; a namespace with no resources is fine and just yields no nodes.
	scope := []string{}
	scoped := len(*namespaces) > 0
	if scoped {
		available, err := fetcher.Namespaces(ctx)
		if err != nil {
			log.Fatalf("collect namespaces: %v", err)
		}
		scope = filter.Namespaces(*namespaces, available)
	}

	// Any listing failure aborts: a graph silently missing a resource kind
	// would misrepresent the cluster. A namespace request that matched
	// nothing skips the namespaced listings; an empty scope slice would
	// otherwise mean "all namespaces" to the collectors.
	var (
		pods []model.Pod
		pvcs []model.PersistentVolumeClaim
	)
	if !scoped || len(scope) > 0 {
		if pods, err = fetcher.Pods(ctx, scope); err != nil {
			log.Fatalf("collect pods: %v", err)
		}
		if pvcs, err = fetcher.PVCs(ctx, scope); err != nil {
			log.Fatalf("collect pvcs: %v", err)
		}
	}
	pvs, err := fetcher.PVs(ctx)
	if err != nil {
		log.Fatalf("collect pvs: %v", err)
	}
	volumes, err := fetcher.Volumes(ctx)
	if err != nil {
		log.Fatalf("collect volumes: %v", err)
	}

	pods = filter.Pods(pods, *patterns)

	g := graph.Build(pods, pvcs, pvs, volumes)

	// The graph is already computed and valid at this point; a failed
	// render attempt is reported but is not a scan failure.
	if err := render(g, *format, *outPath); err != nil {
		log.Printf("render: %v", err)
		return
	}
	if *outPath != "" {
		fmt.Printf("Graph: %d nodes, %d edges\n", len(g.Nodes), len(g.Edges))
		fmt.Println("Output:", *outPath)
	}
}

func render(g *model.Graph, format, outPath string) error {
	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		return output.WriteJSON(w, g)
	case "html":
		return output.WriteReport(w, g)
	default:
		return output.WriteDOT(w, g)
	}
}

// Package filter narrows the raw listings to the user's query before any
// graph edges are computed. Only pods are pattern-filtered; PVC/PV listings
// pass through untouched so a matching pod's full storage chain stays
// resolvable through resources the patterns never name.
package filter

import "github.com/glovecchi0/pods-graph/internal/model"

// Namespaces intersects the requested namespaces with the available ones,
// preserving requested order. An empty request means all namespaces. A
// requested namespace that does not exist simply drops out; that is not an
// error, the resulting graph is just emptier.
func Namespaces(requested, available []string) []string {
	if len(requested) == 0 {
		return available
	}

	have := make(map[string]bool, len(available))
	for _, ns := range available {
		have[ns] = true
	}

	out := []string{}
	for _, ns := range requested {
		if have[ns] {
			out = append(out, ns)
		}
	}
	return out
}

// Pods keeps the pods whose bare name matches at least one pattern. An
// empty pattern list keeps every pod.
func Pods(pods []model.Pod, patterns []string) []model.Pod {
	if len(patterns) == 0 {
		return pods
	}

	out := []model.Pod{}
	for _, pod := range pods {
		for _, pat := range patterns {
			if Match(pat, pod.Name) {
				out = append(out, pod)
				break
			}
		}
	}
	return out
}

// Match reports whether name matches pattern under shell-style wildcards:
// '*' matches any run of characters including none, '?' matches exactly one
// character, everything else matches itself. Matching is case-sensitive and
// byte-wise; pod names are plain DNS labels, never paths, so there is no
// separator special-casing and no such thing as a malformed pattern.
func Match(pattern, name string) bool {
	p, n := 0, 0
	star, backtrack := -1, 0

	for n < len(name) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == name[n]):
			p++
			n++
		case p < len(pattern) && pattern[p] == '*':
			// Remember the star; try the empty match first.
			star = p
			backtrack = n
			p++
		case star >= 0:
			// Mismatch after a star: widen the star by one and retry.
			backtrack++
			p = star + 1
			n = backtrack
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

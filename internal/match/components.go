package match

import (
	"sort"

	"pigmatch/internal/survey"
)

// unionFind is an array-backed disjoint set with path compression and union
// by rank. One instance lives for the duration of a single partition call.
type unionFind struct {
	parent []int
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]uint8, n)}
}

func (u *unionFind) find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// component is a maximal connected subset of the candidate bipartite graph.
// Anomalies with no candidate edges form singleton components.
type component struct {
	aIDs  []int64 // ascending
	bIDs  []int64 // ascending
	edges []Edge
}

// partition groups both surveys' anomalies into connected components via the
// candidate edges. Every anomaly lands in exactly one component, so each
// cubic assignment solve is bounded by its local neighborhood instead of the
// full dataset. Components come back ordered by their lowest-indexed node,
// with ID lists sorted ascending.
func partition(a, b []survey.Anomaly, edges []Edge) []component {
	nA := len(a)
	nodes := nA + len(b)

	aIndex := make(map[int64]int, nA)
	for i, anom := range a {
		aIndex[anom.ID] = i
	}
	bIndex := make(map[int64]int, len(b))
	for i, anom := range b {
		bIndex[anom.ID] = nA + i
	}

	uf := newUnionFind(nodes)
	for _, e := range edges {
		uf.union(aIndex[e.AID], bIndex[e.BID])
	}

	comps := make([]component, 0, nodes)
	byRoot := make(map[int]int, nodes)
	slot := func(node int) *component {
		root := uf.find(node)
		idx, ok := byRoot[root]
		if !ok {
			idx = len(comps)
			byRoot[root] = idx
			comps = append(comps, component{})
		}
		return &comps[idx]
	}

	for i, anom := range a {
		c := slot(i)
		c.aIDs = append(c.aIDs, anom.ID)
	}
	for i, anom := range b {
		c := slot(nA + i)
		c.bIDs = append(c.bIDs, anom.ID)
	}
	for _, e := range edges {
		c := slot(aIndex[e.AID])
		c.edges = append(c.edges, e)
	}
	for i := range comps {
		sort.Slice(comps[i].aIDs, func(x, y int) bool { return comps[i].aIDs[x] < comps[i].aIDs[y] })
		sort.Slice(comps[i].bIDs, func(x, y int) bool { return comps[i].bIDs[x] < comps[i].bIDs[y] })
	}
	return comps
}

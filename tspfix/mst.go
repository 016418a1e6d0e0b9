package tspfix

import "sort"

// mstEdge is one tree edge over the dense job-index sub-graph {0..n-1}.
type mstEdge struct {
	u, v   int
	weight int64
}

// kruskalMST computes a minimum spanning tree of the complete graph over
// {0..n-1} with edge weights given by w(i,j), using a disjoint-set
// (union-find) structure with path compression and union by rank — the
// same shape as the teacher's prim_kruskal.Kruskal, re-expressed over a
// dense integer vertex set instead of a generic string-keyed *core.Graph,
// since every vertex here is always present and the graph is always
// complete.
//
// Returns the adjacency list of the resulting tree (n entries, entry i
// lists i's tree neighbors). The sub-graph is complete, so the tree is
// always connected for n >= 1; ErrDisconnected is a defensive return only.
func kruskalMST(n int, w func(i, j int) int64) ([][]int, error) {
	adj := make([][]int, n)
	if n <= 1 {
		return adj, nil
	}

	edges := make([]mstEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, mstEdge{i, j, w(i, j)})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].weight < edges[b].weight })

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	built := 0
	for _, e := range edges {
		if find(e.u) != find(e.v) {
			union(e.u, e.v)
			adj[e.u] = append(adj[e.u], e.v)
			adj[e.v] = append(adj[e.v], e.u)
			built++
			if built == n-1 {
				break
			}
		}
	}
	if built < n-1 {
		return nil, ErrDisconnected
	}
	return adj, nil
}

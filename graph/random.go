package graph

import "math/rand"

// GenerateRandom populates the (empty) Graph with exactly targetE edges,
// sampled by repeatedly picking a uniformly random pair (u,v) and a uniform
// weight in [1,WMAX], rejecting self-loops, duplicates, and (structurally
// impossible here) out-of-range picks, until targetE edges have been
// accepted. This mirrors the reference server's generate_random_graph
// reject-and-retry sampling exactly: it is not a uniform sample over the
// space of edge sets, but it is the specified, deterministic-per-seed
// strategy this service must reproduce.
//
// Per the design note in spec.md §9 ("inject a per-request RNG keyed by
// seed"), GenerateRandom builds its own *rand.Rand from seed, so concurrent
// calls on distinct Graphs need no shared lock: each sequence is fully
// determined by (V, targetE, seed) alone.
func (g *Graph) GenerateRandom(targetE int, seed uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if targetE < 0 {
		return nil
	}
	if int64(targetE) > maxEdges(g.v) {
		return ErrTooManyEdges
	}

	rng := rand.New(rand.NewSource(int64(seed)))

	for g.e < targetE {
		u := rng.Intn(g.v)
		v := rng.Intn(g.v)
		w := int64(1 + rng.Intn(WMAX))

		if u == v || g.adjacency[u][v] {
			continue
		}

		g.adjacency[u][v] = true
		g.adjacency[v][u] = true
		g.weight[u][v] = w
		g.weight[v][u] = w
		g.e++
	}

	return nil
}

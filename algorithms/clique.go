// MaxClique and CountCliquesAtLeast3 both enumerate cliques via
// Bron-Kerbosch over bitset-encoded neighborhoods, but differ in whether
// pivoting is applied.
//
// MaxClique pivots: at each call it picks u in P∪X maximizing |P∩N(u)| and
// recurses only over v in P\N(u), which visits exactly the maximal cliques.
// Since any clique is contained in some maximal clique, the largest maximal
// clique found is the graph's maximum clique.
//
// CountCliquesAtLeast3 omits pivoting, since counting requires visiting
// every clique, maximal or not: at each recursive entry with clique R and
// candidates P, if |R| >= 3 the count is incremented, then every v in P is
// tried in ascending order, recursing on R∪{v} with P∩N(v); no excluded set
// X is kept.
//
// Both follow the classical by-value formulation: each recursive call
// receives its own fresh candidate set (pNext) and, in MaxClique, its own
// excluded set (xNext), so a callee's mutations never alias back into the
// caller's working sets. The caller's own P and X
// still shrink/grow incrementally across its loop, per the standard
// algorithm's bookkeeping, but that bookkeeping stays local to one stack
// frame instead of leaking into the recursion the way the reference
// implementation's mutation pattern does.
package algorithms

import (
	"github.com/kpavlov/graphsrv/bitset"
	"github.com/kpavlov/graphsrv/graph"
)

// NeighborMasks returns, for a Graph of V vertices, one bitset per vertex v
// with bit u set exactly when v and u are adjacent.
func NeighborMasks(g *graph.Graph) []*bitset.Bitset {
	v := g.V()
	masks := make([]*bitset.Bitset, v)
	for i := 0; i < v; i++ {
		masks[i] = bitset.New(v)
		for _, n := range g.Neighbors(i) {
			masks[i].Set(n)
		}
	}
	return masks
}

// CliqueResult holds the outcome of MaxClique.
type CliqueResult struct {
	Vertices []int
}

// MaxClique returns the largest clique of g via Bron-Kerbosch with pivoting.
func MaxClique(g *graph.Graph) CliqueResult {
	v := g.V()
	masks := NeighborMasks(g)

	p := bitset.New(v)
	for i := 0; i < v; i++ {
		p.Set(i)
	}
	x := bitset.New(v)

	var best []int
	bronKerboschPivot(nil, p, x, masks, &best)

	return CliqueResult{Vertices: best}
}

func bronKerboschPivot(r []int, p, x *bitset.Bitset, masks []*bitset.Bitset, best *[]int) {
	if p.IsEmpty() && x.IsEmpty() {
		if len(r) > len(*best) {
			*best = append([]int(nil), r...)
		}
		return
	}

	pivot := choosePivot(p, x, masks)
	candidates := bitset.AndNot(p, masks[pivot])

	pWork := p.Clone()
	candidates.Each(func(v int) {
		rNext := append(append([]int(nil), r...), v)
		pNext := bitset.And(pWork, masks[v])
		xNext := bitset.And(x, masks[v])

		bronKerboschPivot(rNext, pNext, xNext, masks, best)

		pWork.Clear(v)
		x.Set(v)
	})
}

// choosePivot picks u in P∪X maximizing |P∩N(u)|.
func choosePivot(p, x *bitset.Bitset, masks []*bitset.Bitset) int {
	union := bitset.Or(p, x)
	best, bestCount := -1, -1
	union.Each(func(u int) {
		count := bitset.And(p, masks[u]).Count()
		if count > bestCount {
			bestCount = count
			best = u
		}
	})
	return best
}

// CountCliquesAtLeast3 returns the number of cliques of size >= 3 in g
// (maximal and non-maximal alike), via Bron-Kerbosch without pivoting.
func CountCliquesAtLeast3(g *graph.Graph) int64 {
	v := g.V()
	masks := NeighborMasks(g)

	p := bitset.New(v)
	for i := 0; i < v; i++ {
		p.Set(i)
	}

	var count int64
	bronKerboschNoPivot(0, p, masks, &count)
	return count
}

// bronKerboschNoPivot counts cliques without tracking an excluded set X:
// every clique is reached exactly once, by adding its vertices in ascending
// order, because v is removed from the remaining candidates once its branch
// is done. Non-maximal cliques are counted too, so there is nothing for X to
// prune.
func bronKerboschNoPivot(rSize int, p *bitset.Bitset, masks []*bitset.Bitset, count *int64) {
	if rSize >= 3 {
		*count++
	}
	if p.IsEmpty() {
		return
	}

	pWork := p.Clone()
	p.Each(func(v int) {
		pNext := bitset.And(pWork, masks[v])

		bronKerboschNoPivot(rSize+1, pNext, masks, count)

		pWork.Clear(v)
	})
}

package regexlib

// nfaAutomaton is produced by eliminating ε-edges from an epsilonNFA.
// Node indices are inherited one-to-one from the source ε-NFA.
type nfaAutomaton struct {
	trans  []map[int][]int // trans[node][symbol] = destination nodes
	accept []bool
	entry  int
}

// epsilonNFAToNFA computes, for each state q and each non-ε label a,
//
//	N[q][a] = ⋃_{p ∈ closure(q)} ⋃_{r ∈ εN[p][a]} closure(r)
//
// and marks q accepting iff the ε-NFA's exit lies in closure(q).
func epsilonNFAToNFA(e *epsilonNFA) *nfaAutomaton {
	n := len(e.nodes)
	closures := make([]map[int]bool, n)
	for q := 0; q < n; q++ {
		closures[q] = e.closure(q)
	}

	trans := make([]map[int][]int, n)
	accept := make([]bool, n)
	for q := 0; q < n; q++ {
		dest := map[int]map[int]bool{}
		for p := range closures[q] {
			for _, ed := range e.nodes[p].out {
				if ed.symbol == epsilon {
					continue
				}
				set, ok := dest[ed.symbol]
				if !ok {
					set = map[int]bool{}
					dest[ed.symbol] = set
				}
				for r := range closures[ed.to] {
					set[r] = true
				}
			}
		}
		trans[q] = make(map[int][]int, len(dest))
		for sym, set := range dest {
			ids := make([]int, 0, len(set))
			for id := range set {
				ids = append(ids, id)
			}
			trans[q][sym] = ids
		}
		accept[q] = closures[q][e.exit]
	}

	return &nfaAutomaton{trans: trans, accept: accept, entry: e.entry}
}

package regexlib

import (
	"fmt"
	"sort"
)

// dfaAutomaton is a total transition function over 0..=255. Both the
// raw DFA and the minimized DFA share this shape; missing input
// implicitly routes to node 0, the dead state, via the zero value of
// the trans array.
type dfaAutomaton struct {
	trans  [][256]int
	accept []bool
	entry  int
}

// nfaToDFA performs subset construction: each DFA state is a subset
// of NFA states, identified structurally rather than by construction
// order, so that two different subset orderings that describe the
// same set always land on the same DFA node.
func nfaToDFA(nf *nfaAutomaton) *dfaAutomaton {
	states := [][]int{nil} // states[0] is the unused dead-state slot
	trans := [][256]int{{}}
	accept := []bool{false}

	startSet := []int{nf.entry}
	index := map[string]int{subsetKey(startSet): 1}
	states = append(states, startSet)
	trans = append(trans, [256]int{})
	accept = append(accept, subsetHasAccept(nf, startSet))

	queue := []int{1}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curSet := states[cur]
		for c := 0; c < 256; c++ {
			seen := map[int]bool{}
			for _, q := range curSet {
				for _, to := range nf.trans[q][c] {
					seen[to] = true
				}
			}
			if len(seen) == 0 {
				continue // unset entry: implicitly routes to dead state 0
			}
			ids := make([]int, 0, len(seen))
			for id := range seen {
				ids = append(ids, id)
			}
			key := subsetKey(ids)
			id, ok := index[key]
			if !ok {
				id = len(states)
				index[key] = id
				states = append(states, ids)
				trans = append(trans, [256]int{})
				accept = append(accept, subsetHasAccept(nf, ids))
				queue = append(queue, id)
			}
			trans[cur][c] = id
		}
	}

	return &dfaAutomaton{trans: trans, accept: accept, entry: 1}
}

func subsetKey(ids []int) string {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	return fmt.Sprint(sorted)
}

func subsetHasAccept(nf *nfaAutomaton, ids []int) bool {
	for _, id := range ids {
		if nf.accept[id] {
			return true
		}
	}
	return false
}

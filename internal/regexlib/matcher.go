package regexlib

// matchEpsilonNFA folds the ε-NFA directly over the input, tracking a
// set of current states initialized to the ε-closure of the entry.
func matchEpsilonNFA(e *epsilonNFA, input string) bool {
	current := e.closure(e.entry)
	for i := 0; i < len(input); i++ {
		c := int(input[i])
		next := map[int]bool{}
		for q := range current {
			for _, ed := range e.nodes[q].out {
				if ed.symbol == c {
					for s := range e.closure(ed.to) {
						next[s] = true
					}
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}
	return current[e.exit]
}

func matchNFA(nf *nfaAutomaton, input string) bool {
	current := map[int]bool{nf.entry: true}
	for i := 0; i < len(input); i++ {
		c := int(input[i])
		next := map[int]bool{}
		for q := range current {
			for _, to := range nf.trans[q][c] {
				next[to] = true
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}
	for q := range current {
		if nf.accept[q] {
			return true
		}
	}
	return false
}

// matchDFA drives either the raw DFA or the minimized DFA: both share
// dfaAutomaton's shape, so one matcher serves both stages.
func matchDFA(d *dfaAutomaton, input string) bool {
	cur := d.entry
	for i := 0; i < len(input); i++ {
		cur = d.trans[cur][input[i]]
	}
	return d.accept[cur]
}

// Package regexlib implements a from-scratch regular expression engine:
// a hand-written recursive-descent parser builds a Thompson-construction
// ε-NFA, which is reduced to an NFA, then determinized into a DFA, then
// minimized. Every stage answers full-string, anchored matches; none of
// them perform substring search.
package regexlib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Stage names one of the four automata produced while compiling a
// pattern, in construction order.
type Stage int

const (
	StageEpsilonNFA Stage = iota
	StageNFA
	StageDFA
	StageMinimizedDFA
)

func (s Stage) String() string {
	switch s {
	case StageEpsilonNFA:
		return "epsilon-nfa"
	case StageNFA:
		return "nfa"
	case StageDFA:
		return "dfa"
	case StageMinimizedDFA:
		return "minimized-dfa"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Regex holds every automaton stage derived from one pattern, built
// once at Compile time and reused by every Match call.
type Regex struct {
	pattern string
	eNFA    *epsilonNFA
	nfa     *nfaAutomaton
	dfa     *dfaAutomaton
	minDFA  *dfaAutomaton
}

// Compile parses pattern and runs it through every construction stage.
// A malformed pattern yields a *CompileError wrapped with call-site
// context.
func Compile(pattern string) (*Regex, error) {
	log.WithField("pattern", pattern).Debug("regexlib: compiling pattern")

	p := newParser(pattern)
	frag, err := p.parse()
	if err != nil {
		return nil, wrap(err, "parse pattern")
	}

	eNFA := newEpsilonNFA(p.b, frag)
	nfa := epsilonNFAToNFA(eNFA)
	dfa := nfaToDFA(nfa)
	minDFA := minimizeDFA(dfa)

	log.WithFields(log.Fields{
		"pattern":        pattern,
		"epsilon_states": len(eNFA.nodes),
		"nfa_states":     len(nfa.trans),
		"dfa_states":     len(dfa.trans),
		"min_dfa_states": len(minDFA.trans),
	}).Debug("regexlib: compiled pattern")

	return &Regex{
		pattern: pattern,
		eNFA:    eNFA,
		nfa:     nfa,
		dfa:     dfa,
		minDFA:  minDFA,
	}, nil
}

// MustCompile is Compile for callers that treat a malformed pattern as
// a programming error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Pattern returns the source text the Regex was compiled from.
func (re *Regex) Pattern() string {
	return re.pattern
}

// Match reports whether input, taken in full, is accepted. It always
// runs against the minimized DFA, the fastest stage.
func (re *Regex) Match(input string) bool {
	return matchDFA(re.minDFA, input)
}

// MatchStage runs the match against one specific pipeline stage,
// primarily so tests and tooling can confirm every stage agrees.
func (re *Regex) MatchStage(stage Stage, input string) bool {
	switch stage {
	case StageEpsilonNFA:
		return matchEpsilonNFA(re.eNFA, input)
	case StageNFA:
		return matchNFA(re.nfa, input)
	case StageDFA:
		return matchDFA(re.dfa, input)
	case StageMinimizedDFA:
		return matchDFA(re.minDFA, input)
	default:
		panic(fmt.Sprintf("regexlib: unknown stage %d", int(stage)))
	}
}

// DumpGraphviz writes one .gv file per automaton stage into dir,
// creating it if necessary.
func (re *Regex) DumpGraphviz(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create graphviz output dir %q", dir)
	}

	files := []struct {
		name string
		fn   func(f *os.File) error
	}{
		{"epsilon_nfa.gv", func(f *os.File) error { dumpEpsilonNFA(f, re.eNFA); return nil }},
		{"nfa.gv", func(f *os.File) error { dumpNFA(f, re.nfa); return nil }},
		{"dfa.gv", func(f *os.File) error { dumpDFA(f, "dfa", re.dfa); return nil }},
		{"minimized_dfa.gv", func(f *os.File) error { dumpDFA(f, "minimized_dfa", re.minDFA); return nil }},
	}

	for _, entry := range files {
		path := filepath.Join(dir, entry.name)
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create %q", path)
		}
		err = entry.fn(f)
		closeErr := f.Close()
		if err != nil {
			return errors.Wrapf(err, "write %q", path)
		}
		if closeErr != nil {
			return errors.Wrapf(closeErr, "close %q", path)
		}
	}
	return nil
}

// StateCounts reports the node-pool size of every stage, in
// construction order: ε-NFA, NFA, DFA, minimized DFA.
func (re *Regex) StateCounts() [4]int {
	return [4]int{len(re.eNFA.nodes), len(re.nfa.trans), len(re.dfa.trans), len(re.minDFA.trans)}
}

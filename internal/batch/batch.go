// Package batch parses and runs test-vector files against a compiled
// pattern: one line per vector, `pattern => input => yes|no`, blank
// lines and #-comments ignored. This is the only place in the module
// that leans on a parser generator rather than hand-written
// recursive descent, since the DSL is a flat line grammar rather than
// the pattern language itself.
package batch

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"regexfsm/internal/regexlib"
)

var vectorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `=>`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Field", Pattern: `[^\r\n=]+`},
})

// Vector is one `pattern => input => yes|no` line.
type Vector struct {
	Pattern string `parser:"@Field Arrow"`
	Input   string `parser:"@Field Arrow"`
	Want    string `parser:"@Field EOL?"`
}

// Document is a whole test-vector file: blank lines between vectors
// are permitted and carry no meaning.
type Document struct {
	Vectors []*Vector `parser:"( EOL | @@ )*"`
}

var vectorParser = participle.MustBuild[Document](
	participle.Lexer(vectorLexer),
	participle.Elide("Comment"),
)

// Case is one resolved test vector: a pattern, an input, and the
// expected match verdict.
type Case struct {
	Pattern string
	Input   string
	Want    bool
}

// Parse reads a test-vector document and resolves each line's yes/no
// verdict into a bool.
func Parse(data string) ([]Case, error) {
	doc, err := vectorParser.ParseString("", data)
	if err != nil {
		return nil, errors.Wrap(err, "parse batch document")
	}
	cases := make([]Case, 0, len(doc.Vectors))
	for i, v := range doc.Vectors {
		want, err := parseVerdict(trimField(v.Want))
		if err != nil {
			return nil, errors.Wrapf(err, "vector %d", i+1)
		}
		cases = append(cases, Case{
			Pattern: trimField(v.Pattern),
			Input:   trimField(v.Input),
			Want:    want,
		})
	}
	return cases, nil
}

func parseVerdict(s string) (bool, error) {
	switch s {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected verdict %q or %q, got %q", "yes", "no", s)
	}
}

// trimField strips the leading and trailing spaces the lexer's Field
// token deliberately swallows along with its content, since the
// grammar never introduces a dedicated whitespace token.
func trimField(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}

// Result is the outcome of running one Case against a freshly
// compiled pattern.
type Result struct {
	Case
	Got     bool
	Err     error
	Matches bool
}

// Run compiles and evaluates every case, independent of one another:
// one pattern failing to compile does not abort the rest of the
// batch.
func Run(cases []Case) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		results[i] = runOne(c)
	}
	return results
}

func runOne(c Case) Result {
	re, err := regexlib.Compile(c.Pattern)
	if err != nil {
		return Result{Case: c, Err: err}
	}
	got := re.Match(c.Input)
	return Result{Case: c, Got: got, Matches: got == c.Want}
}

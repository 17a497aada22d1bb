package batch

import "testing"

func TestParseIgnoresBlankLinesAndComments(t *testing.T) {
	doc := `
# sanity checks for a*
a* => "" => yes
a*     =>   aaaaa => yes

# a boundary case
a* => aaab => no
`
	cases, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cases) != 3 {
		t.Fatalf("expected 3 cases, got %d: %+v", len(cases), cases)
	}
	if cases[0].Pattern != "a*" || cases[0].Input != `""` || !cases[0].Want {
		t.Errorf("unexpected first case: %+v", cases[0])
	}
	if cases[2].Input != "aaab" || cases[2].Want {
		t.Errorf("unexpected third case: %+v", cases[2])
	}
}

func TestParseRejectsBadVerdict(t *testing.T) {
	if _, err := Parse("a* => a => maybe\n"); err == nil {
		t.Errorf("expected error for verdict %q", "maybe")
	}
}

func TestRunReportsCompileFailuresWithoutAbortingBatch(t *testing.T) {
	cases := []Case{
		{Pattern: "(", Input: "a", Want: false},
		{Pattern: "a*", Input: "aaa", Want: true},
	}
	results := Run(cases)
	if results[0].Err == nil {
		t.Errorf("expected compile error for pattern %q", "(")
	}
	if results[1].Err != nil {
		t.Errorf("unexpected error for pattern %q: %v", "a*", results[1].Err)
	}
	if !results[1].Matches {
		t.Errorf("expected second case to match: %+v", results[1])
	}
}

func TestRunDetectsMismatch(t *testing.T) {
	results := Run([]Case{{Pattern: "a+", Input: "", Want: true}})
	if results[0].Matches {
		t.Errorf("expected mismatch: pattern %q should reject empty input", "a+")
	}
	if results[0].Got {
		t.Errorf("expected Got=false for empty input against a+")
	}
}

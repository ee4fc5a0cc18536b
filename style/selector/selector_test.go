package selector

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, err := Parse("div.red")
	if err != nil {
		t.Fatalf("expected div.red to parse, didn't: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 node, have %d", s.Len())
	}
	n := s.Nodes()[0]
	if n.Type() != "div" || len(n.Classes()) != 1 || n.Classes()[0] != "red" {
		t.Errorf("expected type div with class red, have %q", n.Fullname())
	}
	if n.Rank() != 11 {
		t.Errorf("expected rank 11 (type + class), is %d", n.Rank())
	}
}

func TestParseFullnameCanonical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, err := Parse("tv.b.a#m:h2:h1")
	if err != nil {
		t.Fatalf("expected selector to parse, didn't: %v", err)
	}
	fullname := s.Nodes()[0].Fullname()
	if fullname != "tv#m.a.b:h1:h2" {
		t.Errorf("expected canonical fullname tv#m.a.b:h1:h2, is %q", fullname)
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, err := Parse("section  article.teaser:hover  p#intro")
	if err != nil {
		t.Fatalf("expected selector to parse, didn't: %v", err)
	}
	canonical := s.String()
	s2, err := Parse(canonical)
	if err != nil {
		t.Fatalf("expected canonical form %q to parse, didn't: %v", canonical, err)
	}
	if s2.String() != canonical {
		t.Errorf("expected round trip to be stable, %q != %q", s2.String(), canonical)
	}
	if s2.Rank() != s.Rank() || s2.Hash() != s.Hash() {
		t.Errorf("expected rank and hash to survive the round trip")
	}
}

func TestParseRankSums(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, err := Parse("div.a:hover p#id")
	if err != nil {
		t.Fatalf("expected selector to parse, didn't: %v", err)
	}
	// div.a:hover = 1+10+10, p#id = 1+100
	if s.Rank() != 122 {
		t.Errorf("expected selector rank 122, is %d", s.Rank())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	for _, text := range []string{"div>p", "a[href]", "p!", ""} {
		if _, err := Parse(text); err == nil {
			t.Errorf("expected %q to be rejected, wasn't", text)
		}
	}
}

func TestParseDuplicateID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	if _, err := Parse("p#a#b"); err == nil {
		t.Error("expected second id to be rejected, wasn't")
	}
}

func TestParseDuplicateClassSuppressed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, err := Parse("p.a.a")
	if err != nil {
		t.Fatalf("expected duplicate class to be suppressed, got error: %v", err)
	}
	if s.Rank() != 11 {
		t.Errorf("expected duplicate class not to count, rank is %d", s.Rank())
	}
}

func TestParseDepthBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	deep := strings.TrimSpace(strings.Repeat("div ", MaxDepth+1))
	if _, err := Parse(deep); err == nil {
		t.Errorf("expected selector with %d nodes to be rejected, wasn't", MaxDepth+1)
	}
}

func TestBatchNumbersIncrease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s1, _ := Parse("p")
	s2, _ := Parse("p")
	if s2.BatchNum() <= s1.BatchNum() {
		t.Errorf("expected batch numbers to increase, %d then %d", s1.BatchNum(), s2.BatchNum())
	}
}

func TestCloneIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, _ := Parse("div.a p")
	c := s.Clone()
	if c.String() != s.String() || c.Hash() != s.Hash() || c.BatchNum() != s.BatchNum() {
		t.Errorf("expected clone to equal original, %q vs %q", c, s)
	}
	if c.Nodes()[0] == s.Nodes()[0] {
		t.Error("expected clone to have its own nodes, shares them")
	}
}

func TestNodeMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	elem, _ := Parse("tv#m.a.b:h")
	node := elem.Nodes()[0]
	for _, req := range []string{"tv", "*", "tv#m", ".a", ".a.b:h", "tv.b"} {
		r, _ := Parse(req)
		if !node.Matches(r.Nodes()[0]) {
			t.Errorf("expected %q to match request %q, doesn't", node.Fullname(), req)
		}
	}
	for _, req := range []string{"p", "tv#x", ".c", ":f"} {
		r, _ := Parse(req)
		if node.Matches(r.Nodes()[0]) {
			t.Errorf("expected %q not to match request %q, does", node.Fullname(), req)
		}
	}
}

func TestExpandEnumeratesSubsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, err := Parse("tv#m.a.b:h")
	if err != nil {
		t.Fatalf("expected selector to parse, didn't: %v", err)
	}
	names, err := s.Nodes()[0].Expand()
	if err != nil {
		t.Fatalf("expected expansion to succeed, didn't: %v", err)
	}
	have := make(map[string]bool, len(names))
	for _, name := range names {
		if have[name] {
			t.Errorf("expansion emits %q twice", name)
		}
		have[name] = true
	}
	for _, want := range []string{
		"tv", "tv#m", "tv#m.a", "tv#m.b", "tv#m.a.b",
		"tv#m.a:h", "tv#m.a.b:h", "#m", ".a", ".a.b", ":h", "tv:h",
	} {
		if !have[want] {
			t.Errorf("expected expansion to contain %q, doesn't; have %v", want, names)
		}
	}
}

func TestExpandCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	// type, id, 2 classes, 1 state: (type?, id?, class subsets, state
	// subsets) = 2*2*4*2 - 1 combinations without the empty one.
	s, _ := Parse("tv#m.a.b:h")
	names, _ := s.Nodes()[0].Expand()
	if len(names) != 31 {
		t.Errorf("expected 31 expansion names, have %d: %v", len(names), names)
	}
}

func TestExpandIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kaskade.selector")
	defer teardown()
	//
	s, _ := Parse("tv.a.b")
	first, _ := s.Nodes()[0].Expand()
	second, _ := s.Nodes()[0].Expand()
	if len(first) != len(second) {
		t.Fatalf("expected repeated expansion to be stable, %d vs %d names", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("expansion differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

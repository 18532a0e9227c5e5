package format

import (
	"testing"

	"github.com/npillmayer/quant"
)

func TestSplitFormat(t *testing.T) {
	cases := []struct {
		spec, deflt  string
		separate     bool
		mspec, uspec string
	}{
		{".3f~H", "", true, ".3f", "~H"},
		{"", "~", true, "", "~"},
		{".2f", ".3e~", true, ".2f", "~"},
		{"H", ".3e~", true, ".3e", "H"},
		{"", ".2fD", false, ".2f", "D"},
		{".3f", ".2fD", false, ".3f", ""},
	}
	for _, c := range cases {
		m, u := SplitFormat(c.spec, c.deflt, c.separate)
		if m != c.mspec || u != c.uspec {
			t.Errorf("SplitFormat(%q, %q, %v) = (%q, %q), want (%q, %q)",
				c.spec, c.deflt, c.separate, m, u, c.mspec, c.uspec)
		}
	}
}

func TestRemoveCustomFlags(t *testing.T) {
	if got := RemoveCustomFlags("~.3f#"); got != ".3f" {
		t.Errorf("RemoveCustomFlags = %q, want .3f", got)
	}
	if got := RemoveCustomFlags(".2e"); got != ".2e" {
		t.Errorf("flag-free specs must pass through, got %q", got)
	}
}

var htmlOpts = RenderOptions{
	AsRatio:           true,
	SingleDenominator: true,
	ProductFmt:        " ",
	DivisionFmt:       "{}/{}",
	PowerFmt:          "{}<sup>{}</sup>",
	ParenthesesFmt:    "({})",
}

func TestRender(t *testing.T) {
	terms := []quant.Term{{Symbol: "m", Exp: 1}, {Symbol: "s", Exp: -2}}
	if got := Render(terms, htmlOpts); got != "m/s<sup>2</sup>" {
		t.Errorf("single denominator = %q, want m/s<sup>2</sup>", got)
	}
	terms = []quant.Term{{Symbol: "J", Exp: 1}, {Symbol: "K", Exp: -1}, {Symbol: "kg", Exp: -1}}
	if got := Render(terms, htmlOpts); got != "J/(K kg)" {
		t.Errorf("multi-term denominator = %q, want J/(K kg)", got)
	}
	terms = []quant.Term{{Symbol: "s", Exp: -1}}
	if got := Render(terms, htmlOpts); got != "1/s" {
		t.Errorf("pure denominator = %q, want 1/s", got)
	}
	if got := Render(nil, htmlOpts); got != "" {
		t.Errorf("no terms must render empty, got %q", got)
	}
	plain := RenderOptions{
		AsRatio:           true,
		SingleDenominator: false,
		ProductFmt:        " * ",
		DivisionFmt:       "{} / {}",
		PowerFmt:          "{} ** {}",
		ParenthesesFmt:    "({})",
	}
	terms = []quant.Term{{Symbol: "meter", Exp: 1}, {Symbol: "second", Exp: -2}}
	if got := Render(terms, plain); got != "meter / second ** 2" {
		t.Errorf("plain ratio = %q, want meter / second ** 2", got)
	}
}

func TestJoinHelpers(t *testing.T) {
	if got := JoinMagUnit("{} {}", "5", "m"); got != "5 m" {
		t.Errorf("JoinMagUnit = %q, want 5 m", got)
	}
	if got := JoinMagUnit("{} {}", "5", ""); got != "5" {
		t.Errorf("empty unit must yield the magnitude alone, got %q", got)
	}
	if got := JoinUncertainty("{} {}", "(", ")", "1.5 ± 0.1", "m"); got != "(1.5 ± 0.1) m" {
		t.Errorf("JoinUncertainty = %q", got)
	}
	if got := JoinUncertainty("{} {}", "(", ")", "1.5 ± 0.1", ""); got != "1.5 ± 0.1" {
		t.Errorf("unit-less composite must drop the markers, got %q", got)
	}
}

func TestFor(t *testing.T) {
	if _, ok := For("H").(*HTML); !ok {
		t.Errorf("expected the HTML renderer for letter H")
	}
	if _, ok := For("D").(*Plain); !ok {
		t.Errorf("expected the plain renderer for letter D")
	}
	if For("X") != nil {
		t.Errorf("unknown letters must yield nil")
	}
}

package quant

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestUnitAlgebra(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	u := U("meter").Mul(U("meter"))
	terms := u.Compound("", Options{})
	if len(terms) != 1 || terms[0] != (Term{Symbol: "meter", Exp: 2}) {
		t.Errorf("expected meter ** 2, got %v", terms)
	}
	v := U("meter").Div(U("meter"))
	if !v.IsDimensionless() {
		t.Errorf("expected meter/meter to cancel, got %v", v)
	}
	w := U("meter").Div(U("second")).Pow(2)
	terms = w.Compound("", Options{})
	if len(terms) != 2 || terms[0].Exp != 2 || terms[1].Exp != -2 {
		t.Errorf("expected (m/s)^2 terms, got %v", terms)
	}
	if !U("meter").Pow(0).IsDimensionless() {
		t.Errorf("expected unit ** 0 to be dimensionless")
	}
}

func TestUnitCompoundShortFlag(t *testing.T) {
	u := U("meter").Div(U("second"))
	terms := u.Compound("~", Options{})
	if len(terms) != 2 {
		t.Fatalf("expected 2 terms, got %v", terms)
	}
	if terms[0] != (Term{Symbol: "m", Exp: 1}) || terms[1] != (Term{Symbol: "s", Exp: -1}) {
		t.Errorf("expected m, s^-1, got %v", terms)
	}
	// the options bag rides along; the symbol table is locale-independent
	localized := u.Compound("~", Options{Locale: "de"})
	if len(localized) != 2 || localized[0] != terms[0] || localized[1] != terms[1] {
		t.Errorf("locale-carrying call must yield the same terms, got %v", localized)
	}
}

func TestUnitCompoundSorted(t *testing.T) {
	u := U("second").Mul(U("meter")) // insertion order reversed
	terms := u.Compound("", Options{})
	if terms[0].Symbol != "meter" || terms[1].Symbol != "second" {
		t.Errorf("expected terms sorted by symbol, got %v", terms)
	}
}

func TestRegistrySymbols(t *testing.T) {
	reg := NewRegistry()
	if reg.Symbol("meter") != "m" {
		t.Errorf("expected symbol m for meter, got %q", reg.Symbol("meter"))
	}
	if reg.Symbol("parsec") != "parsec" {
		t.Errorf("expected unknown names to pass through, got %q", reg.Symbol("parsec"))
	}
	reg.DefineSymbol("parsec", "pc")
	if reg.Symbol("parsec") != "pc" {
		t.Errorf("expected pc after DefineSymbol, got %q", reg.Symbol("parsec"))
	}
}

type htmlMag struct{}

func (htmlMag) RenderHTML() string { return "<span>x</span>" }

func TestKindOf(t *testing.T) {
	if KindOf(1.5) != KindScalar {
		t.Errorf("float64 should be a scalar")
	}
	if KindOf(Vector{1, 2}) != KindIterable {
		t.Errorf("Vector should be iterable")
	}
	if KindOf(Array0D(1.5)) != KindArray0D {
		t.Errorf("axis-less array should be 0-d")
	}
	a, err := NewArray([]int{2, 2}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if KindOf(a) != KindArrayND {
		t.Errorf("2x2 array should be n-d")
	}
	if KindOf(htmlMag{}) != KindSelfRendering {
		t.Errorf("RenderHTML implementer should be self-rendering")
	}
	if Iterable(Array0D(1.5)) {
		t.Errorf("0-d array prints as a scalar, must not count as iterable")
	}
	if !Iterable(a) {
		t.Errorf("n-d array must count as iterable")
	}
}

func TestArrayShape(t *testing.T) {
	if _, err := NewArray([]int{2, 2}, []float64{1, 2, 3}); err != ErrShapeMismatch {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
	a, _ := NewArray([]int{2, 2}, []float64{1, 2, 3, 4})
	s := a.Sprint(func(v float64) string { return "x" })
	if s != "[[x x]\n [x x]]" {
		t.Errorf("unexpected 2-d print form: %q", s)
	}
	var empty Array
	if empty.Len() != 0 {
		t.Errorf("zero-value array must be empty, Len = %d", empty.Len())
	}
	if s = empty.Sprint(func(v float64) string { return "x" }); s != "" {
		t.Errorf("zero-value array must print empty, got %q", s)
	}
}

func TestUncertaintyFormat(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	u := Uncertainty{Value: 1.5, Err: 0.1}
	s, err := u.Format("")
	if err != nil {
		t.Fatal(err)
	}
	if s != "1.50+/-0.10" {
		t.Errorf("expected 1.50+/-0.10, got %q", s)
	}
	s, _ = Uncertainty{Value: 5.2e7, Err: 3e6}.Format("")
	if s != "(5.20+/-0.30)e+07" {
		t.Errorf("expected shared-exponent form, got %q", s)
	}
	s, _ = Uncertainty{Value: 1.5e-12, Err: 5e-14}.Format("")
	if s != "(1.50+/-0.05)e-12" {
		t.Errorf("expected negative exponent form, got %q", s)
	}
	s, _ = Uncertainty{Value: 1.5, Err: 0.1}.Format(".1f")
	if s != "1.5+/-0.1" {
		t.Errorf("expected precision 1, got %q", s)
	}
	s, _ = Uncertainty{Value: 1.5, Err: 0.1}.Format(".3e")
	if s != "(1.500+/-0.100)e+00" {
		t.Errorf("expected forced scientific form, got %q", s)
	}
	// trailing display-mode letters from a whole measurement spec
	s, _ = Uncertainty{Value: 1.5, Err: 0.1}.Format(".2fH")
	if s != "1.50+/-0.10" {
		t.Errorf("expected trailing letters to be ignored, got %q", s)
	}
	if _, err = u.Format(".x"); err != ErrBadFormatSpec {
		t.Errorf("expected ErrBadFormatSpec, got %v", err)
	}
}

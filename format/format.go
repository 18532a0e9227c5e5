package format

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/quant"
)

// Options is the configuration bag passed alongside a format spec,
// shared with the unit algebra. Locale selects the decimal and grouping
// conventions of the number formatter; the bag travels unchanged into
// every collaborator call, Unit.Compound included.
type Options = quant.Options

// Renderer is the common contract of the interchangeable output
// renderers. Every operation is a stateless pure transformation over its
// arguments plus the registry defaults reachable from them; collaborator
// errors are propagated unchanged.
type Renderer interface {
	FormatMagnitude(m quant.Magnitude, mspec string, opts Options) (string, error)
	FormatUnit(u quant.Unit, uspec string, opts Options) (string, error)
	FormatQuantity(q quant.Quantity, spec string, opts Options) (string, error)
	FormatUncertainty(u quant.Uncertainty, uncSpec string, opts Options) (string, error)
	FormatMeasurement(m quant.Measurement, spec string, opts Options) (string, error)
}

// unitFormats are the unit-format letters recognized in a spec: H
// selects HTML, D the plain default text form, C compact console text.
const unitFormats = "HDC"

// customFlags are spec characters with registry-specific meaning; they
// are stripped before a spec reaches the uncertainty formatter.
const customFlags = "~#"

// For returns the renderer registered for a unit-format letter, or nil
// for an unknown one.
func For(letter string) Renderer {
	switch letter {
	case "H":
		return NewHTML()
	case "D":
		return NewPlain()
	case "C":
		return NewConsole(nil, nil)
	}
	return nil
}

// SplitFormat splits a format spec into its magnitude half and its unit
// half. Unit-format letters and the short flag '~' belong to the unit
// half, everything else to the magnitude half. Empty halves fill in from
// the registry default: per-side if separate is set, wholesale (only
// when the entire spec is empty) otherwise.
func SplitFormat(spec, deflt string, separate bool) (mspec, uspec string) {
	mspec, uspec = partition(spec)
	dm, du := partition(deflt)
	if separate {
		if mspec == "" {
			mspec = dm
		}
		if uspec == "" {
			uspec = du
		}
	} else if spec == "" {
		mspec, uspec = dm, du
	}
	return mspec, uspec
}

func partition(spec string) (mspec, uspec string) {
	var m, u strings.Builder
	for _, c := range spec {
		if c == '~' || strings.ContainsRune(unitFormats, c) {
			u.WriteRune(c)
		} else {
			m.WriteRune(c)
		}
	}
	return m.String(), u.String()
}

// RemoveCustomFlags strips registry-specific flag characters from a
// spec, leaving a directive the uncertainty formatter understands.
func RemoveCustomFlags(spec string) string {
	for _, f := range customFlags {
		spec = strings.ReplaceAll(spec, string(f), "")
	}
	return spec
}

// RenderOptions parameterize the generic compound renderer. Templates
// use "{}" placeholders, filled left to right.
type RenderOptions struct {
	AsRatio           bool   // negative exponents move into a denominator
	SingleDenominator bool   // one shared denominator instead of repeated divisions
	ProductFmt        string // joins multiplicative terms
	DivisionFmt       string // joins numerator and denominator, two slots
	PowerFmt          string // symbol and exponent, two slots
	ParenthesesFmt    string // wraps a multi-term compound, one slot
}

// Render turns ordered symbol/exponent pairs into a string. Exponent 1
// omits the power template; with a ratio, a denominator of more than one
// term is parenthesized when a single denominator is requested.
func Render(terms []quant.Term, opt RenderOptions) string {
	if len(terms) == 0 {
		return ""
	}
	var pos, neg []string
	for _, t := range terms {
		switch {
		case t.Exp == 1:
			pos = append(pos, t.Symbol)
		case t.Exp > 0:
			pos = append(pos, fill(opt.PowerFmt, t.Symbol, strconv.Itoa(t.Exp)))
		case opt.AsRatio && t.Exp == -1:
			neg = append(neg, t.Symbol)
		case opt.AsRatio:
			neg = append(neg, fill(opt.PowerFmt, t.Symbol, strconv.Itoa(-t.Exp)))
		default:
			pos = append(pos, fill(opt.PowerFmt, t.Symbol, strconv.Itoa(t.Exp)))
		}
	}
	if !opt.AsRatio || len(neg) == 0 {
		return strings.Join(pos, opt.ProductFmt)
	}
	numer := "1"
	if len(pos) > 0 {
		numer = strings.Join(pos, opt.ProductFmt)
	}
	if opt.SingleDenominator {
		denom := strings.Join(neg, opt.ProductFmt)
		if len(neg) > 1 {
			denom = fill(opt.ParenthesesFmt, denom)
		}
		return fill(opt.DivisionFmt, numer, denom)
	}
	out := numer
	for _, d := range neg {
		out = fill(opt.DivisionFmt, out, d)
	}
	return out
}

// JoinMagUnit joins a formatted magnitude and a formatted unit with a
// two-slot template. An empty unit string yields the magnitude alone, so
// neither the scalar template's separating space nor the table
// template's empty row appear for dimensionless quantities.
func JoinMagUnit(tmpl, mstr, ustr string) string {
	if ustr == "" {
		return mstr
	}
	return fill(tmpl, mstr, ustr)
}

// JoinUncertainty joins a formatted value ± error composite and a
// formatted unit. The composite is wrapped in lpar/rpar to bind the unit
// to the whole of it; without a unit the markers are dropped.
func JoinUncertainty(tmpl, lpar, rpar, ucstr, ustr string) string {
	if ustr == "" {
		return ucstr
	}
	return fill(tmpl, lpar+ucstr+rpar, ustr)
}

// fill replaces successive "{}" placeholders of a template.
func fill(tmpl string, args ...string) string {
	var sb strings.Builder
	for _, arg := range args {
		i := strings.Index(tmpl, "{}")
		if i < 0 {
			break
		}
		sb.WriteString(tmpl[:i])
		sb.WriteString(arg)
		tmpl = tmpl[i+2:]
	}
	sb.WriteString(tmpl)
	return sb.String()
}

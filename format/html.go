package format

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/quant"
	"github.com/npillmayer/quant/number"
)

// expPattern recognizes scientific notation at the start of a rendered
// magnitude: mantissa, 'e', optional sign, optional '+' and zero
// padding, exponent digits.
var expPattern = regexp.MustCompile(`([0-9]\.?[0-9]*)e(-?)\+?0*([0-9]+)`)

// The two polarities of a trailing exponent behind a parenthesized
// uncertainty differ by one character in sign reconstruction, so they
// stay separate substitutions.
var (
	expSuffixPos = regexp.MustCompile(`\)e\+0?(\d+)`)
	expSuffixNeg = regexp.MustCompile(`\)e-0?(\d+)`)
)

// htmlTableTmpl joins an array-like magnitude and its unit as a two-row
// table instead of a plain text template.
const htmlTableTmpl = "<table><tbody>" +
	"<tr><th>Magnitude</th>" +
	"<td style='text-align:left;'>{}</td></tr>" +
	"<tr><th>Units</th><td style='text-align:left;'>{}</td></tr>" +
	"</tbody></table>"

// HTML renders quantities as HTML fragments, suitable for embedding in
// notebook cells or other rich-text contexts. Emitted markup uses
// <sup>, <pre>, <br> and table tags plus the &plusmn; entity; magnitude
// content is not escaped beyond what the number formatter produces.
type HTML struct{}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML {
	return &HTML{}
}

// FormatMagnitude renders a bare magnitude. Self-rendering magnitudes
// are nested verbatim; arrays print as a monospace block; scalars go
// through the locale-aware number formatter. A scalar result in
// scientific notation is rewritten to mantissa×10 with a superscripted
// exponent.
func (h *HTML) FormatMagnitude(m quant.Magnitude, mspec string, opts Options) (string, error) {
	fn, err := number.New(opts.Locale)
	if err != nil {
		return "", err
	}
	var mstr string
	switch quant.KindOf(m) {
	case quant.KindSelfRendering:
		mstr = m.(quant.SelfRendering).RenderHTML()
	case quant.KindArray0D:
		var v float64
		if v, err = elemOf(m); err == nil {
			mstr, err = fn.Format(v, mspec)
		}
	case quant.KindArrayND:
		var s string
		s, err = sprintArray(arrayOf(m), fn, mspec)
		mstr = "<pre>" + strings.ReplaceAll(s, "\n", "") + "</pre>"
	case quant.KindIterable:
		var s string
		s, err = sprintVector(m.(quant.Vector), fn, mspec)
		mstr = "<pre>" + strings.ReplaceAll(s, "\n", "<br>") + "</pre>"
	default:
		var v float64
		if v, err = scalarValue(m); err == nil {
			mstr, err = fn.Format(v, mspec)
		}
	}
	if err != nil {
		return "", err
	}
	// one substitution, anchored at the start of the string
	if loc := expPattern.FindStringSubmatchIndex(mstr); loc != nil && loc[0] == 0 {
		exp, _ := strconv.Atoi(mstr[loc[4]:loc[5]] + mstr[loc[6]:loc[7]])
		mstr = mstr[loc[2]:loc[3]] + "×10<sup>" + strconv.Itoa(exp) + "</sup>" + mstr[loc[1]:]
	}
	return mstr, nil
}

// FormatUnit renders a compound unit as a ratio with one shared
// denominator, exponents in superscript tags.
func (h *HTML) FormatUnit(u quant.Unit, uspec string, opts Options) (string, error) {
	terms := u.Compound(uspec, opts)
	return Render(terms, RenderOptions{
		AsRatio:           true,
		SingleDenominator: true,
		ProductFmt:        " ",
		DivisionFmt:       "{}/{}",
		PowerFmt:          "{}<sup>{}</sup>",
		ParenthesesFmt:    "({})",
	}), nil
}

// FormatQuantity renders magnitude and unit joined by a space, or by a
// two-row table when the magnitude is array-like.
func (h *HTML) FormatQuantity(q quant.Quantity, spec string, opts Options) (string, error) {
	reg := q.Registry()
	mspec, uspec := SplitFormat(spec, reg.DefaultFormat, reg.SeparateFormatDefaults)
	tmpl := "{} {}"
	if quant.Iterable(q.Magnitude) {
		tmpl = htmlTableTmpl
	}
	mstr, err := h.FormatMagnitude(q.Magnitude, mspec, opts)
	if err != nil {
		return "", err
	}
	ustr, err := h.FormatUnit(q.Units, uspec, opts)
	if err != nil {
		return "", err
	}
	return JoinMagUnit(tmpl, mstr, ustr), nil
}

// FormatUncertainty renders a value ± error composite, with the plain
// "+/-" separator replaced by the ± entity and a trailing shared
// exponent rewritten to ×10 with a superscripted exponent.
func (h *HTML) FormatUncertainty(u quant.Uncertainty, uncSpec string, opts Options) (string, error) {
	s, err := u.Format(uncSpec)
	if err != nil {
		return "", err
	}
	s = strings.ReplaceAll(s, "+/-", " &plusmn; ")
	s = expSuffixPos.ReplaceAllString(s, ")×10<sup>$1</sup>")
	s = expSuffixNeg.ReplaceAllString(s, ")×10<sup>-$1</sup>")
	return s, nil
}

// FormatMeasurement renders a measurement as the parenthesized value ±
// error composite followed by the unit.
//
// The uncertainty spec is the whole measurement spec with custom flags
// removed — not the split-off magnitude spec — because the composite is
// formatted as one piece.
func (h *HTML) FormatMeasurement(m quant.Measurement, spec string, opts Options) (string, error) {
	reg := m.Registry()
	_, uspec := SplitFormat(spec, reg.DefaultFormat, reg.SeparateFormatDefaults)
	uncSpec := RemoveCustomFlags(spec)
	ucstr, err := h.FormatUncertainty(m.Magnitude, uncSpec, opts)
	if err != nil {
		return "", err
	}
	ustr, err := h.FormatUnit(m.Units, uspec, opts)
	if err != nil {
		return "", err
	}
	return JoinUncertainty("{} {}", "(", ")", ucstr, ustr), nil
}

// --- Magnitude helpers shared by the renderers -----------------------------

func arrayOf(m quant.Magnitude) quant.Array {
	if a, ok := m.(quant.Array); ok {
		return a
	}
	return *(m.(*quant.Array))
}

// elemOf extracts the single element of an array without axes. A
// zero-value array has no element to format.
func elemOf(m quant.Magnitude) (float64, error) {
	a := arrayOf(m)
	if a.Len() == 0 {
		T().Errorf("empty array magnitude cannot be formatted")
		return 0, quant.ErrIllegalArguments
	}
	return a.Elem(), nil
}

// sprintArray renders an array with the number formatter applied per
// element. A formatting error inside the callback aborts the render.
func sprintArray(a quant.Array, fn *number.Formatter, mspec string) (string, error) {
	var elemErr error
	s := a.Sprint(func(v float64) string {
		es, err := fn.Format(v, mspec)
		if err != nil {
			if elemErr == nil {
				elemErr = err
			}
			return ""
		}
		return es
	})
	if elemErr != nil {
		return "", elemErr
	}
	return s, nil
}

// sprintVector renders a plain list-like magnitude in bracketed form.
func sprintVector(v quant.Vector, fn *number.Formatter, mspec string) (string, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		es, err := fn.Format(e, mspec)
		if err != nil {
			return "", err
		}
		sb.WriteString(es)
	}
	sb.WriteByte(']')
	return sb.String(), nil
}

// scalarValue widens the plain number types to float64. Other types
// cannot take the scalar path.
func scalarValue(m quant.Magnitude) (float64, error) {
	switch v := m.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	}
	T().Errorf("magnitude type %T cannot be formatted as a scalar", m)
	return 0, quant.ErrIllegalArguments
}

package format

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/quant"
	"github.com/npillmayer/quant/html"
	"github.com/npillmayer/quant/number"
)

// Plain renders quantities as plain text, the 'D' default format:
//
//	1.5e+06 meter ** 2 / second
//
// Self-rendering magnitudes are flattened to their inner text.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// FormatMagnitude renders a bare magnitude as plain text.
func (p *Plain) FormatMagnitude(m quant.Magnitude, mspec string, opts Options) (string, error) {
	fn, err := number.New(opts.Locale)
	if err != nil {
		return "", err
	}
	switch quant.KindOf(m) {
	case quant.KindSelfRendering:
		return html.Text(m.(quant.SelfRendering).RenderHTML())
	case quant.KindArray0D:
		v, err := elemOf(m)
		if err != nil {
			return "", err
		}
		return fn.Format(v, mspec)
	case quant.KindArrayND:
		return sprintArray(arrayOf(m), fn, mspec)
	case quant.KindIterable:
		return sprintVector(m.(quant.Vector), fn, mspec)
	default:
		v, err := scalarValue(m)
		if err != nil {
			return "", err
		}
		return fn.Format(v, mspec)
	}
}

// FormatUnit renders a compound unit with textual operators, one
// division per denominator term.
func (p *Plain) FormatUnit(u quant.Unit, uspec string, opts Options) (string, error) {
	terms := u.Compound(uspec, opts)
	return Render(terms, RenderOptions{
		AsRatio:           true,
		SingleDenominator: false,
		ProductFmt:        " * ",
		DivisionFmt:       "{} / {}",
		PowerFmt:          "{} ** {}",
		ParenthesesFmt:    "({})",
	}), nil
}

// FormatQuantity renders magnitude and unit joined by a space.
func (p *Plain) FormatQuantity(q quant.Quantity, spec string, opts Options) (string, error) {
	reg := q.Registry()
	mspec, uspec := SplitFormat(spec, reg.DefaultFormat, reg.SeparateFormatDefaults)
	mstr, err := p.FormatMagnitude(q.Magnitude, mspec, opts)
	if err != nil {
		return "", err
	}
	ustr, err := p.FormatUnit(q.Units, uspec, opts)
	if err != nil {
		return "", err
	}
	return JoinMagUnit("{} {}", mstr, ustr), nil
}

// FormatUncertainty renders a value ± error composite unchanged, with
// its textual "+/-" separator.
func (p *Plain) FormatUncertainty(u quant.Uncertainty, uncSpec string, opts Options) (string, error) {
	return u.Format(uncSpec)
}

// FormatMeasurement renders a measurement as the parenthesized composite
// followed by the unit. The uncertainty spec derives from the whole
// measurement spec, custom flags removed.
func (p *Plain) FormatMeasurement(m quant.Measurement, spec string, opts Options) (string, error) {
	reg := m.Registry()
	_, uspec := SplitFormat(spec, reg.DefaultFormat, reg.SeparateFormatDefaults)
	uncSpec := RemoveCustomFlags(spec)
	ucstr, err := p.FormatUncertainty(m.Magnitude, uncSpec, opts)
	if err != nil {
		return "", err
	}
	ustr, err := p.FormatUnit(m.Units, uspec, opts)
	if err != nil {
		return "", err
	}
	return JoinUncertainty("{} {}", "(", ")", ucstr, ustr), nil
}

package quant

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Uncertainty is a nominal value together with a symmetric error. It is
// the magnitude type of measurements.
type Uncertainty struct {
	Value float64
	Err   float64
}

// letters a measurement spec may still carry after custom-flag removal;
// Format tolerates and ignores them.
const displayModeLetters = "PLHCDS~#"

// Format renders the composite as "V+/-E". With scientific notation —
// requested by an 'e' type or triggered by the magnitude of the nominal
// value — both parts share one exponent:
//
//	(1.50+/-0.10)e+07
//
// The spec is a short directive string of the form [.prec][type] with
// types f, F, e, E, g and G; the default precision is 2. Trailing
// display-mode letters are ignored, so a measurement-level spec may be
// passed through whole.
func (u Uncertainty) Format(spec string) (string, error) {
	spec = strings.TrimRight(spec, displayModeLetters)
	prec := 2
	verb := byte(0)
	if spec != "" {
		rest := spec
		if rest[0] == '.' {
			i := 1
			for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
				i++
			}
			if i == 1 {
				return "", ErrBadFormatSpec
			}
			p, err := strconv.Atoi(rest[1:i])
			if err != nil {
				return "", ErrBadFormatSpec
			}
			prec = p
			rest = rest[i:]
		}
		if len(rest) > 1 {
			return "", ErrBadFormatSpec
		}
		if len(rest) == 1 {
			switch rest[0] {
			case 'f', 'F', 'e', 'E', 'g', 'G':
				verb = rest[0]
			default:
				return "", ErrBadFormatSpec
			}
		}
	}

	sci := verb == 'e' || verb == 'E'
	if (verb == 0 || verb == 'g' || verb == 'G') && u.Value != 0 {
		av := math.Abs(u.Value)
		sci = av >= 1e6 || av < 1e-4
	}
	if !sci {
		return fmt.Sprintf("%.*f+/-%.*f", prec, u.Value, prec, u.Err), nil
	}

	exp := 0
	if u.Value != 0 {
		exp = int(math.Floor(math.Log10(math.Abs(u.Value))))
	}
	scale := math.Pow(10, float64(exp))
	e := "e"
	if verb == 'E' {
		e = "E"
	}
	return fmt.Sprintf("(%.*f+/-%.*f)%s%+03d",
		prec, u.Value/scale, prec, u.Err/scale, e, exp), nil
}

func (u Uncertainty) String() string {
	s, err := u.Format("")
	if err != nil {
		return fmt.Sprintf("%v+/-%v", u.Value, u.Err)
	}
	return s
}

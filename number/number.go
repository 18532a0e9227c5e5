package number

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Error is an error type for the number package.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrBadSpec is flagged when a format spec cannot be interpreted.
const ErrBadSpec = Error("invalid number format spec")

// Formatter converts numbers to strings. The zero value formats without
// locale conventions; New binds a formatter to a locale.
type Formatter struct {
	printer *message.Printer
}

// New creates a formatter for a locale identifier like "de-DE" or "fr".
// An empty locale yields a locale-free formatter. An unparsable locale
// is an error.
func New(locale string) (*Formatter, error) {
	if locale == "" {
		return &Formatter{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

// Spec is a parsed format directive:
//
//	[sign][#][0][width][,][.prec][type]
//
// with types f, F, e, E, g, G, d, n and %. An empty directive formats in
// shortest 'g' form.
type Spec struct {
	Sign  byte // '+', '-' or ' '; 0 if absent
	Alt   bool // '#'
	Zero  bool // '0' padding
	Width int
	Comma bool // ',' grouping
	Prec  int  // -1 if absent
	Verb  byte // 0 if absent
}

// ParseSpec parses a format directive. Unknown characters are an error.
func ParseSpec(spec string) (Spec, error) {
	s := Spec{Prec: -1}
	rest := spec
	if rest != "" && (rest[0] == '+' || rest[0] == '-' || rest[0] == ' ') {
		s.Sign = rest[0]
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '#' {
		s.Alt = true
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '0' {
		s.Zero = true
		rest = rest[1:]
	}
	for rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		s.Width = s.Width*10 + int(rest[0]-'0')
		rest = rest[1:]
	}
	if rest != "" && rest[0] == ',' {
		s.Comma = true
		rest = rest[1:]
	}
	if rest != "" && rest[0] == '.' {
		rest = rest[1:]
		start := rest
		p := 0
		for rest != "" && rest[0] >= '0' && rest[0] <= '9' {
			p = p*10 + int(rest[0]-'0')
			rest = rest[1:]
		}
		if len(start) == len(rest) {
			return Spec{}, ErrBadSpec
		}
		s.Prec = p
	}
	if len(rest) > 1 {
		return Spec{}, ErrBadSpec
	}
	if len(rest) == 1 {
		switch rest[0] {
		case 'f', 'F', 'e', 'E', 'g', 'G', 'd', 'n', '%':
			s.Verb = rest[0]
		default:
			return Spec{}, ErrBadSpec
		}
	}
	return s, nil
}

// Format renders v according to spec. Errors stem from the spec only;
// every float value formats.
func (f *Formatter) Format(v float64, spec string) (string, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	if f != nil && f.printer != nil {
		return f.localized(v, s), nil
	}
	return formatPlain(v, s), nil
}

func (f *Formatter) localized(v float64, s Spec) string {
	switch s.Verb {
	case 'd':
		return pad(sign(f.printer.Sprintf("%d", int64(v)), v, s.Sign), s)
	case 'n', 0:
		var opts []number.Option
		if s.Prec >= 0 {
			opts = append(opts, number.Scale(s.Prec))
		}
		return pad(sign(f.printer.Sprint(number.Decimal(v, opts...)), v, s.Sign), s)
	case '%':
		prec := s.Prec
		if prec < 0 {
			prec = 6
		}
		return pad(sign(f.printer.Sprintf("%.*f", prec, v*100)+"%", v, s.Sign), s)
	default:
		verb := "%"
		if s.Prec >= 0 {
			verb += "." + strconv.Itoa(s.Prec)
		}
		verb += string(s.Verb)
		return pad(sign(f.printer.Sprintf(verb, v), v, s.Sign), s)
	}
}

func formatPlain(v float64, s Spec) string {
	var out string
	switch s.Verb {
	case 'd':
		out = strconv.FormatInt(int64(v), 10)
		if s.Comma {
			out = group(out, ',')
		}
	case 'f', 'F':
		out = strconv.FormatFloat(v, 'f', precOr(s, 6), 64)
		if s.Comma {
			out = group(out, ',')
		}
	case 'e', 'E':
		out = strconv.FormatFloat(v, byte(s.Verb), precOr(s, 6), 64)
	case 'g', 'G':
		out = strconv.FormatFloat(v, byte(s.Verb), precOr(s, -1), 64)
	case 'n':
		out = strconv.FormatFloat(v, 'g', precOr(s, -1), 64)
		if !strings.ContainsAny(out, "eE") {
			out = group(out, ',')
		}
	case '%':
		out = strconv.FormatFloat(v*100, 'f', precOr(s, 6), 64) + "%"
	default:
		out = strconv.FormatFloat(v, 'g', precOr(s, -1), 64)
		if s.Comma && !strings.ContainsAny(out, "eE") {
			out = group(out, ',')
		}
	}
	return pad(sign(out, v, s.Sign), s)
}

func precOr(s Spec, deflt int) int {
	if s.Prec >= 0 {
		return s.Prec
	}
	return deflt
}

// sign prepends an explicit sign for non-negative values when requested.
func sign(out string, v float64, flag byte) string {
	if v < 0 || strings.HasPrefix(out, "-") {
		return out
	}
	switch flag {
	case '+':
		return "+" + out
	case ' ':
		return " " + out
	}
	return out
}

// pad widens the result to the requested minimum width. With the zero
// flag, padding goes between sign and digits.
func pad(out string, s Spec) string {
	if len(out) >= s.Width {
		return out
	}
	n := s.Width - len(out)
	if !s.Zero {
		return strings.Repeat(" ", n) + out
	}
	head := ""
	if out != "" && (out[0] == '+' || out[0] == '-' || out[0] == ' ') {
		head, out = out[:1], out[1:]
	}
	return head + strings.Repeat("0", n) + out
}

// group inserts sep between three-digit groups of the integer part.
func group(s string, sep byte) string {
	head := ""
	if s != "" && (s[0] == '+' || s[0] == '-' || s[0] == ' ') {
		head, s = s[:1], s[1:]
	}
	intpart, tail := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intpart, tail = s[:i], s[i:]
	}
	if len(intpart) <= 3 {
		return head + intpart + tail
	}
	var sb strings.Builder
	lead := len(intpart) % 3
	if lead > 0 {
		sb.WriteString(intpart[:lead])
	}
	for i := lead; i < len(intpart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(sep)
		}
		sb.WriteString(intpart[i : i+3])
	}
	return head + sb.String() + tail
}

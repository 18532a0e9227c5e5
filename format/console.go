package format

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/quant"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette maps the parts of a rendered quantity to console colors. Nil
// entries leave the respective part uncolored.
type Palette struct {
	Magnitude   *color.Color
	Unit        *color.Color
	Uncertainty *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Magnitude:   color.New(color.FgBlue),
		Unit:        color.New(color.FgGreen),
		Uncertainty: color.New(color.FgRed),
	}
}

// ConsoleConfig holds parameters for console output. LineWidth caps the
// width of multi-line array blocks; rows exceeding it are clipped.
// Context selects the width conventions for non-Latin text.
type ConsoleConfig struct {
	LineWidth int
	Context   *uax11.Context
}

// defaultBlockWidth is wide enough for most array magnitudes without
// wrapping on an 80-column terminal next to a unit.
const defaultBlockWidth = 65

// ConfigFromTerminal is a simple helper for creating a console
// configuration. If stdout is a terminal, its width caps the block
// width for array magnitudes, leaving room for the unit appended after
// the block.
func ConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{LineWidth: defaultBlockWidth}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			switch {
			case w > defaultBlockWidth+10:
				config.LineWidth = w - 10
			case w > 20:
				config.LineWidth = w
			default:
				config.LineWidth = 20
			}
		}
	}
	T().P("format", "console").Infof("setting block width to %d en", config.LineWidth)
	return config
}

var graphemeSetup sync.Once

// Console renders quantities as colored text for fixed-width terminals:
// the compact 'C' format. Multi-line array magnitudes are padded to a
// uniform display width, measured in fixed-width character positions.
type Console struct {
	palette *Palette
	config  *ConsoleConfig
	plain   Plain
}

// NewConsole creates a console renderer. A nil palette selects the
// default colors, a nil config reads the terminal properties.
func NewConsole(palette *Palette, config *ConsoleConfig) *Console {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	if palette == nil {
		palette = makeDefaultPalette()
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	return &Console{palette: palette, config: config}
}

// FormatMagnitude renders a bare magnitude, padding array rows to a
// uniform width.
func (c *Console) FormatMagnitude(m quant.Magnitude, mspec string, opts Options) (string, error) {
	s, err := c.plain.FormatMagnitude(m, mspec, opts)
	if err != nil {
		return "", err
	}
	if quant.KindOf(m) == quant.KindArrayND {
		s = c.padBlock(s)
	}
	return c.colorize(c.palette.Magnitude, s), nil
}

// FormatUnit renders a compound unit in compact console form, with a
// middle dot between terms and caret exponents.
func (c *Console) FormatUnit(u quant.Unit, uspec string, opts Options) (string, error) {
	terms := u.Compound(uspec, opts)
	s := Render(terms, RenderOptions{
		AsRatio:           true,
		SingleDenominator: true,
		ProductFmt:        "·",
		DivisionFmt:       "{}/{}",
		PowerFmt:          "{}^{}",
		ParenthesesFmt:    "({})",
	})
	return c.colorize(c.palette.Unit, s), nil
}

// FormatQuantity renders magnitude and unit joined by a space.
func (c *Console) FormatQuantity(q quant.Quantity, spec string, opts Options) (string, error) {
	reg := q.Registry()
	mspec, uspec := SplitFormat(spec, reg.DefaultFormat, reg.SeparateFormatDefaults)
	mstr, err := c.FormatMagnitude(q.Magnitude, mspec, opts)
	if err != nil {
		return "", err
	}
	ustr, err := c.FormatUnit(q.Units, uspec, opts)
	if err != nil {
		return "", err
	}
	return JoinMagUnit("{} {}", mstr, ustr), nil
}

// FormatUncertainty renders a value ± error composite with the ± sign.
func (c *Console) FormatUncertainty(u quant.Uncertainty, uncSpec string, opts Options) (string, error) {
	s, err := u.Format(uncSpec)
	if err != nil {
		return "", err
	}
	s = strings.ReplaceAll(s, "+/-", " ± ")
	return c.colorize(c.palette.Uncertainty, s), nil
}

// FormatMeasurement renders a measurement as the parenthesized composite
// followed by the unit. The uncertainty spec derives from the whole
// measurement spec, custom flags removed.
func (c *Console) FormatMeasurement(m quant.Measurement, spec string, opts Options) (string, error) {
	reg := m.Registry()
	_, uspec := SplitFormat(spec, reg.DefaultFormat, reg.SeparateFormatDefaults)
	ucstr, err := c.FormatUncertainty(m.Magnitude, RemoveCustomFlags(spec), opts)
	if err != nil {
		return "", err
	}
	ustr, err := c.FormatUnit(m.Units, uspec, opts)
	if err != nil {
		return "", err
	}
	return JoinUncertainty("{} {}", "(", ")", ucstr, ustr), nil
}

// Print formats a quantity and writes it to w, followed by a newline.
// A nil writer selects stdout.
func (c *Console) Print(w io.Writer, q quant.Quantity, spec string, opts Options) error {
	if w == nil {
		w = os.Stdout
	}
	s, err := c.FormatQuantity(q, spec, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// padBlock pads every line of a multi-line block to the display width of
// the widest one, measured in fixed-width character positions. Rows
// wider than the configured block width are clipped first.
func (c *Console) padBlock(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= 1 {
		return s
	}
	widest := 0
	widths := make([]int, len(lines))
	for i, line := range lines {
		if c.config.LineWidth > 0 {
			lines[i] = c.clip(line, c.config.LineWidth)
		}
		widths[i] = c.lineWidth(lines[i])
		if widths[i] > widest {
			widest = widths[i]
		}
	}
	for i, line := range lines {
		if widths[i] < widest {
			lines[i] = line + strings.Repeat(" ", widest-widths[i])
		}
	}
	return strings.Join(lines, "\n")
}

// lineWidth measures display width in fixed-width character positions.
// ASCII runs count one position per byte; everything else is measured
// per grapheme under East Asian width rules.
func (c *Console) lineWidth(s string) int {
	w, i := 0, 0
	for i < len(s) {
		if s[i] < 0x80 {
			w++
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] >= 0x80 {
			j++
		}
		w += uax11.StringWidth(grapheme.StringFromString(s[i:j]), c.config.Context)
		i = j
	}
	return w
}

// clip shortens a row exceeding the block width, marking the cut with an
// ellipsis.
func (c *Console) clip(line string, limit int) string {
	if c.lineWidth(line) <= limit {
		return line
	}
	rs := []rune(line)
	for len(rs) > 0 && c.lineWidth(string(rs))+1 > limit {
		rs = rs[:len(rs)-1]
	}
	return string(rs) + "…"
}

func (c *Console) colorize(col *color.Color, s string) string {
	if col == nil || s == "" {
		return s
	}
	return col.Sprint(s)
}

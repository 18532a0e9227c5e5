package quant

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Registry holds presentation defaults shared by all quantities created
// from it, plus the table mapping unit names to their short symbols.
//
// DefaultFormat is consulted whenever a quantity or measurement is
// rendered with an empty or partial format spec. If
// SeparateFormatDefaults is set, the magnitude half and the unit half of
// the default fill in independently; otherwise the default replaces an
// empty spec wholesale.
type Registry struct {
	DefaultFormat          string
	SeparateFormatDefaults bool
	symbols                map[string]string
}

// NewRegistry creates a registry seeded with symbols for common SI unit
// names. Separate format defaults are enabled.
func NewRegistry() *Registry {
	reg := &Registry{
		SeparateFormatDefaults: true,
		symbols:                make(map[string]string),
	}
	for name, sym := range map[string]string{
		"meter":    "m",
		"second":   "s",
		"gram":     "g",
		"kilogram": "kg",
		"ampere":   "A",
		"kelvin":   "K",
		"mole":     "mol",
		"candela":  "cd",
		"radian":   "rad",
		"hertz":    "Hz",
		"newton":   "N",
		"pascal":   "Pa",
		"joule":    "J",
		"watt":     "W",
		"volt":     "V",
		"ohm":      "Ω",
	} {
		reg.symbols[name] = sym
	}
	return reg
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared registry used by units and
// quantities which were not created through an explicit one.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// DefineSymbol registers (or overrides) the short symbol for a unit name.
func (reg *Registry) DefineSymbol(name, symbol string) {
	reg.symbols[name] = symbol
}

// Symbol returns the short symbol for a unit name. Names without a
// registered symbol are returned unchanged.
func (reg *Registry) Symbol(name string) string {
	if sym, ok := reg.symbols[name]; ok {
		return sym
	}
	return name
}

// Unit creates a base unit bound to this registry.
func (reg *Registry) Unit(name string) Unit {
	return Unit{terms: []Term{{Symbol: name, Exp: 1}}, reg: reg}
}

// Quantity binds a magnitude and a unit to this registry.
func (reg *Registry) Quantity(m Magnitude, u Unit) Quantity {
	u.reg = reg
	return Quantity{Magnitude: m, Units: u, reg: reg}
}

// Measurement binds a value ± error composite and a unit to this
// registry.
func (reg *Registry) Measurement(value, err float64, u Unit) Measurement {
	u.reg = reg
	return Measurement{Magnitude: Uncertainty{Value: value, Err: err}, Units: u, reg: reg}
}

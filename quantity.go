package quant

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Quantity pairs a magnitude with a unit expression. Quantities are
// plain values; renderers never modify them.
type Quantity struct {
	Magnitude Magnitude
	Units     Unit
	reg       *Registry
}

// Registry returns the registry owning the quantity's presentation
// defaults, falling back to the shared default registry.
func (q Quantity) Registry() *Registry {
	if q.reg != nil {
		return q.reg
	}
	return q.Units.Registry()
}

// Measurement is a quantity whose magnitude carries an uncertainty.
type Measurement struct {
	Magnitude Uncertainty
	Units     Unit
	reg       *Registry
}

// Registry returns the registry owning the measurement's presentation
// defaults, falling back to the shared default registry.
func (m Measurement) Registry() *Registry {
	if m.reg != nil {
		return m.reg
	}
	return m.Units.Registry()
}

package quant

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"sort"
	"strconv"
	"strings"
)

// Term is one symbol/exponent pair of a compound unit.
type Term struct {
	Symbol string
	Exp    int
}

// Unit is a multiplicative composition of base unit symbols with integer
// exponents. The zero value is the dimensionless unit. Units are
// immutable; the algebra methods return derived units.
//
// A unit remembers the registry it was created from, which supplies the
// name→symbol table for short-form rendering. Units created with U are
// bound to the shared default registry.
type Unit struct {
	terms []Term
	reg   *Registry
}

// U creates a base unit from a unit name, bound to the default registry.
func U(name string) Unit {
	return DefaultRegistry().Unit(name)
}

// IsDimensionless reports whether the unit has no terms.
func (u Unit) IsDimensionless() bool {
	return len(u.terms) == 0
}

// Mul multiplies two units, merging terms with equal symbols. Terms
// cancelling to exponent zero disappear.
func (u Unit) Mul(v Unit) Unit {
	terms := make([]Term, len(u.terms), len(u.terms)+len(v.terms))
	copy(terms, u.terms)
	for _, t := range v.terms {
		terms = addTerm(terms, t.Symbol, t.Exp)
	}
	return Unit{terms: terms, reg: pickRegistry(u.reg, v.reg)}
}

// Div divides a unit by another one.
func (u Unit) Div(v Unit) Unit {
	terms := make([]Term, len(u.terms), len(u.terms)+len(v.terms))
	copy(terms, u.terms)
	for _, t := range v.terms {
		terms = addTerm(terms, t.Symbol, -t.Exp)
	}
	return Unit{terms: terms, reg: pickRegistry(u.reg, v.reg)}
}

// Pow raises a unit to an integer power. Power zero yields the
// dimensionless unit.
func (u Unit) Pow(n int) Unit {
	if n == 0 {
		return Unit{reg: u.reg}
	}
	terms := make([]Term, len(u.terms))
	for i, t := range u.terms {
		terms[i] = Term{Symbol: t.Symbol, Exp: t.Exp * n}
	}
	return Unit{terms: terms, reg: u.reg}
}

// Options is the configuration bag passed alongside format specs. Only
// Locale is interpreted; it travels with every collaborator call so
// renderers bound to different locales cannot interfere.
type Options struct {
	Locale string
}

// Compound returns the ordered symbol/exponent pairs of the unit for
// rendering. If uspec contains the short flag '~', unit names are mapped
// to their registry symbols. Terms are sorted by symbol; terms that
// collapse onto the same symbol are merged.
//
// The options travel with the call; the built-in symbol table is
// locale-independent, so they do not influence the result yet.
func (u Unit) Compound(uspec string, opts Options) []Term {
	short := strings.ContainsRune(uspec, '~')
	reg := u.Registry()
	terms := make([]Term, 0, len(u.terms))
	for _, t := range u.terms {
		sym := t.Symbol
		if short {
			sym = reg.Symbol(sym)
		}
		terms = addTerm(terms, sym, t.Exp)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Symbol < terms[j].Symbol })
	return terms
}

// Registry returns the registry the unit is bound to, falling back to
// the shared default registry.
func (u Unit) Registry() *Registry {
	if u.reg != nil {
		return u.reg
	}
	return DefaultRegistry()
}

func (u Unit) String() string {
	if len(u.terms) == 0 {
		return "dimensionless"
	}
	var sb strings.Builder
	for i, t := range u.terms {
		if i > 0 {
			sb.WriteString(" * ")
		}
		sb.WriteString(t.Symbol)
		if t.Exp != 1 {
			sb.WriteString(" ** ")
			sb.WriteString(strconv.Itoa(t.Exp))
		}
	}
	return sb.String()
}

func addTerm(terms []Term, sym string, exp int) []Term {
	if exp == 0 {
		return terms
	}
	for i, t := range terms {
		if t.Symbol == sym {
			t.Exp += exp
			if t.Exp == 0 {
				return append(terms[:i], terms[i+1:]...)
			}
			terms[i] = t
			return terms
		}
	}
	return append(terms, Term{Symbol: sym, Exp: exp})
}

func pickRegistry(a, b *Registry) *Registry {
	if a != nil {
		return a
	}
	return b
}

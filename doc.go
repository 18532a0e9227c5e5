/*
Package quant renders physical quantities — a numeric magnitude paired
with a unit expression, optionally carrying an uncertainty — as display
strings.

Quantities

A quantity is a magnitude together with a compound unit, e.g.

	9.81 m/s²

Magnitudes may be plain scalars, array-likes, or objects which know how
to render themselves. Units are multiplicative compositions of base unit
symbols with integer exponents. A measurement is a quantity whose
magnitude is a nominal value ± error composite.

This root package holds the data model: units and their algebra, the
magnitude kinds, the registry of presentation defaults, and the quantity
and measurement value types. Rendering is done by interchangeable output
renderers in package quant/format (HTML for notebook-like rich-text
contexts, plain text, ANSI console), which draw on the locale-aware
number formatter in package quant/number.

	reg := quant.NewRegistry()
	q := reg.Quantity(9.81, quant.U("meter").Div(quant.U("second").Pow(2)))
	h := format.NewHTML()
	s, _ := h.FormatQuantity(q, "~", format.Options{})
	// s == "9.81 m/s<sup>2</sup>"

The package does not parse quantities from text and does not convert
between units; it is the presentation front end of a units-of-measure
data model.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package quant

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Error is an error type for the quant module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// ErrShapeMismatch is flagged when an array's shape does not match the
// number of elements provided for it.
const ErrShapeMismatch = Error("array shape does not match element count")

// ErrBadFormatSpec is flagged when an uncertainty format spec cannot be
// interpreted.
const ErrBadFormatSpec = Error("invalid format spec")

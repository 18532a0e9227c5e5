/*
Package format renders quantities, units and measurements on different
output targets. Think of this package in terms of `fmt.Sprint` for
physical quantities.

Rendering a quantity involves more than printing a float: the unit
expression has to be compounded into numerator and denominator, the
magnitude handed to a locale-aware number formatter, and both halves
joined with a target-specific template. This package performs the
following tasks:

▪︎ Split a format spec into its magnitude half and its unit half,
falling back to registry defaults

▪︎ Render a compounded unit with target-specific fragment templates
(product, division, power, parentheses)

▪︎ Join magnitude and unit, or value ± error and unit, into the final
string

Renderer is an interface type and this package offers three
implementations: HTML output for rich-text contexts such as notebook
cells, plain text, and colored console output.

	q := quant.DefaultRegistry().Quantity(1.5e10, quant.U("meter"))
	h := format.NewHTML()
	s, _ := h.FormatQuantity(q, "~", format.Options{})
	// s == "1.5×10<sup>10</sup> m"

Status

API not stable.

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
package format

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

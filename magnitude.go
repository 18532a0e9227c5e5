package quant

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "strings"

// Magnitude is the numeric payload of a quantity. Renderers accept plain
// scalars (float64, float32 and the integer types), a Vector, an Array,
// or any value implementing SelfRendering. Renderers never mutate a
// magnitude; they only inspect its shape and produce a transient string.
type Magnitude interface{}

// SelfRendering is the capability of a magnitude to produce its own
// markup representation. If a magnitude implements it, renderers use the
// returned fragment verbatim and skip number formatting entirely.
type SelfRendering interface {
	RenderHTML() string
}

// Kind classifies the shape of a magnitude. Renderers dispatch on it
// instead of probing attributes dynamically.
type Kind int8

// Magnitude kinds, in dispatch order.
const (
	KindScalar        Kind = iota // plain numbers
	KindArray0D                   // an Array without axes, scalar-equivalent
	KindArrayND                   // an Array with one or more axes
	KindIterable                  // a Vector or other list-like
	KindSelfRendering             // implements SelfRendering
)

// KindOf returns the kind of a magnitude. The self-rendering capability
// takes precedence over everything else.
func KindOf(m Magnitude) Kind {
	switch v := m.(type) {
	case SelfRendering:
		return KindSelfRendering
	case Array:
		if v.NDim() == 0 {
			return KindArray0D
		}
		return KindArrayND
	case *Array:
		if v.NDim() == 0 {
			return KindArray0D
		}
		return KindArrayND
	case Vector:
		return KindIterable
	default:
		return KindScalar
	}
}

// Iterable reports whether a magnitude prints as a sequence of elements.
// Arrays without axes count as scalars, matching their print form.
func Iterable(m Magnitude) bool {
	k := KindOf(m)
	return k == KindArrayND || k == KindIterable
}

// Vector is a plain list-like magnitude.
type Vector []float64

// Array is a minimal n-dimensional array magnitude: a shape plus a flat
// element slice in row-major order. An Array with an empty shape holds a
// single element and behaves like a scalar.
type Array struct {
	shape []int
	data  []float64
}

// NewArray creates an array magnitude. The product of the shape's axes
// must equal the number of elements.
func NewArray(shape []int, data []float64) (Array, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return Array{}, ErrIllegalArguments
		}
		n *= d
	}
	if n != len(data) {
		return Array{}, ErrShapeMismatch
	}
	return Array{shape: shape, data: data}, nil
}

// Array0D creates an array without axes, holding a single element.
func Array0D(v float64) Array {
	return Array{data: []float64{v}}
}

// NDim returns the number of axes.
func (a Array) NDim() int {
	return len(a.shape)
}

// Len returns the total number of elements. The zero-value Array is
// empty.
func (a Array) Len() int {
	return len(a.data)
}

// Elem returns the single element of an array without axes. It must not
// be called on an empty array; callers check Len first.
func (a Array) Elem() float64 {
	return a.data[0]
}

// Sprint renders the array in its default bracketed form, with every
// element produced by elem. Rows of multi-dimensional arrays are
// separated by newlines.
//
// The element callback takes the place of a per-element float formatter
// installed into a global print configuration; it is scoped to this one
// call.
func (a Array) Sprint(elem func(float64) string) string {
	if a.NDim() == 0 {
		if len(a.data) == 0 {
			return ""
		}
		return elem(a.data[0])
	}
	var sb strings.Builder
	a.sprint(&sb, elem, 0, 0)
	return sb.String()
}

func (a Array) sprint(sb *strings.Builder, elem func(float64) string, dim, off int) {
	sb.WriteByte('[')
	if dim == len(a.shape)-1 {
		for i := 0; i < a.shape[dim]; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(elem(a.data[off+i]))
		}
	} else {
		stride := 1
		for _, d := range a.shape[dim+1:] {
			stride *= d
		}
		for i := 0; i < a.shape[dim]; i++ {
			if i > 0 {
				sb.WriteByte('\n')
				for j := 0; j <= dim; j++ {
					sb.WriteByte(' ')
				}
			}
			a.sprint(sb, elem, dim+1, off+i*stride)
		}
	}
	sb.WriteByte(']')
}

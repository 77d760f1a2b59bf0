package latexcalc

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Value is the result of evaluating a formula: either a real number or a
// complex number. Arithmetic on a real and a complex value gives a complex
// value, even when its imaginary part is zero.
type Value struct {
	z    complex128
	cplx bool
}

// Real creates a real value.
func Real(x float64) Value {
	return Value{z: complex(x, 0)}
}

// Complex creates a complex value.
func Complex(re, im float64) Value {
	return Value{z: complex(re, im), cplx: true}
}

func fromComplex(z complex128) Value {
	return Value{z: z, cplx: true}
}

// IsComplex reports whether v is complex.
func (v Value) IsComplex() bool {
	return v.cplx
}

// Re returns the real part of v.
func (v Value) Re() float64 {
	return real(v.z)
}

// Im returns the imaginary part of v. It is always zero for real values.
func (v Value) Im() float64 {
	return imag(v.z)
}

// Complex128 returns v as a complex128.
func (v Value) Complex128() complex128 {
	return v.z
}

// String formats v like strconv's %g, with complex values as a+bi. A negative
// zero real part is written as 0.
func (v Value) String() string {
	x := real(v.z)
	if x == 0 {
		x = 0
	}
	re := strconv.FormatFloat(x, 'g', -1, 64)
	if !v.cplx {
		return re
	}
	im := imag(v.z)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}
	return re + sign + strconv.FormatFloat(im, 'g', -1, 64) + "i"
}

func (v Value) neg() Value {
	v.z = -v.z
	return v
}

func add(a, b Value) Value {
	if a.cplx || b.cplx {
		return fromComplex(a.z + b.z)
	}
	return Real(real(a.z) + real(b.z))
}

func sub(a, b Value) Value {
	if a.cplx || b.cplx {
		return fromComplex(a.z - b.z)
	}
	return Real(real(a.z) - real(b.z))
}

func mul(a, b Value) Value {
	if a.cplx || b.cplx {
		return fromComplex(a.z * b.z)
	}
	return Real(real(a.z) * real(b.z))
}

func quo(a, b Value) Value {
	if a.cplx || b.cplx {
		return fromComplex(a.z / b.z)
	}
	return Real(real(a.z) / real(b.z))
}

// pow raises a to b. A negative real base with a non-integer real exponent
// has no real result, so it is computed in the complex plane.
func pow(a, b Value) Value {
	if a.cplx || b.cplx {
		return fromComplex(cmplx.Pow(a.z, b.z))
	}
	x, y := real(a.z), real(b.z)
	if x < 0 && y != math.Trunc(y) && !math.IsInf(y, 0) {
		return fromComplex(cmplx.Pow(a.z, b.z))
	}
	return Real(math.Pow(x, y))
}

// sqrt is the principal square root. Negative reals give imaginary results.
func sqrt(a Value) Value {
	if a.cplx {
		return fromComplex(cmplx.Sqrt(a.z))
	}
	x := real(a.z)
	if x < 0 {
		return Complex(0, math.Sqrt(-x))
	}
	return Real(math.Sqrt(x))
}

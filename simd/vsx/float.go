// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vsx

import "math"

// EstimateBits is the number of correct mantissa bits delivered by the
// reciprocal and reciprocal square root estimate instructions.
const EstimateBits = 14

const (
	signMask32 = 0x80000000
	signMask64 = 0x8000000000000000
)

func sp1(a Reg, op func(x float32) float32) Reg {
	var r Reg
	for k := range 4 {
		r.SetWord(k, math.Float32bits(op(math.Float32frombits(a.Word(k)))))
	}
	return r
}

func sp2(a, b Reg, op func(x, y float32) float32) Reg {
	var r Reg
	for k := range 4 {
		x := math.Float32frombits(a.Word(k))
		y := math.Float32frombits(b.Word(k))
		r.SetWord(k, math.Float32bits(op(x, y)))
	}
	return r
}

func sp3(a, b, c Reg, op func(x, y, z float32) float32) Reg {
	var r Reg
	for k := range 4 {
		x := math.Float32frombits(a.Word(k))
		y := math.Float32frombits(b.Word(k))
		z := math.Float32frombits(c.Word(k))
		r.SetWord(k, math.Float32bits(op(x, y, z)))
	}
	return r
}

func spCmp(a, b Reg, op func(x, y float32) bool) Reg {
	var r Reg
	for k := range 4 {
		x := math.Float32frombits(a.Word(k))
		y := math.Float32frombits(b.Word(k))
		r.SetWord(k, boolWord(op(x, y)))
	}
	return r
}

func dp1(a Reg, op func(x float64) float64) Reg {
	var r Reg
	for k := range 2 {
		r.SetDword(k, math.Float64bits(op(math.Float64frombits(a.Dword(k)))))
	}
	return r
}

func dp2(a, b Reg, op func(x, y float64) float64) Reg {
	var r Reg
	for k := range 2 {
		x := math.Float64frombits(a.Dword(k))
		y := math.Float64frombits(b.Dword(k))
		r.SetDword(k, math.Float64bits(op(x, y)))
	}
	return r
}

func dp3(a, b, c Reg, op func(x, y, z float64) float64) Reg {
	var r Reg
	for k := range 2 {
		x := math.Float64frombits(a.Dword(k))
		y := math.Float64frombits(b.Dword(k))
		z := math.Float64frombits(c.Dword(k))
		r.SetDword(k, math.Float64bits(op(x, y, z)))
	}
	return r
}

func dpCmp(a, b Reg, op func(x, y float64) bool) Reg {
	var r Reg
	for k := range 2 {
		x := math.Float64frombits(a.Dword(k))
		y := math.Float64frombits(b.Dword(k))
		if op(x, y) {
			r.SetDword(k, math.MaxUint64)
		}
	}
	return r
}

// fma32 returns a*b+c rounded once to float32. The product is exact in
// float64; the float64 sum s carries a rounding error e (s+e is exact). Only
// when s falls exactly halfway between two float32 values can e change the
// float32 result, and then s is moved one float64 ulp toward e so that the
// narrowing breaks the tie the same way the exact sum would.
func fma32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	z := float64(c)
	s := p + z
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	bb := s - p
	e := (p - (s - bb)) + (z - bb)
	if e != 0 && isFloat32Midpoint(s) {
		s = math.Nextafter(s, math.Copysign(math.Inf(1), e))
	}
	return float32(s)
}

// isFloat32Midpoint reports whether x lies exactly halfway between two
// adjacent float32 values (the largest finite float32 and 2^128 count).
func isFloat32Midpoint(x float64) bool {
	n := float32(x)
	if float64(n) == x {
		return false
	}
	var lo, hi float64
	switch {
	case math.IsInf(float64(n), 0):
		lo = math.Copysign(math.MaxFloat32, x)
		hi = math.Copysign(0x1p128, x)
	case float64(n) < x:
		lo, hi = float64(n), float64(math.Nextafter32(n, float32(math.Inf(1))))
	default:
		lo, hi = float64(math.Nextafter32(n, float32(math.Inf(-1)))), float64(n)
	}
	if math.IsInf(hi, 0) {
		hi = math.Copysign(0x1p128, hi)
	}
	return (lo+hi)/2 == x
}

// Xvaddsp adds single-precision words.
func Xvaddsp(a, b Reg) Reg { return sp2(a, b, func(x, y float32) float32 { return x + y }) }

// Xvsubsp subtracts single-precision words.
func Xvsubsp(a, b Reg) Reg { return sp2(a, b, func(x, y float32) float32 { return x - y }) }

// Xvmulsp multiplies single-precision words.
func Xvmulsp(a, b Reg) Reg { return sp2(a, b, func(x, y float32) float32 { return x * y }) }

// Xvmaddasp is a*b + c with a single rounding (vec_madd).
func Xvmaddasp(a, b, c Reg) Reg { return sp3(a, b, c, fma32) }

// Xvmsubasp is a*b - c (vec_msub).
func Xvmsubasp(a, b, c Reg) Reg {
	return sp3(a, b, c, func(x, y, z float32) float32 { return fma32(x, y, -z) })
}

// Xvnmaddasp is -(a*b + c) (vec_nmadd).
func Xvnmaddasp(a, b, c Reg) Reg {
	return sp3(a, b, c, func(x, y, z float32) float32 { return -fma32(x, y, z) })
}

// Xvnmsubasp is -(a*b - c) (vec_nmsub).
func Xvnmsubasp(a, b, c Reg) Reg {
	return sp3(a, b, c, func(x, y, z float32) float32 { return -fma32(x, y, -z) })
}

// Xvabssp clears the sign bit of each word.
func Xvabssp(a Reg) Reg {
	return Vandc(a, Splat32(signMask32))
}

// Xvnegsp negates each single-precision word.
func Xvnegsp(a Reg) Reg {
	return sp1(a, func(x float32) float32 { return -x })
}

// Xvmaxsp returns the larger operand. A single NaN operand is ignored; +0 is
// larger than -0.
func Xvmaxsp(a, b Reg) Reg {
	return sp2(a, b, func(x, y float32) float32 {
		return float32(maxNum(float64(x), float64(y)))
	})
}

// Xvminsp returns the smaller operand, with the same NaN and zero rules as
// Xvmaxsp.
func Xvminsp(a, b Reg) Reg {
	return sp2(a, b, func(x, y float32) float32 {
		return float32(minNum(float64(x), float64(y)))
	})
}

func maxNum(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	case x == 0 && y == 0:
		if math.Signbit(x) {
			return y
		}
		return x
	case x > y:
		return x
	}
	return y
}

func minNum(x, y float64) float64 {
	switch {
	case math.IsNaN(x):
		return y
	case math.IsNaN(y):
		return x
	case x == 0 && y == 0:
		if math.Signbit(x) {
			return x
		}
		return y
	case x < y:
		return x
	}
	return y
}

// Vrfin rounds single-precision words to the nearest integer, ties to even.
func Vrfin(a Reg) Reg {
	return sp1(a, func(x float32) float32 { return float32(math.RoundToEven(float64(x))) })
}

// Xvrspiz rounds single-precision words toward zero.
func Xvrspiz(a Reg) Reg {
	return sp1(a, func(x float32) float32 { return float32(math.Trunc(float64(x))) })
}

// Xvresp is the reciprocal estimate.
func Xvresp(a Reg) Reg {
	return sp1(a, func(x float32) float32 { return estimate32(1 / x) })
}

// Xvrsqrtesp is the reciprocal square root estimate.
func Xvrsqrtesp(a Reg) Reg {
	return sp1(a, func(x float32) float32 {
		return estimate32(float32(1 / math.Sqrt(float64(x))))
	})
}

// estimate32 keeps the top EstimateBits mantissa bits of x.
func estimate32(x float32) float32 {
	if x != x {
		return x
	}
	const drop = 23 - EstimateBits
	return math.Float32frombits(math.Float32bits(x) &^ (1<<drop - 1))
}

func estimate64(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	const drop = 52 - EstimateBits
	return math.Float64frombits(math.Float64bits(x) &^ (1<<drop - 1))
}

// Xvcmpeqsp compares words for equality.
func Xvcmpeqsp(a, b Reg) Reg { return spCmp(a, b, func(x, y float32) bool { return x == y }) }

// Xvcmpgtsp sets words where a > b.
func Xvcmpgtsp(a, b Reg) Reg { return spCmp(a, b, func(x, y float32) bool { return x > y }) }

// Xvcmpgesp sets words where a >= b.
func Xvcmpgesp(a, b Reg) Reg { return spCmp(a, b, func(x, y float32) bool { return x >= y }) }

// Xvadddp adds double-precision doublewords.
func Xvadddp(a, b Reg) Reg { return dp2(a, b, func(x, y float64) float64 { return x + y }) }

// Xvsubdp subtracts double-precision doublewords.
func Xvsubdp(a, b Reg) Reg { return dp2(a, b, func(x, y float64) float64 { return x - y }) }

// Xvmuldp multiplies double-precision doublewords.
func Xvmuldp(a, b Reg) Reg { return dp2(a, b, func(x, y float64) float64 { return x * y }) }

// Xvmaddadp is a*b + c with a single rounding.
func Xvmaddadp(a, b, c Reg) Reg { return dp3(a, b, c, math.FMA) }

// Xvmsubadp is a*b - c.
func Xvmsubadp(a, b, c Reg) Reg {
	return dp3(a, b, c, func(x, y, z float64) float64 { return math.FMA(x, y, -z) })
}

// Xvnmaddadp is -(a*b + c).
func Xvnmaddadp(a, b, c Reg) Reg {
	return dp3(a, b, c, func(x, y, z float64) float64 { return -math.FMA(x, y, z) })
}

// Xvnmsubadp is -(a*b - c).
func Xvnmsubadp(a, b, c Reg) Reg {
	return dp3(a, b, c, func(x, y, z float64) float64 { return -math.FMA(x, y, -z) })
}

// Xvabsdp clears the sign bit of each doubleword.
func Xvabsdp(a Reg) Reg {
	return Vandc(a, Splat64(signMask64))
}

// Xvnegdp negates each double-precision doubleword.
func Xvnegdp(a Reg) Reg {
	return dp1(a, func(x float64) float64 { return -x })
}

// SignBit32 has only the sign bit of every word set.
func SignBit32() Reg { return Splat32(signMask32) }

// SignBit64 has only the sign bit of every doubleword set.
func SignBit64() Reg { return Splat64(signMask64) }

// Xvmaxdp returns the larger doubleword, see Xvmaxsp.
func Xvmaxdp(a, b Reg) Reg { return dp2(a, b, maxNum) }

// Xvmindp returns the smaller doubleword, see Xvminsp.
func Xvmindp(a, b Reg) Reg { return dp2(a, b, minNum) }

// Xvrdpi rounds doublewords to the nearest integer, ties away from zero.
func Xvrdpi(a Reg) Reg { return dp1(a, math.Round) }

// Xvrdpiz rounds doublewords toward zero.
func Xvrdpiz(a Reg) Reg { return dp1(a, math.Trunc) }

// Xvredp is the double-precision reciprocal estimate.
func Xvredp(a Reg) Reg {
	return dp1(a, func(x float64) float64 { return estimate64(1 / x) })
}

// Xvrsqrtedp is the double-precision reciprocal square root estimate.
func Xvrsqrtedp(a Reg) Reg {
	return dp1(a, func(x float64) float64 { return estimate64(1 / math.Sqrt(x)) })
}

// Xvcmpeqdp compares doublewords for equality.
func Xvcmpeqdp(a, b Reg) Reg { return dpCmp(a, b, func(x, y float64) bool { return x == y }) }

// Xvcmpgtdp sets doublewords where a > b.
func Xvcmpgtdp(a, b Reg) Reg { return dpCmp(a, b, func(x, y float64) bool { return x > y }) }

// Xvcmpgedp sets doublewords where a >= b.
func Xvcmpgedp(a, b Reg) Reg { return dpCmp(a, b, func(x, y float64) bool { return x >= y }) }

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

package simd

import (
	"github.com/alexxy/gromacs/simd/vsx"
)

// Float64x2 is a VSX register holding 2 float64 lanes.
type Float64x2 vsx.Reg

const (
	expMask64 = 0x7FF0000000000000
	expBias64 = 1023

	// The exponent sits in the high word of each doubleword, 52-32 bits up.
	expShiftHigh64 = 20

	highWords64 = 0xFFFFFFFF00000000
)

// ===== Float64x2 constructors =====

// LoadFloat64x2 loads 2 float64 values from the start of s.
func LoadFloat64x2(s []float64) Float64x2 {
	return Float64x2(vsx.FromFloat64s(layout(), [2]float64(s[:2])))
}

// LoadUFloat64x2 is the unaligned load, identical to LoadFloat64x2.
func LoadUFloat64x2(s []float64) Float64x2 {
	return LoadFloat64x2(s)
}

// Load1Float64x2 broadcasts s[0] into both lanes.
func Load1Float64x2(s []float64) Float64x2 {
	return BroadcastFloat64x2(s[0])
}

// BroadcastFloat64x2 sets both lanes to v.
func BroadcastFloat64x2(v float64) Float64x2 {
	return Float64x2(vsx.SplatFloat64(v))
}

// ZeroFloat64x2 returns a zero vector.
func ZeroFloat64x2() Float64x2 {
	return Float64x2{}
}

// ===== Float64x2 memory and lanes =====

// Store writes both lanes to the start of s.
func (v Float64x2) Store(s []float64) {
	f := vsx.Reg(v).Float64s(layout())
	copy(s[:2], f[:])
}

// StoreU is the unaligned store, identical to Store.
func (v Float64x2) StoreU(s []float64) {
	v.Store(s)
}

// Get returns lane i.
func (v Float64x2) Get(i int) float64 {
	return vsx.Reg(v).Float64s(layout())[i]
}

// Lanes returns both lanes in order.
func (v Float64x2) Lanes() [2]float64 {
	return vsx.Reg(v).Float64s(layout())
}

// ===== Float64x2 arithmetic =====

func (v Float64x2) Add(other Float64x2) Float64x2 {
	return Float64x2(vsx.Xvadddp(vsx.Reg(v), vsx.Reg(other)))
}

func (v Float64x2) Sub(other Float64x2) Float64x2 {
	return Float64x2(vsx.Xvsubdp(vsx.Reg(v), vsx.Reg(other)))
}

func (v Float64x2) Mul(other Float64x2) Float64x2 {
	return Float64x2(vsx.Xvmuldp(vsx.Reg(v), vsx.Reg(other)))
}

// MulAdd computes v*a + b with a single rounding.
func (v Float64x2) MulAdd(a, b Float64x2) Float64x2 {
	return Float64x2(vsx.Xvmaddadp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

// MulSub computes v*a - b.
func (v Float64x2) MulSub(a, b Float64x2) Float64x2 {
	return Float64x2(vsx.Xvmsubadp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

// NegMulAdd computes -(v*a) + b (xvnmsubadp).
func (v Float64x2) NegMulAdd(a, b Float64x2) Float64x2 {
	return Float64x2(vsx.Xvnmsubadp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

// NegMulSub computes -(v*a) - b (xvnmaddadp).
func (v Float64x2) NegMulSub(a, b Float64x2) Float64x2 {
	return Float64x2(vsx.Xvnmaddadp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

func (v Float64x2) Abs() Float64x2 {
	return Float64x2(vsx.Xvabsdp(vsx.Reg(v)))
}

func (v Float64x2) Neg() Float64x2 {
	return Float64x2(negate64(vsx.Reg(v)))
}

func (v Float64x2) Max(other Float64x2) Float64x2 {
	return Float64x2(vsx.Xvmaxdp(vsx.Reg(v), vsx.Reg(other)))
}

func (v Float64x2) Min(other Float64x2) Float64x2 {
	return Float64x2(vsx.Xvmindp(vsx.Reg(v), vsx.Reg(other)))
}

// Round rounds to the nearest integer, ties away from zero (xvrdpi). This
// differs from Float32x4.Round.
func (v Float64x2) Round() Float64x2 {
	return Float64x2(vsx.Xvrdpi(vsx.Reg(v)))
}

func (v Float64x2) Trunc() Float64x2 {
	return Float64x2(vsx.Xvrdpiz(vsx.Reg(v)))
}

// Fraction returns v - Trunc(v).
func (v Float64x2) Fraction() Float64x2 {
	return v.Sub(v.Trunc())
}

// Rsqrt returns an estimate of 1/sqrt(v) with RsqrtBits correct bits.
func (v Float64x2) Rsqrt() Float64x2 {
	return Float64x2(vsx.Xvrsqrtedp(vsx.Reg(v)))
}

// Rcp returns an estimate of 1/v with RcpBits correct bits.
func (v Float64x2) Rcp() Float64x2 {
	return Float64x2(vsx.Xvredp(vsx.Reg(v)))
}

// ===== Float64x2 bitwise =====

func (v Float64x2) And(other Float64x2) Float64x2 {
	return Float64x2(vsx.Vand(vsx.Reg(v), vsx.Reg(other)))
}

// AndNot returns other & ^v.
func (v Float64x2) AndNot(other Float64x2) Float64x2 {
	return Float64x2(vsx.Vandc(vsx.Reg(other), vsx.Reg(v)))
}

func (v Float64x2) Or(other Float64x2) Float64x2 {
	return Float64x2(vsx.Vor(vsx.Reg(v), vsx.Reg(other)))
}

func (v Float64x2) Xor(other Float64x2) Float64x2 {
	return Float64x2(vsx.Vxor(vsx.Reg(v), vsx.Reg(other)))
}

// ===== Float64x2 exponent and mantissa =====

// GetExponent returns the unbiased binary exponent of each lane as a
// float64. The work is done on the high word of each doubleword only.
func (v Float64x2) GetExponent() Float64x2 {
	iexp := vsx.Vand(vsx.Reg(v), vsx.Splat64(expMask64))
	iexp = vsx.Vsrw(iexp, splatShift(expShiftHigh64))
	iexp = vsx.Vsubuwm(iexp, vsx.Splat32(expBias64))
	return Float64x2(vsx.Xvcvsxwdp(iexp))
}

// GetMantissa returns |v| with its exponent replaced by zero.
func (v Float64x2) GetMantissa() Float64x2 {
	m := vsx.Vandc(vsx.Xvabsdp(vsx.Reg(v)), vsx.Splat64(expMask64))
	return Float64x2(vsx.Vor(m, vsx.SplatFloat64(1)))
}

// SetExponent returns 2^round(v) for both lanes, rounding ties away from
// zero.
func (v Float64x2) SetExponent() Float64x2 {
	iexp := vsx.Xvcvdpsxws(vsx.Xvrdpi(vsx.Reg(v)))
	iexp = vsx.Vadduwm(iexp, vsx.Splat32(expBias64))
	iexp = vsx.Vslw(iexp, splatShift(expShiftHigh64))
	return Float64x2(vsx.Vand(iexp, vsx.Splat64(highWords64)))
}

// ReduceSum returns v0 + v1.
func (v Float64x2) ReduceSum() float64 {
	return Float64x2(reduce2(vsx.Reg(v))).Get(0)
}

// ===== Float64x2 comparisons and blends =====

func (v Float64x2) Equal(other Float64x2) Mask64x2 {
	return Mask64x2(vsx.Xvcmpeqdp(vsx.Reg(v), vsx.Reg(other)))
}

func (v Float64x2) Less(other Float64x2) Mask64x2 {
	return Mask64x2(vsx.Xvcmpgtdp(vsx.Reg(other), vsx.Reg(v)))
}

func (v Float64x2) LessEqual(other Float64x2) Mask64x2 {
	return Mask64x2(vsx.Xvcmpgedp(vsx.Reg(other), vsx.Reg(v)))
}

// BlendZero keeps lanes where m is set and zeroes the rest.
func (v Float64x2) BlendZero(m Mask64x2) Float64x2 {
	return Float64x2(vsx.Vand(vsx.Reg(v), vsx.Reg(m)))
}

// BlendNotZero zeroes lanes where m is set.
func (v Float64x2) BlendNotZero(m Mask64x2) Float64x2 {
	return Float64x2(vsx.Vandc(vsx.Reg(v), vsx.Reg(m)))
}

// BlendV takes lanes of other where m is set and lanes of v elsewhere.
func (v Float64x2) BlendV(other Float64x2, m Mask64x2) Float64x2 {
	return Float64x2(vsx.Xxsel(vsx.Reg(v), vsx.Reg(other), vsx.Reg(m)))
}

// ===== Float64x2 conversions =====

// ConvertToInt32 rounds (ties away from zero) and converts to the double
// integer twin.
func (v Float64x2) ConvertToInt32() Int32x2 {
	return Int32x2(vsx.Xvcvdpsxws(vsx.Xvrdpi(vsx.Reg(v))))
}

// ConvertToInt32Trunc truncates toward zero and converts.
func (v Float64x2) ConvertToInt32Trunc() Int32x2 {
	return Int32x2(vsx.Xvcvdpsxws(vsx.Reg(v)))
}

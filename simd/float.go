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
	"math"

	"github.com/alexxy/gromacs/simd/vsx"
)

// Float32x4 is a VSX register holding 4 float32 lanes.
type Float32x4 vsx.Reg

const (
	expMask32  = 0x7F800000
	expBias32  = 127
	mantBits32 = 23
)

// ===== Float32x4 constructors =====

// LoadFloat32x4 loads 4 float32 values from the start of s.
func LoadFloat32x4(s []float32) Float32x4 {
	return Float32x4(vsx.FromFloat32s(layout(), [4]float32(s[:4])))
}

// LoadUFloat32x4 is the unaligned load. VSX loads have no alignment
// requirement, so it is identical to LoadFloat32x4.
func LoadUFloat32x4(s []float32) Float32x4 {
	return LoadFloat32x4(s)
}

// Load1Float32x4 broadcasts s[0] into every lane.
func Load1Float32x4(s []float32) Float32x4 {
	return BroadcastFloat32x4(s[0])
}

// BroadcastFloat32x4 creates a vector with all lanes set to v.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4(vsx.SplatFloat32(v))
}

// ZeroFloat32x4 returns a zero vector.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// ===== Float32x4 memory and lanes =====

// Store writes the 4 lanes to the start of s.
func (v Float32x4) Store(s []float32) {
	f := vsx.Reg(v).Float32s(layout())
	copy(s[:4], f[:])
}

// StoreU is the unaligned store, identical to Store.
func (v Float32x4) StoreU(s []float32) {
	v.Store(s)
}

// Get returns lane i.
func (v Float32x4) Get(i int) float32 {
	return math.Float32frombits(extractWord(vsx.Reg(v), i))
}

// Lanes returns all lanes in order.
func (v Float32x4) Lanes() [4]float32 {
	return vsx.Reg(v).Float32s(layout())
}

// ===== Float32x4 arithmetic =====

// Add performs element-wise addition.
func (v Float32x4) Add(other Float32x4) Float32x4 {
	return Float32x4(vsx.Xvaddsp(vsx.Reg(v), vsx.Reg(other)))
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(other Float32x4) Float32x4 {
	return Float32x4(vsx.Xvsubsp(vsx.Reg(v), vsx.Reg(other)))
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(other Float32x4) Float32x4 {
	return Float32x4(vsx.Xvmulsp(vsx.Reg(v), vsx.Reg(other)))
}

// MulAdd computes v*a + b with a single rounding.
func (v Float32x4) MulAdd(a, b Float32x4) Float32x4 {
	return Float32x4(vsx.Xvmaddasp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

// MulSub computes v*a - b.
func (v Float32x4) MulSub(a, b Float32x4) Float32x4 {
	return Float32x4(vsx.Xvmsubasp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

// NegMulAdd computes -(v*a) + b. IBM names the instruction nmsub.
func (v Float32x4) NegMulAdd(a, b Float32x4) Float32x4 {
	return Float32x4(vsx.Xvnmsubasp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

// NegMulSub computes -(v*a) - b. IBM names the instruction nmadd.
func (v Float32x4) NegMulSub(a, b Float32x4) Float32x4 {
	return Float32x4(vsx.Xvnmaddasp(vsx.Reg(v), vsx.Reg(a), vsx.Reg(b)))
}

// Abs clears the sign of every lane.
func (v Float32x4) Abs() Float32x4 {
	return Float32x4(vsx.Xvabssp(vsx.Reg(v)))
}

// Neg flips the sign of every lane.
func (v Float32x4) Neg() Float32x4 {
	return Float32x4(negate32(vsx.Reg(v)))
}

// Max returns the lane-wise maximum. NaN handling is that of xvmaxsp.
func (v Float32x4) Max(other Float32x4) Float32x4 {
	return Float32x4(vsx.Xvmaxsp(vsx.Reg(v), vsx.Reg(other)))
}

// Min returns the lane-wise minimum.
func (v Float32x4) Min(other Float32x4) Float32x4 {
	return Float32x4(vsx.Xvminsp(vsx.Reg(v), vsx.Reg(other)))
}

// Round rounds to the nearest integer, ties to even.
func (v Float32x4) Round() Float32x4 {
	return Float32x4(vsx.Vrfin(vsx.Reg(v)))
}

// Trunc rounds toward zero.
func (v Float32x4) Trunc() Float32x4 {
	return Float32x4(vsx.Xvrspiz(vsx.Reg(v)))
}

// Fraction returns v - Trunc(v), with the sign of v.
func (v Float32x4) Fraction() Float32x4 {
	return v.Sub(v.Trunc())
}

// Rsqrt returns an estimate of 1/sqrt(v) with RsqrtBits correct bits.
func (v Float32x4) Rsqrt() Float32x4 {
	return Float32x4(vsx.Xvrsqrtesp(vsx.Reg(v)))
}

// Rcp returns an estimate of 1/v with RcpBits correct bits.
func (v Float32x4) Rcp() Float32x4 {
	return Float32x4(vsx.Xvresp(vsx.Reg(v)))
}

// ===== Float32x4 bitwise =====

// And performs a bitwise and.
func (v Float32x4) And(other Float32x4) Float32x4 {
	return Float32x4(vsx.Vand(vsx.Reg(v), vsx.Reg(other)))
}

// AndNot returns other & ^v. The receiver is the complemented operand.
func (v Float32x4) AndNot(other Float32x4) Float32x4 {
	return Float32x4(vsx.Vandc(vsx.Reg(other), vsx.Reg(v)))
}

// Or performs a bitwise or.
func (v Float32x4) Or(other Float32x4) Float32x4 {
	return Float32x4(vsx.Vor(vsx.Reg(v), vsx.Reg(other)))
}

// Xor performs a bitwise xor.
func (v Float32x4) Xor(other Float32x4) Float32x4 {
	return Float32x4(vsx.Vxor(vsx.Reg(v), vsx.Reg(other)))
}

// AsInt32x4 reinterprets the bits as int32 lanes.
func (v Float32x4) AsInt32x4() Int32x4 {
	return Int32x4(v)
}

// ===== Float32x4 exponent and mantissa =====

// GetExponent returns the unbiased binary exponent of each lane as a float,
// floor(log2(|v|)) for normal numbers.
func (v Float32x4) GetExponent() Float32x4 {
	iexp := vsx.Vand(vsx.Reg(v), vsx.Splat32(expMask32))
	iexp = vsx.Vsubuwm(vsx.Vsrw(iexp, splatShift(mantBits32)), vsx.Splat32(expBias32))
	return Float32x4(vsx.Vcfsx(iexp))
}

// GetMantissa returns |v| with its exponent replaced by zero, in [1, 2) for
// normal numbers.
func (v Float32x4) GetMantissa() Float32x4 {
	m := vsx.Vandc(vsx.Xvabssp(vsx.Reg(v)), vsx.Splat32(expMask32))
	return Float32x4(vsx.Vor(m, vsx.SplatFloat32(1)))
}

// SetExponent returns 2^round(v) for every lane.
func (v Float32x4) SetExponent() Float32x4 {
	iexp := vsx.Xvcvspsxws(vsx.Vrfin(vsx.Reg(v)))
	iexp = vsx.Vadduwm(iexp, vsx.Splat32(expBias32))
	return Float32x4(vsx.Vslw(iexp, splatShift(mantBits32)))
}

// ===== Float32x4 reductions =====

// ReduceSum adds all lanes as (v0+v2)+(v1+v3), on either layout.
func (v Float32x4) ReduceSum() float32 {
	return math.Float32frombits(extractWord(reduce4(vsx.Reg(v)), 0))
}

// ===== Float32x4 comparisons and blends =====

// Equal sets lanes where v == other.
func (v Float32x4) Equal(other Float32x4) Mask32x4 {
	return Mask32x4(vsx.Xvcmpeqsp(vsx.Reg(v), vsx.Reg(other)))
}

// Less sets lanes where v < other.
func (v Float32x4) Less(other Float32x4) Mask32x4 {
	return Mask32x4(vsx.Xvcmpgtsp(vsx.Reg(other), vsx.Reg(v)))
}

// LessEqual sets lanes where v <= other.
func (v Float32x4) LessEqual(other Float32x4) Mask32x4 {
	return Mask32x4(vsx.Xvcmpgesp(vsx.Reg(other), vsx.Reg(v)))
}

// BlendZero keeps lanes where m is set and zeroes the rest.
func (v Float32x4) BlendZero(m Mask32x4) Float32x4 {
	return Float32x4(vsx.Vand(vsx.Reg(v), vsx.Reg(m)))
}

// BlendNotZero zeroes lanes where m is set and keeps the rest.
func (v Float32x4) BlendNotZero(m Mask32x4) Float32x4 {
	return Float32x4(vsx.Vandc(vsx.Reg(v), vsx.Reg(m)))
}

// BlendV takes lanes of other where m is set and lanes of v elsewhere.
func (v Float32x4) BlendV(other Float32x4, m Mask32x4) Float32x4 {
	return Float32x4(vsx.Xxsel(vsx.Reg(v), vsx.Reg(other), vsx.Reg(m)))
}

// ===== Float32x4 conversions =====

// ConvertToInt32 rounds to the nearest integer (ties to even) and converts.
// Out-of-range lanes saturate; NaN becomes math.MinInt32.
func (v Float32x4) ConvertToInt32() Int32x4 {
	return Int32x4(vsx.Xvcvspsxws(vsx.Vrfin(vsx.Reg(v))))
}

// ConvertToInt32Trunc truncates toward zero and converts.
func (v Float32x4) ConvertToInt32Trunc() Int32x4 {
	return Int32x4(vsx.Xvcvspsxws(vsx.Reg(v)))
}

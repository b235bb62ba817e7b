package simd

import "github.com/alexxy/gromacs/simd/vsx"

// Int32x4 is the integer twin of Float32x4: 4 int32 lanes.
type Int32x4 vsx.Reg

// LoadInt32x4 loads 4 int32 values from the start of s.
func LoadInt32x4(s []int32) Int32x4 {
	return Int32x4(vsx.FromInt32s(layout(), [4]int32(s[:4])))
}

// LoadUInt32x4 is the unaligned load, identical to LoadInt32x4.
func LoadUInt32x4(s []int32) Int32x4 {
	return LoadInt32x4(s)
}

// Load1Int32x4 broadcasts s[0] into every lane.
func Load1Int32x4(s []int32) Int32x4 {
	return BroadcastInt32x4(s[0])
}

// BroadcastInt32x4 sets every lane to v.
func BroadcastInt32x4(v int32) Int32x4 {
	return Int32x4(vsx.Splat32(uint32(v)))
}

// ZeroInt32x4 returns a zero vector.
func ZeroInt32x4() Int32x4 {
	return Int32x4{}
}

// Store writes the 4 lanes to the start of s.
func (v Int32x4) Store(s []int32) {
	i := vsx.Reg(v).Int32s(layout())
	copy(s[:4], i[:])
}

// StoreU is the unaligned store, identical to Store.
func (v Int32x4) StoreU(s []int32) {
	v.Store(s)
}

// Get returns lane i.
func (v Int32x4) Get(i int) int32 {
	return int32(extractWord(vsx.Reg(v), i))
}

// Lanes returns all lanes in order.
func (v Int32x4) Lanes() [4]int32 {
	return vsx.Reg(v).Int32s(layout())
}

// Add adds lanes modulo 2^32.
func (v Int32x4) Add(other Int32x4) Int32x4 {
	return Int32x4(vsx.Vadduwm(vsx.Reg(v), vsx.Reg(other)))
}

// Sub subtracts lanes modulo 2^32.
func (v Int32x4) Sub(other Int32x4) Int32x4 {
	return Int32x4(vsx.Vsubuwm(vsx.Reg(v), vsx.Reg(other)))
}

// Mul multiplies lanes. With the halfword fallback selected the result is
// exact only when both operands fit in int16.
func (v Int32x4) Mul(other Int32x4) Int32x4 {
	return Int32x4(mulWords(vsx.Reg(v), vsx.Reg(other)))
}

// ShiftLeft shifts every lane left by n bits (n mod 32).
func (v Int32x4) ShiftLeft(n int) Int32x4 {
	return Int32x4(vsx.Vslw(vsx.Reg(v), splatShift(n)))
}

// ShiftRight shifts every lane right by n bits, filling with zeros.
func (v Int32x4) ShiftRight(n int) Int32x4 {
	return Int32x4(vsx.Vsrw(vsx.Reg(v), splatShift(n)))
}

// And performs a bitwise and.
func (v Int32x4) And(other Int32x4) Int32x4 {
	return Int32x4(vsx.Vand(vsx.Reg(v), vsx.Reg(other)))
}

// AndNot returns other & ^v.
func (v Int32x4) AndNot(other Int32x4) Int32x4 {
	return Int32x4(vsx.Vandc(vsx.Reg(other), vsx.Reg(v)))
}

// Or performs a bitwise or.
func (v Int32x4) Or(other Int32x4) Int32x4 {
	return Int32x4(vsx.Vor(vsx.Reg(v), vsx.Reg(other)))
}

// Xor performs a bitwise xor.
func (v Int32x4) Xor(other Int32x4) Int32x4 {
	return Int32x4(vsx.Vxor(vsx.Reg(v), vsx.Reg(other)))
}

// ConvertToFloat32 converts every lane to float32.
func (v Int32x4) ConvertToFloat32() Float32x4 {
	return Float32x4(vsx.Vcfsx(vsx.Reg(v)))
}

// AsFloat32x4 reinterprets the bits as float32 lanes.
func (v Int32x4) AsFloat32x4() Float32x4 {
	return Float32x4(v)
}

// Equal sets lanes where v == other.
func (v Int32x4) Equal(other Int32x4) IntMask32x4 {
	return IntMask32x4(vsx.Vcmpequw(vsx.Reg(v), vsx.Reg(other)))
}

// Less sets lanes where v < other.
func (v Int32x4) Less(other Int32x4) IntMask32x4 {
	return IntMask32x4(vsx.Vcmpgtsw(vsx.Reg(other), vsx.Reg(v)))
}

// BlendZero keeps lanes where m is set and zeroes the rest.
func (v Int32x4) BlendZero(m IntMask32x4) Int32x4 {
	return Int32x4(vsx.Vand(vsx.Reg(v), vsx.Reg(m)))
}

// BlendNotZero zeroes lanes where m is set.
func (v Int32x4) BlendNotZero(m IntMask32x4) Int32x4 {
	return Int32x4(vsx.Vandc(vsx.Reg(v), vsx.Reg(m)))
}

// BlendV takes lanes of other where m is set and lanes of v elsewhere.
func (v Int32x4) BlendV(other Int32x4, m IntMask32x4) Int32x4 {
	return Int32x4(vsx.Xxsel(vsx.Reg(v), vsx.Reg(other), vsx.Reg(m)))
}

package simd

import "github.com/alexxy/gromacs/simd/vsx"

// Mask64x2 is the result of a Float64x2 comparison.
type Mask64x2 vsx.Reg

// IntMask32x2 is the result of an Int32x2 comparison.
type IntMask32x2 vsx.Reg

// And combines two masks with a word-wise and.
func (m Mask64x2) And(other Mask64x2) Mask64x2 {
	return Mask64x2(vsx.Vand(vsx.Reg(m), vsx.Reg(other)))
}

// Or combines two masks with a word-wise or.
func (m Mask64x2) Or(other Mask64x2) Mask64x2 {
	return Mask64x2(vsx.Vor(vsx.Reg(m), vsx.Reg(other)))
}

// AnyTrue reports whether either lane is set.
func (m Mask64x2) AnyTrue() bool {
	return vsx.AnyNe(vsx.Reg(m), zeroReg)
}

// GetBit reports whether lane i is set.
func (m Mask64x2) GetBit(i int) bool {
	return vsx.Reg(m).Dwords(layout())[i] != 0
}

// ToInt reinterprets the mask for Int32x2.
func (m Mask64x2) ToInt() IntMask32x2 {
	return IntMask32x2(m)
}

func (m IntMask32x2) And(other IntMask32x2) IntMask32x2 {
	return IntMask32x2(vsx.Vand(vsx.Reg(m), vsx.Reg(other)))
}

func (m IntMask32x2) Or(other IntMask32x2) IntMask32x2 {
	return IntMask32x2(vsx.Vor(vsx.Reg(m), vsx.Reg(other)))
}

// AnyTrue tests all four physical lanes. The odd lanes mirror the even
// ones, so this is the same as testing lanes 0 and 2.
func (m IntMask32x2) AnyTrue() bool {
	return vsx.AnyNe(vsx.Reg(m), zeroReg)
}

// GetBit reports whether logical lane i is set.
func (m IntMask32x2) GetBit(i int) bool {
	return extractWord(vsx.Reg(m), 2*i) != 0
}

// ToDouble reinterprets the mask for Float64x2.
func (m IntMask32x2) ToDouble() Mask64x2 {
	return Mask64x2(m)
}

// Mask64FromBools builds a Mask64x2 from per-lane booleans.
func Mask64FromBools(b [2]bool) Mask64x2 {
	var d [2]uint64
	for i, set := range b {
		if set {
			d[i] = ^uint64(0)
		}
	}
	return Mask64x2(vsx.FromDwords(layout(), d))
}

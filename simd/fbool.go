package simd

import "github.com/alexxy/gromacs/simd/vsx"

// Mask32x4 is the result of a Float32x4 comparison. Every lane is either all
// ones or all zeros.
type Mask32x4 vsx.Reg

// IntMask32x4 is the result of an Int32x4 comparison.
type IntMask32x4 vsx.Reg

var zeroReg vsx.Reg

// And combines two masks.
func (m Mask32x4) And(other Mask32x4) Mask32x4 {
	return Mask32x4(vsx.Vand(vsx.Reg(m), vsx.Reg(other)))
}

// Or combines two masks.
func (m Mask32x4) Or(other Mask32x4) Mask32x4 {
	return Mask32x4(vsx.Vor(vsx.Reg(m), vsx.Reg(other)))
}

// AnyTrue reports whether any lane is set.
func (m Mask32x4) AnyTrue() bool {
	return vsx.AnyNe(vsx.Reg(m), zeroReg)
}

// GetBit reports whether lane i is set.
func (m Mask32x4) GetBit(i int) bool {
	return extractWord(vsx.Reg(m), i) != 0
}

// ToInt reinterprets the mask for the integer twin.
func (m Mask32x4) ToInt() IntMask32x4 {
	return IntMask32x4(m)
}

// And combines two masks.
func (m IntMask32x4) And(other IntMask32x4) IntMask32x4 {
	return IntMask32x4(vsx.Vand(vsx.Reg(m), vsx.Reg(other)))
}

// Or combines two masks.
func (m IntMask32x4) Or(other IntMask32x4) IntMask32x4 {
	return IntMask32x4(vsx.Vor(vsx.Reg(m), vsx.Reg(other)))
}

// AnyTrue reports whether any lane is set.
func (m IntMask32x4) AnyTrue() bool {
	return vsx.AnyNe(vsx.Reg(m), zeroReg)
}

// GetBit reports whether lane i is set.
func (m IntMask32x4) GetBit(i int) bool {
	return extractWord(vsx.Reg(m), i) != 0
}

// ToFloat reinterprets the mask for Float32x4.
func (m IntMask32x4) ToFloat() Mask32x4 {
	return Mask32x4(m)
}

// MaskFromBools builds a Mask32x4 from per-lane booleans.
func MaskFromBools(b [4]bool) Mask32x4 {
	var w [4]uint32
	for i, set := range b {
		if set {
			w[i] = 0xFFFFFFFF
		}
	}
	return Mask32x4(vsx.FromWords(layout(), w))
}
